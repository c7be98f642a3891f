// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "CardCatalog"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
)
