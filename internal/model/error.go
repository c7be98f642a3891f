// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細情報です。
// Path と Timestamp はレスポンス生成時 (webutil.HandleError) に設定されます。
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージ・対象フィールドを持つカスタムエラーです。
// Unwrap で根本原因 (ErrNotFound など) を返し、ステータスコード判定に使います。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
