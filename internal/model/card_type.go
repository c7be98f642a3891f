// internal/model/card_type.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CardType はカードの大分類 (Monster / Spell / Trap など) を表します
type CardType struct {
	TypeID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (Preload用)
	SubTypes []CardSubType `gorm:"foreignKey:TypeID;references:TypeID" json:"-"`
	Cards    []Card        `gorm:"foreignKey:TypeID;references:TypeID" json:"-"`
}

func (CardType) TableName() string {
	return "card_types"
}

// タイプ作成リクエストDTO
type CreateCardTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// タイプ更新（部分）リクエストDTO
type PatchCardTypeRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
}

// Pagination は一覧系APIの共通ページングパラメータ
// limit は正の整数 (デフォルト10)、offset は0以上 (デフォルト0)
type Pagination struct {
	Limit  int `validate:"omitempty,min=1"`
	Offset int `validate:"omitempty,min=0"`
}

// Normalize はデフォルト値を適用した Pagination を返します
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// DefaultPageLimit は limit 未指定時の取得件数
const DefaultPageLimit = 10
