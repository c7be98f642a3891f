// internal/model/card_sub_type.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CardSubType はタイプ配下の小分類 (Effect Monster など) を表します。
// 親タイプは必須で、タイプ削除時はストレージ層のFKでカスケード削除されます。
type CardSubType struct {
	SubTypeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TypeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"type_id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (Preload用)
	CardType *CardType `gorm:"foreignKey:TypeID;references:TypeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CardSubType) TableName() string {
	return "card_sub_types"
}

// サブタイプ作成リクエストDTO
type CreateCardSubTypeRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=50"`
	TypeID string `json:"type_id" validate:"required,uuid4"`
}

// サブタイプ更新（部分）リクエストDTO
type PatchCardSubTypeRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	TypeID *string `json:"type_id,omitempty" validate:"omitempty,uuid4"`
}

// CardSubTypeView は親タイプをJOINした一覧用の射影です
type CardSubTypeView struct {
	SubTypeID uuid.UUID `json:"id"`
	TypeID    uuid.UUID `json:"type_id"`
	TypeName  string    `json:"type_name"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCardSubTypeView は Preload 済みの CardSubType から射影を作ります
func NewCardSubTypeView(s *CardSubType) *CardSubTypeView {
	view := &CardSubTypeView{
		SubTypeID: s.SubTypeID,
		TypeID:    s.TypeID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.CardType != nil {
		view.TypeName = s.CardType.Name
	}
	return view
}
