// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card はカタログの1枚のカードを表します。
// タイプ・サブタイプへの参照は必須、ステータスは0か1件です。
// 削除は DeletedAt による論理削除のみで、復活やハード削除の操作はありません。
type Card struct {
	CardID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Code        string         `gorm:"size:7;uniqueIndex;not null" json:"code"`
	Description string         `gorm:"size:255;not null" json:"description"`
	ImageURL    *string        `gorm:"size:255" json:"image_url"`
	TypeID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"type_id"`
	SubTypeID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"sub_type_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	CardType    *CardType       `gorm:"foreignKey:TypeID;references:TypeID;constraint:OnDelete:CASCADE" json:"-"`
	CardSubType *CardSubType    `gorm:"foreignKey:SubTypeID;references:SubTypeID;constraint:OnDelete:CASCADE" json:"-"`
	Statistics  *CardStatistics `gorm:"foreignKey:CardID;references:CardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Card) TableName() string {
	return "cards"
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	Name        string                       `json:"name" validate:"required,min=2,max=50"`
	Code        string                       `json:"code" validate:"required,len=7"`
	Description string                       `json:"description" validate:"required,min=5,max=255"`
	ImageURL    *string                      `json:"image_url,omitempty" validate:"omitempty,min=5,max=255"`
	TypeID      string                       `json:"type_id" validate:"required,uuid4"`
	SubTypeID   string                       `json:"sub_type_id" validate:"required,uuid4"`
	Statistics  *CreateCardStatisticsRequest `json:"statistics,omitempty"`
}

// カード更新（部分）リクエストDTO
// Statistics を指定する場合、既存のステータス行が必須 (更新が新規作成することはない)
type PatchCardRequest struct {
	Name        *string                     `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Code        *string                     `json:"code,omitempty" validate:"omitempty,len=7"`
	Description *string                     `json:"description,omitempty" validate:"omitempty,min=5,max=255"`
	ImageURL    *string                     `json:"image_url,omitempty" validate:"omitempty,min=5,max=255"`
	TypeID      *string                     `json:"type_id,omitempty" validate:"omitempty,uuid4"`
	SubTypeID   *string                     `json:"sub_type_id,omitempty" validate:"omitempty,uuid4"`
	Statistics  *PatchCardStatisticsRequest `json:"statistics,omitempty"`
}

// IsEmpty は更新対象フィールドが1つも指定されていない場合に true を返します
func (r *PatchCardRequest) IsEmpty() bool {
	return r.Name == nil && r.Code == nil && r.Description == nil &&
		r.ImageURL == nil && r.TypeID == nil && r.SubTypeID == nil &&
		r.Statistics == nil
}

// CardFilter は一覧・単体検索の共通フィルタです。
// nil のフィールドは述語に含めません (ゼロ値マッチはしない)。
type CardFilter struct {
	ID        *uuid.UUID
	Name      *string
	TypeID    *uuid.UUID
	SubTypeID *uuid.UUID
	Stars     *int // クエリ文字列の数値を handler 層で変換済み
	Pagination
}

// HasLookupKey は単体検索 (FindCard) に必要なキーが1つでもあるかを返します
func (f *CardFilter) HasLookupKey() bool {
	return f.ID != nil || f.Name != nil || f.Stars != nil
}

// CardView はタイプ・サブタイプ・ステータスをJOINしたフラットな射影です
type CardView struct {
	CardID      uuid.UUID           `json:"id"`
	TypeID      uuid.UUID           `json:"type_id"`
	SubTypeID   uuid.UUID           `json:"sub_type_id"`
	TypeName    string              `json:"type_name"`
	SubTypeName string              `json:"sub_type_name"`
	Name        string              `json:"name"`
	Code        string              `json:"code"`
	Description string              `json:"description"`
	ImageURL    *string             `json:"image_url"`
	Statistics  *CardStatisticsView `json:"statistics"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   *time.Time          `json:"deleted_at"`
}

// NewCardView は Preload 済みの Card からフラット射影を作ります
func NewCardView(c *Card) *CardView {
	view := &CardView{
		CardID:      c.CardID,
		TypeID:      c.TypeID,
		SubTypeID:   c.SubTypeID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CardType != nil {
		view.TypeName = c.CardType.Name
	}
	if c.CardSubType != nil {
		view.SubTypeName = c.CardSubType.Name
	}
	if c.Statistics != nil {
		view.Statistics = &CardStatisticsView{
			StatisticsID: c.Statistics.StatisticsID,
			Attack:       c.Statistics.Attack,
			Defense:      c.Statistics.Defense,
			Stars:        c.Statistics.Stars,
		}
	}
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		view.DeletedAt = &t
	}
	return view
}

// カード論理削除のレスポンス
type DeleteCardResponse struct {
	Message   string `json:"message"`
	DeletedAt string `json:"deleted_at"` // ISO-8601
}
