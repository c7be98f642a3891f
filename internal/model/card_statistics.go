// internal/model/card_statistics.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CardStatistics はカードに1:1で紐づく戦闘ステータスです。
// カードなしで単独作成されることはなく、カードのハード削除でFKカスケードされます。
type CardStatistics struct {
	StatisticsID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CardID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Attack       int       `gorm:"not null" json:"attack"`
	Defense      int       `gorm:"not null" json:"defense"`
	Stars        *int      `json:"stars"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CardStatistics) TableName() string {
	return "card_statistics"
}

// ステータス作成リクエストDTO (カード作成リクエストにネストされる)
type CreateCardStatisticsRequest struct {
	Attack  *int `json:"attack,omitempty" validate:"omitempty,min=1"`
	Defense *int `json:"defense,omitempty" validate:"omitempty,min=1"`
	Stars   *int `json:"stars,omitempty" validate:"omitempty,min=1"`
}

// ステータス更新（部分）リクエストDTO
type PatchCardStatisticsRequest struct {
	Attack  *int `json:"attack,omitempty" validate:"omitempty,min=1"`
	Defense *int `json:"defense,omitempty" validate:"omitempty,min=1"`
	Stars   *int `json:"stars,omitempty" validate:"omitempty,min=1"`
}

// CardStatisticsView はカード射影にネストされるステータス部分です
type CardStatisticsView struct {
	StatisticsID uuid.UUID `json:"id"`
	Attack       int       `json:"attack"`
	Defense      int       `json:"defense"`
	Stars        *int      `json:"stars"`
}
