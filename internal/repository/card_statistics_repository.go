//go:generate mockery --name CardStatisticsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_card_catalog/internal/middleware"
	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardStatisticsRepository はカードステータスの永続化を担当します。
// 作成はカードの作成フローからのみ呼ばれ、単独の公開操作にはなりません。
type CardStatisticsRepository interface {
	Create(ctx context.Context, db *gorm.DB, stats *model.CardStatistics) error
	Update(ctx context.Context, db *gorm.DB, statisticsID uuid.UUID, updates map[string]interface{}) error
}

type gormCardStatisticsRepository struct{}

func NewGormCardStatisticsRepository() CardStatisticsRepository {
	return &gormCardStatisticsRepository{}
}

func (r *gormCardStatisticsRepository) Create(ctx context.Context, db *gorm.DB, stats *model.CardStatistics) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(stats)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			// card_id の一意制約 (1カードにつきステータスは1件)
			logger.Warn("Duplicate key error on create card statistics",
				"error", result.Error,
				"card_id", stats.CardID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating card statistics in DB",
			"error", result.Error,
			"card_id", stats.CardID.String(),
		)
		return fmt.Errorf("gormCardStatisticsRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardStatisticsRepository) Update(ctx context.Context, db *gorm.DB, statisticsID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.CardStatistics{}).Where("statistics_id = ?", statisticsID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card statistics in DB",
			"error", result.Error,
			"statistics_id", statisticsID.String(),
		)
		return fmt.Errorf("gormCardStatisticsRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
