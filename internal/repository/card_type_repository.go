//go:generate mockery --name CardTypeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_card_catalog/internal/middleware"
	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CardTypeRepository はカードタイプの永続化を担当します
type CardTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, cardType *model.CardType) error
	FindByID(ctx context.Context, db *gorm.DB, typeID uuid.UUID) (*model.CardType, error)
	Find(ctx context.Context, db *gorm.DB, p model.Pagination) ([]*model.CardType, error)
	Update(ctx context.Context, db *gorm.DB, typeID uuid.UUID, updates map[string]interface{}) error
}

type gormCardTypeRepository struct{}

func NewGormCardTypeRepository() CardTypeRepository {
	return &gormCardTypeRepository{}
}

// isDuplicateKeyError はストレージ層の一意制約違反かどうかを判定します。
// Postgres は pgconn のエラーコード 23505、その他のドライバは GORM の変換結果で判定。
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *gormCardTypeRepository) Create(ctx context.Context, db *gorm.DB, cardType *model.CardType) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(cardType)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create card type",
				"error", result.Error,
				"name", cardType.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating card type in DB",
			"error", result.Error,
			"name", cardType.Name,
		)
		return fmt.Errorf("gormCardTypeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardTypeRepository) FindByID(ctx context.Context, db *gorm.DB, typeID uuid.UUID) (*model.CardType, error) {
	logger := middleware.GetLogger(ctx)
	var cardType model.CardType
	result := db.WithContext(ctx).Where("type_id = ?", typeID).First(&cardType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card type by ID in DB",
			"error", result.Error,
			"type_id", typeID.String(),
		)
		return nil, fmt.Errorf("gormCardTypeRepository.FindByID: %w", result.Error)
	}
	return &cardType, nil
}

func (r *gormCardTypeRepository) Find(ctx context.Context, db *gorm.DB, p model.Pagination) ([]*model.CardType, error) {
	logger := middleware.GetLogger(ctx)
	var cardTypes []*model.CardType
	result := db.WithContext(ctx).
		Order("type_id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&cardTypes)
	if result.Error != nil {
		logger.Error("Error finding card types in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardTypeRepository.Find: %w", result.Error)
	}
	return cardTypes, nil
}

func (r *gormCardTypeRepository) Update(ctx context.Context, db *gorm.DB, typeID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.CardType{}).Where("type_id = ?", typeID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on update card type",
				"error", result.Error,
				"type_id", typeID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error updating card type in DB",
			"error", result.Error,
			"type_id", typeID.String(),
		)
		return fmt.Errorf("gormCardTypeRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
