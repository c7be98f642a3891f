//go:generate mockery --name CardSubTypeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_card_catalog/internal/middleware"
	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardSubTypeRepository はカードサブタイプの永続化を担当します
type CardSubTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, subType *model.CardSubType) error
	FindByID(ctx context.Context, db *gorm.DB, subTypeID uuid.UUID) (*model.CardSubType, error)
	// Find は一覧射影のために親タイプを Preload して返します
	Find(ctx context.Context, db *gorm.DB, p model.Pagination) ([]*model.CardSubType, error)
	Update(ctx context.Context, db *gorm.DB, subTypeID uuid.UUID, updates map[string]interface{}) error
}

type gormCardSubTypeRepository struct{}

func NewGormCardSubTypeRepository() CardSubTypeRepository {
	return &gormCardSubTypeRepository{}
}

func (r *gormCardSubTypeRepository) Create(ctx context.Context, db *gorm.DB, subType *model.CardSubType) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(subType)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create card sub type",
				"error", result.Error,
				"name", subType.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating card sub type in DB",
			"error", result.Error,
			"name", subType.Name,
			"type_id", subType.TypeID.String(),
		)
		return fmt.Errorf("gormCardSubTypeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardSubTypeRepository) FindByID(ctx context.Context, db *gorm.DB, subTypeID uuid.UUID) (*model.CardSubType, error) {
	logger := middleware.GetLogger(ctx)
	var subType model.CardSubType
	result := db.WithContext(ctx).
		Preload("CardType").
		Where("sub_type_id = ?", subTypeID).
		First(&subType)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card sub type by ID in DB",
			"error", result.Error,
			"sub_type_id", subTypeID.String(),
		)
		return nil, fmt.Errorf("gormCardSubTypeRepository.FindByID: %w", result.Error)
	}
	return &subType, nil
}

func (r *gormCardSubTypeRepository) Find(ctx context.Context, db *gorm.DB, p model.Pagination) ([]*model.CardSubType, error) {
	logger := middleware.GetLogger(ctx)
	var subTypes []*model.CardSubType
	result := db.WithContext(ctx).
		Preload("CardType").
		Order("sub_type_id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&subTypes)
	if result.Error != nil {
		logger.Error("Error finding card sub types in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardSubTypeRepository.Find: %w", result.Error)
	}
	return subTypes, nil
}

func (r *gormCardSubTypeRepository) Update(ctx context.Context, db *gorm.DB, subTypeID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.CardSubType{}).Where("sub_type_id = ?", subTypeID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on update card sub type",
				"error", result.Error,
				"sub_type_id", subTypeID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error updating card sub type in DB",
			"error", result.Error,
			"sub_type_id", subTypeID.String(),
		)
		return fmt.Errorf("gormCardSubTypeRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
