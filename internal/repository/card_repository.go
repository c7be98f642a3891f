//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
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

// CardRepository はカードの永続化とフィルタ検索を担当します。
// 検索系は GORM のデフォルトスコープにより論理削除済みの行を除外します。
type CardRepository interface {
	Create(ctx context.Context, db *gorm.DB, card *model.Card) error
	// FindByID はステータスのみ Preload して返します (更新・削除フロー用)
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	// FindFull はタイプ・サブタイプ・ステータスを全て Preload して返します
	FindFull(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	Search(ctx context.Context, db *gorm.DB, filter *model.CardFilter) ([]*model.Card, error)
	SearchOne(ctx context.Context, db *gorm.DB, filter *model.CardFilter) (*model.Card, error)
	Update(ctx context.Context, db *gorm.DB, cardID uuid.UUID, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, db *gorm.DB, cardID uuid.UUID) error
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, db *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(card)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			// name または code の一意制約違反
			logger.Warn("Duplicate key error on create card",
				"error", result.Error,
				"name", card.Name,
				"code", card.Code,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"name", card.Name,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).
		Preload("Statistics").
		Where("card_id = ?", cardID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindFull(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).
		Preload("CardType").
		Preload("CardSubType").
		Preload("Statistics").
		Where("card_id = ?", cardID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding full card by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindFull: %w", result.Error)
	}
	return &card, nil
}

// applyFilter はフィルタの nil でないフィールドだけを述語に積み上げます。
// stars はステータステーブルへの明示的なJOINで解決します。
func applyFilter(db *gorm.DB, filter *model.CardFilter) *gorm.DB {
	query := db
	if filter.ID != nil {
		query = query.Where("cards.card_id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("cards.name = ?", *filter.Name)
	}
	if filter.TypeID != nil {
		query = query.Where("cards.type_id = ?", *filter.TypeID)
	}
	if filter.SubTypeID != nil {
		query = query.Where("cards.sub_type_id = ?", *filter.SubTypeID)
	}
	if filter.Stars != nil {
		query = query.
			Joins("JOIN card_statistics ON card_statistics.card_id = cards.card_id").
			Where("card_statistics.stars = ?", *filter.Stars)
	}
	return query
}

func (r *gormCardRepository) Search(ctx context.Context, db *gorm.DB, filter *model.CardFilter) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := applyFilter(db.WithContext(ctx), filter).
		Preload("CardType").
		Preload("CardSubType").
		Preload("Statistics").
		Order("cards.card_id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error searching cards in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.Search: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) SearchOne(ctx context.Context, db *gorm.DB, filter *model.CardFilter) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := applyFilter(db.WithContext(ctx), filter).
		Preload("CardType").
		Preload("CardSubType").
		Preload("Statistics").
		Order("cards.card_id ASC").
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error searching single card in DB", "error", result.Error)
		return nil, fmt.Errorf("gormCardRepository.SearchOne: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) Update(ctx context.Context, db *gorm.DB, cardID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.Card{}).Where("card_id = ?", cardID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on update card",
				"error", result.Error,
				"card_id", cardID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) SoftDelete(ctx context.Context, db *gorm.DB, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// DeletedAt カラムがあるため GORM の Delete は論理削除になる。
	// ステータス行はここでは触らない (ハード削除時のみFKカスケード)。
	result := db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error soft deleting card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.SoftDelete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
