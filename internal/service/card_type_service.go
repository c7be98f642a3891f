// internal/service/card_type_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardTypeService interface {
	CreateCardType(ctx context.Context, req *model.CreateCardTypeRequest) (*model.CardType, error)
	GetCardTypes(ctx context.Context, p model.Pagination) ([]*model.CardType, error)
	PatchCardType(ctx context.Context, typeID uuid.UUID, req *model.PatchCardTypeRequest) (*model.CardType, error)
}

type cardTypeService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	typeRepo repository.CardTypeRepository
	logger   *slog.Logger
}

func NewCardTypeService(db *gorm.DB, typeRepo repository.CardTypeRepository, logger *slog.Logger) CardTypeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cardTypeService{
		db:       db,
		typeRepo: typeRepo,
		logger:   logger,
	}
}

func (s *cardTypeService) CreateCardType(ctx context.Context, req *model.CreateCardTypeRequest) (*model.CardType, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidInput
	}

	cardType := &model.CardType{
		TypeID: uuid.New(), // Service層でUUIDを生成
		Name:   req.Name,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.typeRepo.Create(ctx, tx, cardType); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_NAME", "そのタイプ名は既に使用されています。", "name", model.ErrConflict)
			}
			s.logger.Error("Error creating card type in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	return cardType, nil
}

func (s *cardTypeService) GetCardTypes(ctx context.Context, p model.Pagination) ([]*model.CardType, error) {
	cardTypes, err := s.typeRepo.Find(ctx, s.db, p.Normalize())
	if err != nil {
		s.logger.Error("Error listing card types", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return cardTypes, nil
}

func (s *cardTypeService) PatchCardType(ctx context.Context, typeID uuid.UUID, req *model.PatchCardTypeRequest) (*model.CardType, error) {
	var updatedType *model.CardType

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.typeRepo.FindByID(ctx, tx, typeID); err != nil {
			return err // model.ErrNotFound or ラップ済みエラー
		}

		// 2. 指定されたフィールドだけをマージ
		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["Name"] = *req.Name
		}
		if len(updates) > 0 {
			if err := s.typeRepo.Update(ctx, tx, typeID, updates); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("DUPLICATE_NAME", "そのタイプ名は既に使用されています。", "name", model.ErrConflict)
				}
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				s.logger.Error("Error updating card type in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 3. 更新後のデータを取得
		var err error
		updatedType, err = s.typeRepo.FindByID(ctx, tx, typeID)
		if err != nil {
			s.logger.Error("Error fetching updated card type in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PatchCardType", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedType, nil
}
