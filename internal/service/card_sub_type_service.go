// internal/service/card_sub_type_service.go
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

type CardSubTypeService interface {
	CreateCardSubType(ctx context.Context, req *model.CreateCardSubTypeRequest) (*model.CardSubType, error)
	GetCardSubTypes(ctx context.Context, p model.Pagination) ([]*model.CardSubTypeView, error)
	PatchCardSubType(ctx context.Context, subTypeID uuid.UUID, req *model.PatchCardSubTypeRequest) (*model.CardSubType, error)
}

type cardSubTypeService struct {
	db          *gorm.DB
	subTypeRepo repository.CardSubTypeRepository
	typeRepo    repository.CardTypeRepository
	logger      *slog.Logger
}

func NewCardSubTypeService(db *gorm.DB, subTypeRepo repository.CardSubTypeRepository, typeRepo repository.CardTypeRepository, logger *slog.Logger) CardSubTypeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cardSubTypeService{
		db:          db,
		subTypeRepo: subTypeRepo,
		typeRepo:    typeRepo,
		logger:      logger,
	}
}

func (s *cardSubTypeService) CreateCardSubType(ctx context.Context, req *model.CreateCardSubTypeRequest) (*model.CardSubType, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidInput
	}
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return nil, model.NewAppError("INVALID_TYPE_ID", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
	}

	var createdSubType *model.CardSubType

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 親タイプの存在確認 (存在しなければ何も永続化しない)
		cardType, err := s.typeRepo.FindByID(ctx, tx, typeID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TYPE_NOT_FOUND", "指定されたカードタイプが見つかりません。", "type_id", model.ErrNotFound)
			}
			s.logger.Error("Error resolving card type in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		// 2. サブタイプを作成
		subType := &model.CardSubType{
			SubTypeID: uuid.New(),
			TypeID:    cardType.TypeID,
			Name:      req.Name,
		}
		if err := s.subTypeRepo.Create(ctx, tx, subType); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_NAME", "そのサブタイプ名は既に使用されています。", "name", model.ErrConflict)
			}
			s.logger.Error("Error creating card sub type in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		// レスポンスには解決済みの親タイプを付けて返す
		subType.CardType = cardType
		createdSubType = subType
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for CreateCardSubType", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return createdSubType, nil
}

func (s *cardSubTypeService) GetCardSubTypes(ctx context.Context, p model.Pagination) ([]*model.CardSubTypeView, error) {
	subTypes, err := s.subTypeRepo.Find(ctx, s.db, p.Normalize())
	if err != nil {
		s.logger.Error("Error listing card sub types", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	views := make([]*model.CardSubTypeView, 0, len(subTypes))
	for _, subType := range subTypes {
		views = append(views, model.NewCardSubTypeView(subType))
	}
	return views, nil
}

func (s *cardSubTypeService) PatchCardSubType(ctx context.Context, subTypeID uuid.UUID, req *model.PatchCardSubTypeRequest) (*model.CardSubType, error) {
	var updatedSubType *model.CardSubType

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.subTypeRepo.FindByID(ctx, tx, subTypeID); err != nil {
			return err
		}

		// 2. 指定されたフィールドだけをマージ
		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["Name"] = *req.Name
		}
		if req.TypeID != nil {
			newTypeID, err := uuid.Parse(*req.TypeID)
			if err != nil {
				return model.NewAppError("INVALID_TYPE_ID", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
			}
			// 付け替え先タイプの存在確認
			if _, err := s.typeRepo.FindByID(ctx, tx, newTypeID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("TYPE_NOT_FOUND", "指定されたカードタイプが見つかりません。", "type_id", model.ErrNotFound)
				}
				s.logger.Error("Error resolving card type in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
			updates["TypeID"] = newTypeID
		}
		if len(updates) > 0 {
			if err := s.subTypeRepo.Update(ctx, tx, subTypeID, updates); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("DUPLICATE_NAME", "そのサブタイプ名は既に使用されています。", "name", model.ErrConflict)
				}
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				s.logger.Error("Error updating card sub type in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 3. 更新後のデータを取得 (親タイプ Preload 済み)
		var err error
		updatedSubType, err = s.subTypeRepo.FindByID(ctx, tx, subTypeID)
		if err != nil {
			s.logger.Error("Error fetching updated card sub type in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PatchCardSubType", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedSubType, nil
}
