// internal/service/card_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardService interface {
	CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.CardView, error)
	GetCards(ctx context.Context, filter *model.CardFilter) ([]*model.CardView, error)
	FindCard(ctx context.Context, filter *model.CardFilter) (*model.CardView, error)
	PatchCard(ctx context.Context, cardID uuid.UUID, req *model.PatchCardRequest) (*model.CardView, error)
	SoftDeleteCard(ctx context.Context, cardID uuid.UUID) (*model.DeleteCardResponse, error)
}

type cardService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	cardRepo    repository.CardRepository
	typeRepo    repository.CardTypeRepository
	subTypeRepo repository.CardSubTypeRepository
	statsRepo   repository.CardStatisticsRepository
	logger      *slog.Logger
}

func NewCardService(
	db *gorm.DB,
	cardRepo repository.CardRepository,
	typeRepo repository.CardTypeRepository,
	subTypeRepo repository.CardSubTypeRepository,
	statsRepo repository.CardStatisticsRepository,
	logger *slog.Logger,
) CardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cardService{
		db:          db,
		cardRepo:    cardRepo,
		typeRepo:    typeRepo,
		subTypeRepo: subTypeRepo,
		statsRepo:   statsRepo,
		logger:      logger,
	}
}

// resolveTaxonomy はタイプとサブタイプを解決し、サブタイプが
// そのタイプに属していることを検証します。
// 参照が解決できない場合はカード行を一切書き込まずに失敗します。
func (s *cardService) resolveTaxonomy(ctx context.Context, tx *gorm.DB, typeID, subTypeID uuid.UUID) (*model.CardType, *model.CardSubType, error) {
	cardType, err := s.typeRepo.FindByID(ctx, tx, typeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("TYPE_NOT_FOUND", "指定されたカードタイプが見つかりません。", "type_id", model.ErrNotFound)
		}
		s.logger.Error("Error resolving card type", slog.Any("error", err))
		return nil, nil, model.ErrInternalServer
	}

	subType, err := s.subTypeRepo.FindByID(ctx, tx, subTypeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil, model.NewAppError("SUB_TYPE_NOT_FOUND", "指定されたカードサブタイプが見つかりません。", "sub_type_id", model.ErrNotFound)
		}
		s.logger.Error("Error resolving card sub type", slog.Any("error", err))
		return nil, nil, model.ErrInternalServer
	}

	// サブタイプは指定されたタイプ配下のものでなければならない
	if subType.TypeID != cardType.TypeID {
		return nil, nil, model.NewAppError("SUB_TYPE_MISMATCH", "指定されたサブタイプはそのカードタイプに属していません。", "sub_type_id", model.ErrInvalidInput)
	}

	return cardType, subType, nil
}

func (s *cardService) CreateCard(ctx context.Context, req *model.CreateCardRequest) (*model.CardView, error) {
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return nil, model.NewAppError("INVALID_TYPE_ID", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
	}
	subTypeID, err := uuid.Parse(req.SubTypeID)
	if err != nil {
		return nil, model.NewAppError("INVALID_SUB_TYPE_ID", "sub_type_idの形式が正しくありません。", "sub_type_id", model.ErrInvalidInput)
	}

	var createdView *model.CardView

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. タイプ・サブタイプの解決と整合性チェック
		if _, _, err := s.resolveTaxonomy(ctx, tx, typeID, subTypeID); err != nil {
			return err
		}

		// 2. カードを作成
		card := &model.Card{
			CardID:      uuid.New(),
			Name:        req.Name,
			Code:        req.Code,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			TypeID:      typeID,
			SubTypeID:   subTypeID,
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_CARD", "そのカード名またはカードコードは既に使用されています。", "", model.ErrConflict)
			}
			s.logger.Error("Error creating card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		// 3. ステータスが指定されていれば同一トランザクションで作成
		// (ステータスの書き込み失敗時はカード行もロールバックされる)
		if req.Statistics != nil {
			stats := &model.CardStatistics{
				StatisticsID: uuid.New(),
				CardID:       card.CardID,
				Stars:        req.Statistics.Stars,
			}
			if req.Statistics.Attack != nil {
				stats.Attack = *req.Statistics.Attack
			}
			if req.Statistics.Defense != nil {
				stats.Defense = *req.Statistics.Defense
			}
			if err := s.statsRepo.Create(ctx, tx, stats); err != nil {
				s.logger.Error("Error creating card statistics in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 4. コミット済みの結合状態を返すため、関連を含めて再読込
		fullCard, err := s.cardRepo.FindFull(ctx, tx, card.CardID)
		if err != nil {
			s.logger.Error("Error fetching created card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		createdView = model.NewCardView(fullCard)
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for CreateCard", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return createdView, nil
}

func (s *cardService) GetCards(ctx context.Context, filter *model.CardFilter) ([]*model.CardView, error) {
	filter.Pagination = filter.Pagination.Normalize()

	cards, err := s.cardRepo.Search(ctx, s.db, filter)
	if err != nil {
		s.logger.Error("Error listing cards", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	views := make([]*model.CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, model.NewCardView(card))
	}
	return views, nil
}

func (s *cardService) FindCard(ctx context.Context, filter *model.CardFilter) (*model.CardView, error) {
	// 単体検索は id / name / stars のいずれかが必須
	if !filter.HasLookupKey() {
		return nil, model.NewAppError("FILTER_REQUIRED", "id・name・starsのいずれかのフィルタを指定してください。", "", model.ErrInvalidInput)
	}

	card, err := s.cardRepo.SearchOne(ctx, s.db, filter)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		s.logger.Error("Error finding card", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return model.NewCardView(card), nil
}

func (s *cardService) PatchCard(ctx context.Context, cardID uuid.UUID, req *model.PatchCardRequest) (*model.CardView, error) {
	var updatedView *model.CardView

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. ステータス関連込みでカードをロード
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return err // model.ErrNotFound or ラップ済みエラー
		}

		// 2. 指定されたフィールドだけをマージ
		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["Name"] = *req.Name
		}
		if req.Code != nil {
			updates["Code"] = *req.Code
		}
		if req.Description != nil {
			updates["Description"] = *req.Description
		}
		if req.ImageURL != nil {
			updates["ImageURL"] = *req.ImageURL
		}

		// タイプ・サブタイプの付け替えはマージ後の組み合わせで整合性を検証する
		effectiveTypeID := card.TypeID
		if req.TypeID != nil {
			newTypeID, err := uuid.Parse(*req.TypeID)
			if err != nil {
				return model.NewAppError("INVALID_TYPE_ID", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
			}
			if _, err := s.typeRepo.FindByID(ctx, tx, newTypeID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("TYPE_NOT_FOUND", "指定されたカードタイプが見つかりません。", "type_id", model.ErrNotFound)
				}
				s.logger.Error("Error resolving card type in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
			updates["TypeID"] = newTypeID
			effectiveTypeID = newTypeID
		}

		effectiveSubTypeID := card.SubTypeID
		if req.SubTypeID != nil {
			newSubTypeID, err := uuid.Parse(*req.SubTypeID)
			if err != nil {
				return model.NewAppError("INVALID_SUB_TYPE_ID", "sub_type_idの形式が正しくありません。", "sub_type_id", model.ErrInvalidInput)
			}
			updates["SubTypeID"] = newSubTypeID
			effectiveSubTypeID = newSubTypeID
		}
		if req.TypeID != nil || req.SubTypeID != nil {
			subType, err := s.subTypeRepo.FindByID(ctx, tx, effectiveSubTypeID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("SUB_TYPE_NOT_FOUND", "指定されたカードサブタイプが見つかりません。", "sub_type_id", model.ErrNotFound)
				}
				s.logger.Error("Error resolving card sub type in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
			if subType.TypeID != effectiveTypeID {
				return model.NewAppError("SUB_TYPE_MISMATCH", "指定されたサブタイプはそのカードタイプに属していません。", "sub_type_id", model.ErrInvalidInput)
			}
		}

		// 3. ステータスのマージ (既存行がない場合は作成せずエラー)
		if req.Statistics != nil {
			if card.Statistics == nil {
				return model.NewAppError("STATISTICS_MISSING", "このカードにはステータスが登録されていないため更新できません。", "statistics", model.ErrInvalidInput)
			}
			statsUpdates := make(map[string]interface{})
			if req.Statistics.Attack != nil {
				statsUpdates["Attack"] = *req.Statistics.Attack
			}
			if req.Statistics.Defense != nil {
				statsUpdates["Defense"] = *req.Statistics.Defense
			}
			if req.Statistics.Stars != nil {
				statsUpdates["Stars"] = *req.Statistics.Stars
			}
			if err := s.statsRepo.Update(ctx, tx, card.Statistics.StatisticsID, statsUpdates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				s.logger.Error("Error updating card statistics in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 4. カード本体の更新
		if len(updates) > 0 {
			if err := s.cardRepo.Update(ctx, tx, cardID, updates); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return model.NewAppError("DUPLICATE_CARD", "そのカード名またはカードコードは既に使用されています。", "", model.ErrConflict)
				}
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				s.logger.Error("Error updating card in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 5. マージ後の結合状態を再読込して返す
		fullCard, err := s.cardRepo.FindFull(ctx, tx, cardID)
		if err != nil {
			s.logger.Error("Error fetching updated card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		updatedView = model.NewCardView(fullCard)
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PatchCard", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedView, nil
}

func (s *cardService) SoftDeleteCard(ctx context.Context, cardID uuid.UUID) (*model.DeleteCardResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認 (論理削除済みの行はここで NotFound になる)
		if _, err := s.cardRepo.FindByID(ctx, tx, cardID); err != nil {
			return err
		}

		// 2. 論理削除 (ステータス行はそのまま残す)
		if err := s.cardRepo.SoftDelete(ctx, tx, cardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			s.logger.Error("Error soft deleting card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for SoftDeleteCard", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return &model.DeleteCardResponse{
		Message:   fmt.Sprintf("Card with id %s has been soft deleted successfully", cardID),
		DeletedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
