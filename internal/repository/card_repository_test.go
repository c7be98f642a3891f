// internal/repository/card_repository_test.go
package repository

import (
	"context"
	"fmt"
	"testing"

	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRepoTestDB はテストごとに独立したインメモリSQLiteを用意し、
// スキーマをマイグレーションして返す。
// TranslateError により一意制約違反が gorm.ErrDuplicatedKey に変換される。
func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CardType{}, &model.CardSubType{}, &model.Card{}, &model.CardStatistics{}))
	return db
}

// seedTaxonomy はカードを持てる最小限のタイプ・サブタイプを作る
func seedTaxonomy(t *testing.T, db *gorm.DB) (*model.CardType, *model.CardSubType) {
	t.Helper()
	cardType := &model.CardType{TypeID: uuid.New(), Name: "Monster"}
	require.NoError(t, db.Create(cardType).Error)
	subType := &model.CardSubType{SubTypeID: uuid.New(), TypeID: cardType.TypeID, Name: "Normal Monster"}
	require.NoError(t, db.Create(subType).Error)
	return cardType, subType
}

func seedCard(t *testing.T, db *gorm.DB, cardType *model.CardType, subType *model.CardSubType, name, code string, stars *int) *model.Card {
	t.Helper()
	card := &model.Card{
		CardID:      uuid.New(),
		Name:        name,
		Code:        code,
		Description: "seeded card for repository tests",
		TypeID:      cardType.TypeID,
		SubTypeID:   subType.SubTypeID,
	}
	require.NoError(t, db.Create(card).Error)
	if stars != nil {
		stats := &model.CardStatistics{
			StatisticsID: uuid.New(),
			CardID:       card.CardID,
			Attack:       1000,
			Defense:      1000,
			Stars:        stars,
		}
		require.NoError(t, db.Create(stats).Error)
	}
	return card
}

func starsPtr(n int) *int { return &n }

func Test_gormCardRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	cardType, subType := seedTaxonomy(t, db)
	repo := NewGormCardRepository()

	first := &model.Card{
		CardID:      uuid.New(),
		Name:        "Azure Dragon Whelp",
		Code:        "YG-001",
		Description: "A young dragon with swift strikes.",
		TypeID:      cardType.TypeID,
		SubTypeID:   subType.SubTypeID,
	}
	require.NoError(t, repo.Create(ctx, db, first))

	t.Run("異常系: 同じ名前は ErrConflict", func(t *testing.T) {
		dup := &model.Card{
			CardID:      uuid.New(),
			Name:        first.Name,
			Code:        "YG-999",
			Description: "duplicate name",
			TypeID:      cardType.TypeID,
			SubTypeID:   subType.SubTypeID,
		}
		err := repo.Create(ctx, db, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 同じコードは ErrConflict", func(t *testing.T) {
		dup := &model.Card{
			CardID:      uuid.New(),
			Name:        "Different Name",
			Code:        first.Code,
			Description: "duplicate code",
			TypeID:      cardType.TypeID,
			SubTypeID:   subType.SubTypeID,
		}
		err := repo.Create(ctx, db, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_gormCardRepository_Search_FilterComposition(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	cardType, subType := seedTaxonomy(t, db)
	repo := NewGormCardRepository()

	// 別タイプのカードをノイズとして混ぜる
	otherType := &model.CardType{TypeID: uuid.New(), Name: "Spell"}
	require.NoError(t, db.Create(otherType).Error)
	otherSubType := &model.CardSubType{SubTypeID: uuid.New(), TypeID: otherType.TypeID, Name: "Normal Spell"}
	require.NoError(t, db.Create(otherSubType).Error)

	dragon := seedCard(t, db, cardType, subType, "Azure Dragon Whelp", "YG-001", starsPtr(4))
	seedCard(t, db, cardType, subType, "Iron Sentinel", "YG-009", starsPtr(8))
	seedCard(t, db, otherType, otherSubType, "Revival Spring", "YG-021", nil)

	defaultPage := model.Pagination{Limit: 10, Offset: 0}

	t.Run("正常系: フィルタなしは全件", func(t *testing.T) {
		cards, err := repo.Search(ctx, db, &model.CardFilter{Pagination: defaultPage})
		require.NoError(t, err)
		assert.Len(t, cards, 3)
	})

	t.Run("正常系: type_idで絞り込み", func(t *testing.T) {
		cards, err := repo.Search(ctx, db, &model.CardFilter{TypeID: &cardType.TypeID, Pagination: defaultPage})
		require.NoError(t, err)
		assert.Len(t, cards, 2)
	})

	t.Run("正常系: starsはJOINで絞り込み", func(t *testing.T) {
		cards, err := repo.Search(ctx, db, &model.CardFilter{Stars: starsPtr(4), Pagination: defaultPage})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, dragon.CardID, cards[0].CardID)
		// 一覧は関連をPreloadして返す
		require.NotNil(t, cards[0].CardType)
		assert.Equal(t, "Monster", cards[0].CardType.Name)
		require.NotNil(t, cards[0].Statistics)
		assert.Equal(t, 4, *cards[0].Statistics.Stars)
	})

	t.Run("正常系: 名前とtype_idの組み合わせ", func(t *testing.T) {
		name := "Azure Dragon Whelp"
		cards, err := repo.Search(ctx, db, &model.CardFilter{Name: &name, TypeID: &cardType.TypeID, Pagination: defaultPage})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, dragon.CardID, cards[0].CardID)
	})

	t.Run("正常系: 一致なしは空スライス", func(t *testing.T) {
		name := "No Such Card"
		cards, err := repo.Search(ctx, db, &model.CardFilter{Name: &name, Pagination: defaultPage})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("正常系: limit/offsetが効く", func(t *testing.T) {
		cards, err := repo.Search(ctx, db, &model.CardFilter{Pagination: model.Pagination{Limit: 2, Offset: 0}})
		require.NoError(t, err)
		assert.Len(t, cards, 2)

		rest, err := repo.Search(ctx, db, &model.CardFilter{Pagination: model.Pagination{Limit: 2, Offset: 2}})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func Test_gormCardRepository_SearchOne(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	cardType, subType := seedTaxonomy(t, db)
	repo := NewGormCardRepository()

	card := seedCard(t, db, cardType, subType, "Azure Dragon Whelp", "YG-001", starsPtr(4))

	t.Run("正常系: IDで1件取得", func(t *testing.T) {
		found, err := repo.SearchOne(ctx, db, &model.CardFilter{ID: &card.CardID})
		require.NoError(t, err)
		assert.Equal(t, card.CardID, found.CardID)
		require.NotNil(t, found.CardSubType)
		assert.Equal(t, "Normal Monster", found.CardSubType.Name)
	})

	t.Run("異常系: 一致なしは ErrNotFound", func(t *testing.T) {
		missing := uuid.New()
		found, err := repo.SearchOne(ctx, db, &model.CardFilter{ID: &missing})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, found)
	})
}

func Test_gormCardRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	cardType, subType := seedTaxonomy(t, db)
	repo := NewGormCardRepository()

	card := seedCard(t, db, cardType, subType, "Azure Dragon Whelp", "YG-001", starsPtr(4))

	require.NoError(t, repo.SoftDelete(ctx, db, card.CardID))

	t.Run("正常系: 削除後は検索にヒットしない", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, card.CardID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		cards, err := repo.Search(ctx, db, &model.CardFilter{Pagination: model.Pagination{Limit: 10}})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("正常系: 行自体は残っている (論理削除)", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Unscoped().Model(&model.Card{}).Where("card_id = ?", card.CardID).Count(&count).Error)
		assert.EqualValues(t, 1, count)

		var raw model.Card
		require.NoError(t, db.Unscoped().Where("card_id = ?", card.CardID).First(&raw).Error)
		assert.True(t, raw.DeletedAt.Valid)
	})

	t.Run("異常系: 削除済みの再削除は ErrNotFound", func(t *testing.T) {
		err := repo.SoftDelete(ctx, db, card.CardID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormCardRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	cardType, subType := seedTaxonomy(t, db)
	repo := NewGormCardRepository()

	card := seedCard(t, db, cardType, subType, "Azure Dragon Whelp", "YG-001", nil)
	seedCard(t, db, cardType, subType, "Iron Sentinel", "YG-009", nil)

	t.Run("正常系: 指定フィールドだけ更新される", func(t *testing.T) {
		err := repo.Update(ctx, db, card.CardID, map[string]interface{}{"Name": "Azure Dragon Elder"})
		require.NoError(t, err)

		updated, err := repo.FindByID(ctx, db, card.CardID)
		require.NoError(t, err)
		assert.Equal(t, "Azure Dragon Elder", updated.Name)
		assert.Equal(t, card.Code, updated.Code) // 未指定フィールドは保持
	})

	t.Run("異常系: 既存の名前への変更は ErrConflict", func(t *testing.T) {
		err := repo.Update(ctx, db, card.CardID, map[string]interface{}{"Name": "Iron Sentinel"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 存在しないカードは ErrNotFound", func(t *testing.T) {
		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"Name": "Ghost"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
