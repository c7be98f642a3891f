// internal/service/card_sub_type_service_test.go
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBCardSubType() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test CreateCardSubType ---
func Test_cardSubTypeService_CreateCardSubType(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCardSubType()
	mockSubTypeRepo := new(mocks.CardSubTypeRepository)
	mockTypeRepo := new(mocks.CardTypeRepository)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	subTypeService := NewCardSubTypeService(db, mockSubTypeRepo, mockTypeRepo, testLogger)

	typeID := uuid.New()
	parentType := &model.CardType{
		TypeID:    typeID,
		Name:      "Monster",
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	testName := "Effect Monster"

	tests := []struct {
		name      string
		req       *model.CreateCardSubTypeRequest
		setupMock func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository)
		wantErr   error
	}{
		{
			name: "正常系: サブタイプの作成成功",
			req:  &model.CreateCardSubTypeRequest{Name: testName, TypeID: typeID.String()},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				// 1. 親タイプの存在確認
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), typeID).
					Return(parentType, nil).Once()
				// 2. サブタイプの作成
				subTypeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CardSubType")).
					Run(func(args mock.Arguments) {
						subType := args.Get(2).(*model.CardSubType)
						assert.Equal(t, testName, subType.Name)
						assert.Equal(t, typeID, subType.TypeID)
						assert.NotEqual(t, uuid.Nil, subType.SubTypeID)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 名前が空",
			req:  &model.CreateCardSubTypeRequest{Name: "", TypeID: typeID.String()},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: type_idの形式が不正",
			req:  &model.CreateCardSubTypeRequest{Name: testName, TypeID: "not-a-uuid"},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 親タイプが存在しない",
			req:  &model.CreateCardSubTypeRequest{Name: testName, TypeID: typeID.String()},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), typeID).
					Return(nil, model.ErrNotFound).Once()
				// Create は呼ばれない
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: サブタイプ名が重複",
			req:  &model.CreateCardSubTypeRequest{Name: testName, TypeID: typeID.String()},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), typeID).
					Return(parentType, nil).Once()
				subTypeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CardSubType")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: CreateでDBエラー",
			req:  &model.CreateCardSubTypeRequest{Name: testName, TypeID: typeID.String()},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), typeID).
					Return(parentType, nil).Once()
				subTypeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.CardSubType")).
					Return(errors.New("db error on create")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSubTypeRepo.Mock = mock.Mock{}
			mockTypeRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSubTypeRepo, mockTypeRepo)
			}

			subType, err := subTypeService.CreateCardSubType(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, subType)
			} else {
				require.NoError(t, err)
				require.NotNil(t, subType)
				assert.Equal(t, tt.req.Name, subType.Name)
				assert.Equal(t, typeID, subType.TypeID)
				// レスポンスには解決済みの親タイプが付いている
				require.NotNil(t, subType.CardType)
				assert.Equal(t, parentType.Name, subType.CardType.Name)
			}

			mockSubTypeRepo.AssertExpectations(t)
			mockTypeRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetCardSubTypes ---
func Test_cardSubTypeService_GetCardSubTypes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCardSubType()
	mockSubTypeRepo := new(mocks.CardSubTypeRepository)
	mockTypeRepo := new(mocks.CardTypeRepository)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	subTypeService := NewCardSubTypeService(db, mockSubTypeRepo, mockTypeRepo, testLogger)

	typeID := uuid.New()
	parentType := &model.CardType{TypeID: typeID, Name: "Monster"}
	subTypes := []*model.CardSubType{
		{SubTypeID: uuid.New(), TypeID: typeID, Name: "Normal Monster", CardType: parentType},
		{SubTypeID: uuid.New(), TypeID: typeID, Name: "Effect Monster", CardType: parentType},
	}

	tests := []struct {
		name      string
		input     model.Pagination
		setupMock func(m *mocks.CardSubTypeRepository)
		wantErr   error
		wantLen   int
	}{
		{
			name:  "正常系: 一覧取得成功 (親タイプ込みの射影)",
			input: model.Pagination{Limit: 10, Offset: 0},
			setupMock: func(m *mocks.CardSubTypeRepository) {
				m.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), model.Pagination{Limit: 10, Offset: 0}).
					Return(subTypes, nil).Once()
			},
			wantErr: nil,
			wantLen: 2,
		},
		{
			name:  "異常系: FindでDBエラー",
			input: model.Pagination{Limit: 10, Offset: 0},
			setupMock: func(m *mocks.CardSubTypeRepository) {
				m.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), model.Pagination{Limit: 10, Offset: 0}).
					Return(nil, errors.New("db error on find")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSubTypeRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSubTypeRepo)
			}

			views, err := subTypeService.GetCardSubTypes(ctx, tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, views)
			} else {
				require.NoError(t, err)
				require.Len(t, views, tt.wantLen)
				// 射影に親タイプ名が含まれること
				assert.Equal(t, "Monster", views[0].TypeName)
			}

			mockSubTypeRepo.AssertExpectations(t)
		})
	}
}

// --- Test PatchCardSubType ---
func Test_cardSubTypeService_PatchCardSubType(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBCardSubType()
	mockSubTypeRepo := new(mocks.CardSubTypeRepository)
	mockTypeRepo := new(mocks.CardTypeRepository)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	subTypeService := NewCardSubTypeService(db, mockSubTypeRepo, mockTypeRepo, testLogger)

	typeID := uuid.New()
	newTypeID := uuid.New()
	subTypeID := uuid.New()
	existingSubType := &model.CardSubType{
		SubTypeID: subTypeID,
		TypeID:    typeID,
		Name:      "Normal Monster",
		CardType:  &model.CardType{TypeID: typeID, Name: "Monster"},
	}
	newParentType := &model.CardType{TypeID: newTypeID, Name: "Spell"}
	movedSubType := &model.CardSubType{
		SubTypeID: subTypeID,
		TypeID:    newTypeID,
		Name:      "Normal Monster",
		CardType:  newParentType,
	}

	tests := []struct {
		name       string
		req        *model.PatchCardSubTypeRequest
		setupMock  func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository)
		wantErr    error
		wantTypeID uuid.UUID
	}{
		{
			name: "正常系: 親タイプの付け替え成功",
			req:  &model.PatchCardSubTypeRequest{TypeID: strPtr(newTypeID.String())},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				subTypeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID).
					Return(existingSubType, nil).Once()
				// 付け替え先タイプの存在確認
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), newTypeID).
					Return(newParentType, nil).Once()
				subTypeRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID,
					map[string]interface{}{"TypeID": newTypeID}).
					Return(nil).Once()
				subTypeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID).
					Return(movedSubType, nil).Once()
			},
			wantErr:    nil,
			wantTypeID: newTypeID,
		},
		{
			name: "異常系: サブタイプが存在しない",
			req:  &model.PatchCardSubTypeRequest{Name: strPtr("Renamed")},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				subTypeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 付け替え先タイプが存在しない",
			req:  &model.PatchCardSubTypeRequest{TypeID: strPtr(newTypeID.String())},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				subTypeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID).
					Return(existingSubType, nil).Once()
				typeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), newTypeID).
					Return(nil, model.ErrNotFound).Once()
				// Update は呼ばれない
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: type_idの形式が不正",
			req:  &model.PatchCardSubTypeRequest{TypeID: strPtr("not-a-uuid")},
			setupMock: func(subTypeRepo *mocks.CardSubTypeRepository, typeRepo *mocks.CardTypeRepository) {
				subTypeRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), subTypeID).
					Return(existingSubType, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSubTypeRepo.Mock = mock.Mock{}
			mockTypeRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockSubTypeRepo, mockTypeRepo)
			}

			subType, err := subTypeService.PatchCardSubType(ctx, subTypeID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, subType)
			} else {
				require.NoError(t, err)
				require.NotNil(t, subType)
				assert.Equal(t, tt.wantTypeID, subType.TypeID)
			}

			mockSubTypeRepo.AssertExpectations(t)
			mockTypeRepo.AssertExpectations(t)
		})
	}
}
