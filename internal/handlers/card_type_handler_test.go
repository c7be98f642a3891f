// internal/handlers/card_type_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_card_catalog/internal/handlers"
	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createRequest はJSONボディ付きのテストリクエストを作成する
func createRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeErrorResponse はエラーレスポンスの封筒をデコードする
func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) model.APIErrorResponse {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestCardTypeHandler_PostCardType(t *testing.T) {
	mockService := mocks.NewMockCardTypeService(t)
	handler := handlers.NewCardTypeHandler(mockService, testLogger())
	router := chi.NewRouter()
	router.Post("/api/v1/card-types", handler.PostCardType)

	validReq := model.CreateCardTypeRequest{Name: "Monster"}
	expectedType := &model.CardType{
		TypeID:    uuid.New(),
		Name:      validReq.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectError    bool
	}{
		{
			name: "正常系: 作成成功で201",
			body: validReq,
			setupMock: func() {
				mockService.On("CreateCardType", mock.Anything, &validReq).
					Return(expectedType, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectError:    false,
		},
		{
			name:           "異常系: nameなしはバリデーションで400",
			body:           map[string]interface{}{},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系: nameが1文字はバリデーションで400",
			body:           model.CreateCardTypeRequest{Name: "M"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name: "異常系: 重複は409",
			body: validReq,
			setupMock: func() {
				mockService.On("CreateCardType", mock.Anything, &validReq).
					Return(nil, model.NewAppError("DUPLICATE_NAME", "そのタイプ名は既に使用されています。", "name", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/card-types", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectError {
				resp := decodeErrorResponse(t, rr)
				assert.False(t, resp.Success)
				assert.NotEmpty(t, resp.Error.Code)
				assert.Equal(t, "/api/v1/card-types", resp.Error.Path)
				assert.NotEmpty(t, resp.Error.Timestamp)
			} else {
				var got model.CardType
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, expectedType.TypeID, got.TypeID)
				assert.Equal(t, expectedType.Name, got.Name)
			}
		})
	}
}

func TestCardTypeHandler_GetCardTypes(t *testing.T) {
	mockService := mocks.NewMockCardTypeService(t)
	handler := handlers.NewCardTypeHandler(mockService, testLogger())
	router := chi.NewRouter()
	router.Get("/api/v1/card-types", handler.GetCardTypes)

	expectedTypes := []*model.CardType{
		{TypeID: uuid.New(), Name: "Monster"},
		{TypeID: uuid.New(), Name: "Spell"},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func()
		expectedStatus int
		expectedLen    int
		expectError    bool
	}{
		{
			name: "正常系: 一覧取得成功",
			url:  "/api/v1/card-types?limit=10&offset=0",
			setupMock: func() {
				mockService.On("GetCardTypes", mock.Anything, model.Pagination{Limit: 10, Offset: 0}).
					Return(expectedTypes, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "正常系: 0件でも空配列を返す",
			url:  "/api/v1/card-types",
			setupMock: func() {
				mockService.On("GetCardTypes", mock.Anything, model.Pagination{}).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "異常系: limitが数値でない場合は400",
			url:            "/api/v1/card-types?limit=abc",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := httptest.NewRequest("GET", tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectError {
				resp := decodeErrorResponse(t, rr)
				assert.False(t, resp.Success)
			} else {
				var got []*model.CardType
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Len(t, got, tc.expectedLen)
			}
		})
	}
}

func TestCardTypeHandler_PatchCardType(t *testing.T) {
	mockService := mocks.NewMockCardTypeService(t)
	handler := handlers.NewCardTypeHandler(mockService, testLogger())
	router := chi.NewRouter()
	router.Patch("/api/v1/card-types/{type_id}", handler.PatchCardType)

	typeID := uuid.New()
	newName := "Monster Updated"
	updatedType := &model.CardType{TypeID: typeID, Name: newName}

	tests := []struct {
		name           string
		url            string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectError    bool
	}{
		{
			name: "正常系: 部分更新成功",
			url:  "/api/v1/card-types/" + typeID.String(),
			body: map[string]interface{}{"name": newName},
			setupMock: func() {
				mockService.On("PatchCardType", mock.Anything, typeID, &model.PatchCardTypeRequest{Name: &newName}).
					Return(updatedType, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: type_idがUUIDでない場合は400",
			url:            "/api/v1/card-types/not-a-uuid",
			body:           map[string]interface{}{"name": newName},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "異常系: 更新フィールドなしは400",
			url:            "/api/v1/card-types/" + typeID.String(),
			body:           map[string]interface{}{},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name: "異常系: 存在しないタイプは404",
			url:  "/api/v1/card-types/" + typeID.String(),
			body: map[string]interface{}{"name": newName},
			setupMock: func() {
				mockService.On("PatchCardType", mock.Anything, typeID, &model.PatchCardTypeRequest{Name: &newName}).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "PATCH", tc.url, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectError {
				resp := decodeErrorResponse(t, rr)
				assert.False(t, resp.Success)
			} else {
				var got model.CardType
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, newName, got.Name)
			}
		})
	}
}
