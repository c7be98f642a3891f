// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go_5_card_catalog/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
// 診断用にリクエストパスとタイムスタンプをエラー詳細に付与します。
func HandleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var detail model.ErrorDetail
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		// AppError の場合、その詳細情報をレスポンスとして使用
		detail = appErr.Detail
	} else {
		switch {
		case errors.Is(err, model.ErrNotFound):
			detail = model.ErrorDetail{Code: "NOT_FOUND", Message: "指定されたリソースが見つかりません。"}
		case errors.Is(err, model.ErrInvalidInput):
			detail = model.ErrorDetail{Code: "INVALID_INPUT", Message: "リクエストの内容が正しくありません。"}
		case errors.Is(err, model.ErrConflict):
			detail = model.ErrorDetail{Code: "CONFLICT", Message: "リソースが重複しています。"}
		default:
			// 予期せぬエラーはログに詳細を残し、クライアントには汎用メッセージを返す
			logger.Error("Unhandled error", slog.Any("error", err))
			detail = model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "サーバー内部でエラーが発生しました。"}
		}
	}

	detail.Path = r.URL.Path
	detail.Timestamp = time.Now().UTC().Format(time.RFC3339)

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Success: false, Error: detail}, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
