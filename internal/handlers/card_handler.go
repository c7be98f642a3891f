// internal/handlers/card_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_card_catalog/internal/model"
	"go_5_card_catalog/internal/service"
	"go_5_card_catalog/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// PostCard は新しいカードを作成するためのハンドラ。
// statistics がネストされていればカードと同時に作成されます。
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCard"))

	var req model.CreateCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, r, logger, webutil.NewValidationError(err))
		return
	}

	card, err := h.service.CreateCard(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Card creation rejected", slog.Any("error", err))
		} else {
			logger.Error("Error creating card in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card created successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// GetCards はフィルタ条件に一致するカードの一覧を取得するためのハンドラ。
// 論理削除済みのカードは結果に含まれません。
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	filter, err := webutil.ParseCardFilter(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", slog.String("error", err.Error()))
		webutil.HandleError(w, r, logger, err)
		return
	}

	cards, err := h.service.GetCards(r.Context(), filter)
	if err != nil {
		logger.Error("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, r, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.CardView{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// FindCard は単一のカードを検索するためのハンドラ。
// id・name・stars のいずれかのフィルタが必須です。
func (h *CardHandler) FindCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "FindCard"))

	filter, err := webutil.ParseCardFilter(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", slog.String("error", err.Error()))
		webutil.HandleError(w, r, logger, err)
		return
	}

	card, err := h.service.FindCard(r.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Card lookup failed", slog.Any("error", err))
		} else {
			logger.Error("Error finding card in service", slog.Any("error", err))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card retrieved successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PatchCard は特定のカードの一部を更新するためのハンドラ。
// statistics を指定した場合、既存のステータス行が必要です。
func (h *CardHandler) PatchCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCard"))

	cardIDStr := chi.URLParam(r, "card_id")
	cardID, err := uuid.Parse(cardIDStr)
	if err != nil {
		logger.Warn("Invalid card ID format in URL", slog.String("card_id_str", cardIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "card_idの形式が正しくありません。", "card_id", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	var req model.PatchCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, r, logger, webutil.NewValidationError(err))
		return
	}

	if req.IsEmpty() {
		logger.Warn("PatchCard called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}

	card, err := h.service.PatchCard(r.Context(), cardID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Card patch rejected", slog.Any("error", err))
		} else {
			logger.Error("Error patching card in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// DeleteCard は特定のカードを論理削除するためのハンドラ。
// 行は保持され、以降の一覧・検索から除外されます。
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	cardIDStr := chi.URLParam(r, "card_id")
	cardID, err := uuid.Parse(cardIDStr)
	if err != nil {
		logger.Warn("Invalid card ID format in URL", slog.String("card_id_str", cardIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "card_idの形式が正しくありません。", "card_id", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	resp, err := h.service.SoftDeleteCard(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error soft deleting card in service", slog.Any("error", err))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card soft deleted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
