// internal/handlers/card_type_handler.go
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

type CardTypeHandler struct {
	service service.CardTypeService
	logger  *slog.Logger
}

func NewCardTypeHandler(s service.CardTypeService, logger *slog.Logger) *CardTypeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardTypeHandler{
		service: s,
		logger:  logger,
	}
}

// PostCardType は新しいカードタイプを作成するためのハンドラ
func (h *CardTypeHandler) PostCardType(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCardType"))

	var req model.CreateCardTypeRequest
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

	cardType, err := h.service.CreateCardType(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating card type in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card type created successfully", slog.String("type_id", cardType.TypeID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, cardType, logger)
}

// GetCardTypes はカードタイプの一覧を取得するためのハンドラ
func (h *CardTypeHandler) GetCardTypes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCardTypes"))

	pagination, err := webutil.ParsePagination(r)
	if err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		webutil.HandleError(w, r, logger, err)
		return
	}

	cardTypes, err := h.service.GetCardTypes(r.Context(), pagination)
	if err != nil {
		logger.Error("Error listing card types in service", slog.Any("error", err))
		webutil.HandleError(w, r, logger, err)
		return
	}

	if cardTypes == nil {
		cardTypes = []*model.CardType{}
	}
	logger.Info("Card types listed successfully", slog.Int("count", len(cardTypes)))
	webutil.RespondWithJSON(w, http.StatusOK, cardTypes, logger)
}

// PatchCardType は特定のカードタイプの一部を更新するためのハンドラ
func (h *CardTypeHandler) PatchCardType(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCardType"))

	typeIDStr := chi.URLParam(r, "type_id")
	typeID, err := uuid.Parse(typeIDStr)
	if err != nil {
		logger.Warn("Invalid type ID format in URL", slog.String("type_id_str", typeIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}
	logger = logger.With(slog.String("type_id", typeID.String()))

	var req model.PatchCardTypeRequest
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

	if req.Name == nil {
		logger.Warn("PatchCardType called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}

	cardType, err := h.service.PatchCardType(r.Context(), typeID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card type not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error patching card type in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card type patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, cardType, logger)
}
