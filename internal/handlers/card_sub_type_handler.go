// internal/handlers/card_sub_type_handler.go
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

type CardSubTypeHandler struct {
	service service.CardSubTypeService
	logger  *slog.Logger
}

func NewCardSubTypeHandler(s service.CardSubTypeService, logger *slog.Logger) *CardSubTypeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardSubTypeHandler{
		service: s,
		logger:  logger,
	}
}

// PostCardSubType は新しいカードサブタイプを作成するためのハンドラ
func (h *CardSubTypeHandler) PostCardSubType(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCardSubType"))

	var req model.CreateCardSubTypeRequest
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

	subType, err := h.service.CreateCardSubType(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Parent card type not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error creating card sub type in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card sub type created successfully", slog.String("sub_type_id", subType.SubTypeID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, subType, logger)
}

// GetCardSubTypes はカードサブタイプの一覧 (親タイプ結合済み) を取得するためのハンドラ
func (h *CardSubTypeHandler) GetCardSubTypes(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCardSubTypes"))

	pagination, err := webutil.ParsePagination(r)
	if err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		webutil.HandleError(w, r, logger, err)
		return
	}

	subTypes, err := h.service.GetCardSubTypes(r.Context(), pagination)
	if err != nil {
		logger.Error("Error listing card sub types in service", slog.Any("error", err))
		webutil.HandleError(w, r, logger, err)
		return
	}

	if subTypes == nil {
		subTypes = []*model.CardSubTypeView{}
	}
	logger.Info("Card sub types listed successfully", slog.Int("count", len(subTypes)))
	webutil.RespondWithJSON(w, http.StatusOK, subTypes, logger)
}

// PatchCardSubType は特定のカードサブタイプの一部を更新するためのハンドラ
func (h *CardSubTypeHandler) PatchCardSubType(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCardSubType"))

	subTypeIDStr := chi.URLParam(r, "sub_type_id")
	subTypeID, err := uuid.Parse(subTypeIDStr)
	if err != nil {
		logger.Warn("Invalid sub type ID format in URL", slog.String("sub_type_id_str", subTypeIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "sub_type_idの形式が正しくありません。", "sub_type_id", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}
	logger = logger.With(slog.String("sub_type_id", subTypeID.String()))

	var req model.PatchCardSubTypeRequest
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

	if req.Name == nil && req.TypeID == nil {
		logger.Warn("PatchCardSubType called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, r, logger, appErr)
		return
	}

	subType, err := h.service.PatchCardSubType(r.Context(), subTypeID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card sub type not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error patching card sub type in service", slog.Any("error", err), slog.Any("request", req))
		}
		webutil.HandleError(w, r, logger, err)
		return
	}

	logger.Info("Card sub type patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, subType, logger)
}
