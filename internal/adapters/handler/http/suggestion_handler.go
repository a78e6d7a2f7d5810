package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"go.uber.org/zap"
)

type SuggestionHandler struct {
	service ports.SuggestionService
	logger  *zap.Logger
}

func NewSuggestionHandler(service ports.SuggestionService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		logger:  logger,
	}
}

type suggestionRequest struct {
	DeviceID string `json:"device_id"`
	Text     string `json:"text"`
}

func (h *SuggestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	input := ports.SuggestionInput{
		DeviceID: req.DeviceID,
		Text:     req.Text,
	}

	err := h.service.Submit(r.Context(), input)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	case errors.Is(err, domain.ErrAlreadySuggested):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDeviceIDRequired),
		errors.Is(err, domain.ErrSuggestionRequired),
		errors.Is(err, domain.ErrSuggestionTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalError(w, r, h.logger, err)
	}
}
