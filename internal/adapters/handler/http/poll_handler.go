package http

import (
	"net/http"
	"strings"

	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"go.uber.org/zap"
)

type PollHandler struct {
	service ports.PollService
	logger  *zap.Logger
}

func NewPollHandler(service ports.PollService, logger *zap.Logger) *PollHandler {
	return &PollHandler{
		service: service,
		logger:  logger,
	}
}

// Bootstrap returns everything the voting page renders on load.
func (h *PollHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	deviceID := strings.TrimSpace(r.URL.Query().Get("device_id"))

	out, err := h.service.Bootstrap(r.Context(), deviceID)
	if err != nil {
		writeInternalError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}
