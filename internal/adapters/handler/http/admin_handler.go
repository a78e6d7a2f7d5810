package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"go.uber.org/zap"
)

const AdminKeyHeader = "X-Admin-Key"

type AdminHandler struct {
	service  ports.AdminService
	password string
	logger   *zap.Logger
}

func NewAdminHandler(service ports.AdminService, password string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		password: password,
		logger:   logger,
	}
}

// Authorize guards the admin routes with the shared secret. Without a
// configured secret every admin request is refused with 503.
func (h *AdminHandler) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.password == "" {
			writeError(w, http.StatusServiceUnavailable, "Admin password is not configured on server")
			return
		}

		provided := r.Header.Get(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.password)) != 1 {
			writeError(w, http.StatusUnauthorized, "Unauthorized admin access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		writeInternalError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

type replaceConfigRequest struct {
	PollOptions any             `json:"pollOptions"`
	Nutrition   any             `json:"nutrition"`
	ResetVotes  json.RawMessage `json:"resetVotes"`
}

type replaceConfigResponse struct {
	OK      bool               `json:"ok"`
	Message string             `json:"message"`
	Config  *domain.PollConfig `json:"config"`
}

func (h *AdminHandler) ReplaceConfig(w http.ResponseWriter, r *http.Request) {
	var req replaceConfigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	input := ports.ReplaceConfigInput{
		Options:    req.PollOptions,
		Nutrition:  req.Nutrition,
		ResetVotes: truthy(req.ResetVotes, true),
	}

	result, err := h.service.ReplaceConfig(r.Context(), input)
	if err != nil {
		var invalid *domain.ValidationError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, invalid.Reason)
			return
		}
		writeInternalError(w, r, h.logger, err)
		return
	}

	message := "Settings saved. Votes were reset for the new poll."
	if !result.VotesReset {
		message = "Settings saved. Existing votes were kept."
	}

	h.logger.Info("poll config replaced",
		zap.Strings("options", result.Config.Options),
		zap.Bool("votes_reset", result.VotesReset),
	)

	writeJSON(w, http.StatusOK, replaceConfigResponse{
		OK:      true,
		Message: message,
		Config:  result.Config,
	})
}
