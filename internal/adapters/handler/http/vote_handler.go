package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/ports"
	"go.uber.org/zap"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *zap.Logger
}

func NewVoteHandler(service ports.VoteService, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

type voteRequest struct {
	DeviceID string `json:"device_id"`
	Option   string `json:"option"`
}

type voteConflictResponse struct {
	Error    string  `json:"error"`
	UserVote *string `json:"userVote"`
}

func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	input := ports.VoteInput{
		DeviceID: req.DeviceID,
		Option:   req.Option,
	}

	err := h.service.Vote(r.Context(), input)
	if err == nil {
		writeJSON(w, http.StatusOK, okResponse{OK: true})
		return
	}

	var conflict *domain.AlreadyVotedError
	switch {
	case errors.As(err, &conflict):
		resp := voteConflictResponse{Error: conflict.Error()}
		if conflict.Option != "" {
			resp.UserVote = &conflict.Option
		}
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeJSON(w, http.StatusConflict, voteConflictResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDeviceIDRequired), errors.Is(err, domain.ErrInvalidOption):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalError(w, r, h.logger, err)
	}
}
