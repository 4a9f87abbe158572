package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
)

// Problem is an RFC 7807 error body. Code is a stable machine-readable kind.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, code, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Title:  title,
		Status: status,
		Code:   code,
		Detail: detail,
	})
}

type problemKind struct {
	err    error
	status int
	code   string
}

var problemKinds = []problemKind{
	{domain.ErrInvalidGoal, http.StatusBadRequest, "INVALID_GOAL"},
	{domain.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{domain.ErrInvalidIdentity, http.StatusBadRequest, "INVALID_IDENTITY"},
	{domain.ErrUnknownCampaign, http.StatusNotFound, "UNKNOWN_CAMPAIGN"},
	{domain.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED"},
	{domain.ErrSelfFundingForbidden, http.StatusForbidden, "SELF_FUNDING_FORBIDDEN"},
	{domain.ErrCampaignClosed, http.StatusConflict, "CAMPAIGN_CLOSED"},
	{domain.ErrAlreadySettled, http.StatusConflict, "ALREADY_SETTLED"},
	{domain.ErrGoalNotMet, http.StatusConflict, "GOAL_NOT_MET"},
	{domain.ErrAmountOverflow, http.StatusConflict, "AMOUNT_OVERFLOW"},
}

// writeError maps ledger rejections to problem responses. Anything else is
// logged and reported as a 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, k := range problemKinds {
		if errors.Is(err, k.err) {
			writeProblem(w, k.status, k.code, http.StatusText(k.status), err.Error())
			return
		}
	}
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeProblem(w, http.StatusInternalServerError, "INTERNAL", "internal error", "")
}
