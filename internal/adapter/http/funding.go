package httpadapter

import (
	"net/http"

	"crowdfund/internal/core/domain"
)

type pledgeReq struct {
	Amount int64 `json:"amount"`
}

// handlePledge funds campaign {id} from the calling identity. On success it
// returns the Pledged event.
func (h *Handler) handlePledge(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req pledgeReq
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON", err.Error())
		return
	}
	ev, err := h.svc.Pledge(r.Context(), id, identityFrom(r.Context()), domain.Amount(req.Amount))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}

// handleSettle checks the funding goal of campaign {id} for the calling
// identity and pays out when it is reached. On success it returns the
// Settled event.
func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	ev, err := h.svc.Settle(r.Context(), id, identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ev)
}
