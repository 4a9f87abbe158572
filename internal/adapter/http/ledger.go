package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type balanceResp struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

// handleBalance returns the net position of an identity. Funders go negative
// by what they pledged; creators go up by what they were paid.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	identity := domain.Identity(chi.URLParam(r, "identity"))
	if identity == "" {
		writeProblem(w, http.StatusBadRequest, "INVALID_IDENTITY", "missing identity", "")
		return
	}
	h.writeBalance(w, r, identity.Account())
}

// handleEscrow returns the funds currently held for campaign {id}.
func (h *Handler) handleEscrow(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	if _, err := h.svc.GetCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeBalance(w, r, domain.EscrowAccount(id))
}

func (h *Handler) writeBalance(w http.ResponseWriter, r *http.Request, account domain.Account) {
	bal, err := h.svc.Balance(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResp{Account: string(account), Balance: int64(bal)})
}

// handleEvents returns a page of the event log. Optional `after` (seq) and
// `limit` query parameters select the page.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.EventsReq
		err error
	)
	if s := q.Get("after"); s != "" {
		if req.After, err = strconv.ParseInt(s, 10, 64); err != nil {
			writeProblem(w, http.StatusBadRequest, "INVALID_QUERY", "invalid 'after'", err.Error())
			return
		}
	}
	if s := q.Get("limit"); s != "" {
		if req.Limit, err = strconv.Atoi(s); err != nil {
			writeProblem(w, http.StatusBadRequest, "INVALID_QUERY", "invalid 'limit'", err.Error())
			return
		}
	}
	events, err := h.svc.Events(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	h.writeJSON(w, http.StatusOK, events)
}
