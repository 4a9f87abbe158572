package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

type createCampaignReq struct {
	FundingGoal int64 `json:"funding_goal"`
}

type createCampaignResp struct {
	ID int64 `json:"id"`
}

// campaignResp is the JSON view of a campaign. Deadline is unix seconds.
type campaignResp struct {
	ID          int64  `json:"id"`
	Creator     string `json:"creator"`
	FundingGoal int64  `json:"funding_goal"`
	PledgedFund int64  `json:"pledged_fund"`
	Deadline    int64  `json:"deadline"`
	Closed      bool   `json:"closed"`
	State       string `json:"state"`
	CreatedAt   int64  `json:"created_at"`
}

func toCampaignResp(c *domain.Campaign) campaignResp {
	return campaignResp{
		ID:          c.ID,
		Creator:     string(c.Creator),
		FundingGoal: int64(c.FundingGoal),
		PledgedFund: int64(c.PledgedFund),
		Deadline:    c.Deadline.Unix(),
		Closed:      c.Closed,
		State:       c.State(),
		CreatedAt:   c.CreatedAt.Unix(),
	}
}

// handleCreateCampaign creates a campaign owned by the calling identity and
// returns its id with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignReq
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON", err.Error())
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), identityFrom(r.Context()), domain.Amount(req.FundingGoal))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+strconv.FormatInt(id, 10))
	h.writeJSON(w, http.StatusCreated, createCampaignResp{ID: id})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResp(c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResp, 0, len(list))
	for i := range list {
		out = append(out, toCampaignResp(&list[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleDeadline previews the deadline for a reference time given as unix
// seconds in the `at` query parameter; it defaults to now.
func (h *Handler) handleDeadline(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if at := r.URL.Query().Get("at"); at != "" {
		sec, err := strconv.ParseInt(at, 10, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "INVALID_TIME", "invalid 'at' timestamp", err.Error())
			return
		}
		ref = time.Unix(sec, 0)
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{
		"reference": ref.Unix(),
		"deadline":  h.svc.Deadline(ref).Unix(),
	})
}

// campaignID parses the {id} path parameter, writing a 400 on failure.
func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		writeProblem(w, http.StatusBadRequest, "INVALID_CAMPAIGN_ID", "invalid campaign id", "")
		return 0, false
	}
	return id, true
}
