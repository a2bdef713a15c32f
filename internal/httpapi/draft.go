package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/draftdesk/fantasy-draft-backend/internal/auth"
	"github.com/draftdesk/fantasy-draft-backend/internal/engine"
	"github.com/draftdesk/fantasy-draft-backend/pkg/types"
)

// SetConfig installs the league's quotas and draft order. Admin only, and
// refused once the draft has started.
func (a *API) SetConfig(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	if !id.IsAdmin {
		a.writeError(w, engine.ErrUnauthorized)
		return
	}

	var req types.DraftConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	sess := a.hub.Ensure(id.League)
	if err := sess.Configure(r.Context(), req.PositionLimits, req.DraftOrder); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKResponse{OK: true})
}

// StartDraft raises the started flag. Admin only.
func (a *API) StartDraft(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	if !id.IsAdmin {
		a.writeError(w, engine.ErrUnauthorized)
		return
	}

	sess := a.hub.Ensure(id.League)
	if err := sess.Start(r.Context()); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKResponse{OK: true})
}

// DraftState is the polling endpoint: quotas, order, pick counter, whose
// turn it is, and the started flag.
func (a *API) DraftState(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	sess := a.hub.Ensure(id.League)
	state, err := sess.State(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Claim drafts a player for the calling team.
func (a *API) Claim(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	var req types.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == 0 {
		badRequest(w, "player_id required")
		return
	}

	sess := a.hub.Ensure(id.League)
	if err := sess.Claim(r.Context(), id.Team, req.PlayerID); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.OKResponse{OK: true})
}
