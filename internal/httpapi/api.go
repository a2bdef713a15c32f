package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/draftdesk/fantasy-draft-backend/internal/engine"
	"github.com/draftdesk/fantasy-draft-backend/internal/hub"
	"github.com/draftdesk/fantasy-draft-backend/internal/store"
	"github.com/draftdesk/fantasy-draft-backend/pkg/types"
)

// Store is the persistence the HTTP layer uses directly, outside the
// per-league draft sessions. *store.Store satisfies it.
type Store interface {
	GetLeague(ctx context.Context, name string) (*store.League, error)
	CreateLeague(ctx context.Context, league *store.League, admin *store.Team) error
	GetTeam(ctx context.Context, league, name string) (*store.Team, error)
	CreateTeam(ctx context.Context, team *store.Team) error
	GetConfig(ctx context.Context, league string) (*store.DraftConfig, error)
	AvailablePlayers(ctx context.Context, league string) ([]store.Player, error)
	Roster(ctx context.Context, league, team string) ([]store.Player, error)
	ReplacePlayers(ctx context.Context, league string, players []store.Player, overwrite bool) (int, error)
}

type API struct {
	hub    *hub.Hub
	store  Store
	secret []byte
	cors   []string
	log    *zap.Logger
}

func New(h *hub.Hub, st Store, secret []byte, corsOrigins []string, log *zap.Logger) *API {
	return &API{hub: h, store: st, secret: secret, cors: corsOrigins, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the draft error taxonomy onto HTTP statuses. Every
// typed failure is user-displayable; only unknown errors turn into a 500.
func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrNotConfigured), errors.Is(err, engine.ErrQuotaExhausted):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrNotYourTurn), errors.Is(err, engine.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, engine.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrAlreadyClaimed), errors.Is(err, engine.ErrDraftStarted):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		a.log.Error("request failed", zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: msg})
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func playerOut(p store.Player) types.PlayerOut {
	out := types.PlayerOut{
		ID:        p.ID,
		Name:      p.Name,
		Position:  p.Position,
		DraftedAt: p.ClaimedAt,
	}
	if p.ClaimedBy != nil {
		out.DraftedBy = *p.ClaimedBy
	}
	return out
}
