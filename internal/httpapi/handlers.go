package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/draftdesk/fantasy-draft-backend/internal/auth"
	"github.com/draftdesk/fantasy-draft-backend/internal/store"
	"github.com/draftdesk/fantasy-draft-backend/pkg/types"
)

// CreateLeague registers a new league with a bcrypt-hashed password and
// makes the creating team its admin.
func (a *API) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var req types.CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	league := strings.TrimSpace(req.LeagueName)
	team := strings.TrimSpace(req.TeamName)
	if league == "" || team == "" {
		badRequest(w, "league and team name required")
		return
	}
	if len(req.LeaguePassword) < 4 {
		badRequest(w, "league password must be at least 4 characters")
		return
	}

	existing, err := a.store.GetLeague(r.Context(), league)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusConflict, types.ErrorResponse{Error: "league already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.LeaguePassword), bcrypt.DefaultCost)
	if err != nil {
		a.writeError(w, err)
		return
	}

	err = a.store.CreateLeague(r.Context(),
		&store.League{Name: league, PasswordHash: string(hash), AdminTeam: team, CreatedAt: time.Now().UTC()},
		&store.Team{League: league, Name: team, IsAdmin: true})
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.log.Info("league created", zap.String("league", league), zap.String("admin_team", team))
	a.issueToken(w, auth.Identity{Team: team, League: league, IsAdmin: true})
}

// Login verifies the league password and joins the caller's team, creating
// it on first login unless the draft has already started.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	league := strings.TrimSpace(req.LeagueName)
	teamName := strings.TrimSpace(req.TeamName)
	if league == "" || teamName == "" {
		badRequest(w, "league and team name required")
		return
	}

	l, err := a.store.GetLeague(r.Context(), league)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if l == nil {
		writeJSON(w, http.StatusNotFound, types.ErrorResponse{Error: "league not found"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(req.LeaguePassword)) != nil {
		writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Error: "invalid league password"})
		return
	}

	team, err := a.store.GetTeam(r.Context(), league, teamName)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if team == nil {
		// No new teams once the draft is underway.
		cfg, err := a.store.GetConfig(r.Context(), league)
		if err != nil {
			a.writeError(w, err)
			return
		}
		if cfg != nil && cfg.Started {
			writeJSON(w, http.StatusForbidden, types.ErrorResponse{Error: "draft already started, no new teams can join"})
			return
		}

		team = &store.Team{League: league, Name: teamName}
		if err := a.store.CreateTeam(r.Context(), team); err != nil {
			a.writeError(w, err)
			return
		}
		a.log.Info("team joined", zap.String("league", league), zap.String("team", teamName))
	}

	a.issueToken(w, auth.Identity{Team: teamName, League: league, IsAdmin: team.IsAdmin})
}

func (a *API) issueToken(w http.ResponseWriter, id auth.Identity) {
	token, err := auth.NewToken(a.secret, id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		TeamName:    id.Team,
		LeagueName:  id.League,
		IsAdmin:     id.IsAdmin,
	})
}

// MyRoster returns the caller's drafted players with per-position counts.
func (a *API) MyRoster(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	a.roster(w, r, id.League, id.Team)
}

// RosterByName returns another team's roster within the caller's league.
func (a *API) RosterByName(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	a.roster(w, r, id.League, chi.URLParam(r, "team"))
}

func (a *API) roster(w http.ResponseWriter, r *http.Request, league, team string) {
	players, err := a.store.Roster(r.Context(), league, team)
	if err != nil {
		a.writeError(w, err)
		return
	}

	out := make([]types.PlayerOut, 0, len(players))
	counts := make(map[string]int)
	for _, p := range players {
		out = append(out, playerOut(p))
		counts[p.Position]++
	}
	writeJSON(w, http.StatusOK, types.RosterResponse{
		TeamName:         team,
		Players:          out,
		CountsByPosition: counts,
	})
}
