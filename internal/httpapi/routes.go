package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/draftdesk/fantasy-draft-backend/internal/auth"
)

func (a *API) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(a.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cors,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/healthz", Healthz)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/create_league", a.CreateLeague)
		r.Post("/login", a.Login)
	})

	// Everything else requires a league token
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(a.secret))

		r.Route("/players", func(r chi.Router) {
			r.Post("/upload", a.UploadPlayers)
			r.Get("/available", a.AvailablePlayers)
		})
		r.Route("/draft", func(r chi.Router) {
			r.Post("/config", a.SetConfig)
			r.Post("/start", a.StartDraft)
			r.Get("/state", a.DraftState)
			r.Post("/pick", a.Claim)
		})
		r.Route("/teams", func(r chi.Router) {
			r.Get("/me", a.MyRoster)
			r.Get("/by_name/{team}", a.RosterByName)
		})
	})

	return r
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
