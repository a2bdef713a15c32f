package httpapi

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/draftdesk/fantasy-draft-backend/internal/auth"
	"github.com/draftdesk/fantasy-draft-backend/internal/engine"
	"github.com/draftdesk/fantasy-draft-backend/internal/store"
	"github.com/draftdesk/fantasy-draft-backend/pkg/types"
)

const maxUploadBytes = 8 << 20

// UploadPlayers ingests the player pool from a CSV with name and position
// headers. Admin only. overwrite=true (the default) replaces the league's
// existing pool.
func (a *API) UploadPlayers(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())
	if !id.IsAdmin {
		a.writeError(w, engine.ErrUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file upload")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		badRequest(w, "please upload a CSV file")
		return
	}

	players, err := parsePlayersCSV(file, id.League)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	overwrite := r.URL.Query().Get("overwrite") != "false"
	inserted, err := a.store.ReplacePlayers(r.Context(), id.League, players, overwrite)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.log.Info("players uploaded",
		zap.String("league", id.League),
		zap.Int("inserted", inserted),
		zap.Bool("overwrite", overwrite))
	writeJSON(w, http.StatusOK, types.UploadResponse{Inserted: inserted})
}

func parsePlayersCSV(src io.Reader, league string) ([]store.Player, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("empty CSV")
	}

	nameCol, posCol := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameCol = i
		case "position":
			posCol = i
		}
	}
	if nameCol < 0 || posCol < 0 {
		return nil, errors.New("CSV must have 'name' and 'position' headers")
	}

	var players []store.Player
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.New("malformed CSV")
		}
		if nameCol >= len(record) || posCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		position := strings.TrimSpace(record[posCol])
		if name == "" || position == "" {
			continue
		}
		players = append(players, store.Player{League: league, Name: name, Position: position})
	}
	if len(players) == 0 {
		return nil, errors.New("no valid players found in CSV")
	}
	return players, nil
}

// AvailablePlayers lists the league's unclaimed pool, name-sorted.
func (a *API) AvailablePlayers(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.FromContext(r.Context())

	players, err := a.store.AvailablePlayers(r.Context(), id.League)
	if err != nil {
		a.writeError(w, err)
		return
	}

	out := make([]types.PlayerOut, 0, len(players))
	for _, p := range players {
		out = append(out, playerOut(p))
	}
	writeJSON(w, http.StatusOK, out)
}
