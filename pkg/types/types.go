// Package types holds the wire payloads of the draft API.
package types

import "time"

// Client -> Server

type LoginRequest struct {
	LeagueName     string `json:"league_name"`
	LeaguePassword string `json:"league_password"`
	TeamName       string `json:"team_name"`
}

type CreateLeagueRequest struct {
	LeagueName     string `json:"league_name"`
	LeaguePassword string `json:"league_password"`
	TeamName       string `json:"team_name"`
}

type DraftConfigRequest struct {
	PositionLimits map[string]int `json:"position_limits"`
	DraftOrder     []string       `json:"draft_order"`
}

type ClaimRequest struct {
	PlayerID uint `json:"player_id"`
}

// Server -> Client

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	TeamName    string `json:"team_name"`
	LeagueName  string `json:"league_name"`
	IsAdmin     bool   `json:"is_admin"`
}

type PlayerOut struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	DraftedBy string     `json:"drafted_by,omitempty"`
	DraftedAt *time.Time `json:"drafted_at,omitempty"`
}

type RosterResponse struct {
	TeamName         string         `json:"team_name"`
	Players          []PlayerOut    `json:"players"`
	CountsByPosition map[string]int `json:"counts_by_position"`
}

type UploadResponse struct {
	Inserted int `json:"inserted"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
