package engine

import "errors"

var ErrNotConfigured = errors.New("draft not configured")
var ErrNotYourTurn = errors.New("not your turn")
var ErrPlayerNotFound = errors.New("player not found")
var ErrAlreadyClaimed = errors.New("player already drafted")
var ErrQuotaExhausted = errors.New("roster quota exhausted")
var ErrDraftStarted = errors.New("draft already started")
var ErrUnauthorized = errors.New("admin only")
