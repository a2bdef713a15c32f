package draft

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/draftdesk/fantasy-draft-backend/internal/engine"
	"github.com/draftdesk/fantasy-draft-backend/internal/store"
)

// Store is the slice of persistence the draft session needs. *store.Store
// satisfies it; tests substitute an in-memory implementation.
type Store interface {
	GetConfig(ctx context.Context, league string) (*store.DraftConfig, error)
	SaveConfig(ctx context.Context, cfg *store.DraftConfig) error
	FindPlayer(ctx context.Context, league string, id uint) (*store.Player, error)
	ClaimedCounts(ctx context.Context, league, team string) (map[string]int, error)
	ClaimPlayer(ctx context.Context, league string, id uint, team string) error
}

// State is the polling view of a league's draft.
type State struct {
	Quotas      map[string]int `json:"position_limits"`
	Order       []string       `json:"draft_order"`
	PickCount   int            `json:"pick_count"`
	CurrentTeam string         `json:"current_team,omitempty"`
	Started     bool           `json:"started"`
}

type Msg interface{ isSessionMsg() }

type claimMsg struct {
	ctx      context.Context
	team     string
	playerID uint
	reply    chan error
}

func (claimMsg) isSessionMsg() {}

type configureMsg struct {
	ctx    context.Context
	quotas map[string]int
	order  []string
	reply  chan error
}

func (configureMsg) isSessionMsg() {}

type startMsg struct {
	ctx   context.Context
	reply chan error
}

func (startMsg) isSessionMsg() {}

type stateMsg struct {
	ctx   context.Context
	reply chan stateReply
}

func (stateMsg) isSessionMsg() {}

type stateReply struct {
	state State
	err   error
}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

// Session serializes every draft operation for one league through a single
// goroutine. The claim sequence (turn check, quota check, conditional
// write) runs start to finish inside the loop, so concurrent claims
// against the same league cannot interleave; different leagues run on
// different sessions and never contend.
type Session struct {
	league string
	store  Store
	log    *zap.Logger

	inbox  chan Msg
	ctx    context.Context
	cancel context.CancelFunc
}

func NewSession(parent context.Context, league string, st Store, log *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(parent)

	s := &Session{
		league: league,
		store:  st,
		log:    log.With(zap.String("league", league)),
		inbox:  make(chan Msg, 64),
		ctx:    ctx,
		cancel: cancel,
	}

	go s.loop()
	return s
}

func (s *Session) loop() {
	for {
		select {
		case <-s.ctx.Done():
			return

		case m := <-s.inbox:
			switch msg := m.(type) {
			case claimMsg:
				msg.reply <- s.claim(msg.ctx, msg.team, msg.playerID)
			case configureMsg:
				msg.reply <- s.configure(msg.ctx, msg.quotas, msg.order)
			case startMsg:
				msg.reply <- s.start(msg.ctx)
			case stateMsg:
				st, err := s.state(msg.ctx)
				msg.reply <- stateReply{state: st, err: err}
			case Shutdown:
				s.cancel()
				return
			}
		}
	}
}

// Claim attempts to draft a player for a team. Exactly one of two outcomes
// holds afterwards: the claim committed and the pick counter advanced, or
// nothing changed and a typed error says why.
func (s *Session) Claim(ctx context.Context, team string, playerID uint) error {
	reply := make(chan error, 1)
	return s.send(ctx, claimMsg{ctx: ctx, team: team, playerID: playerID, reply: reply}, reply)
}

// Configure installs quotas and draft order, resetting the pick counter.
// Rejected once the draft has started.
func (s *Session) Configure(ctx context.Context, quotas map[string]int, order []string) error {
	reply := make(chan error, 1)
	return s.send(ctx, configureMsg{ctx: ctx, quotas: quotas, order: order, reply: reply}, reply)
}

// Start raises the started flag. It does not reset the pick counter.
func (s *Session) Start(ctx context.Context) error {
	reply := make(chan error, 1)
	return s.send(ctx, startMsg{ctx: ctx, reply: reply}, reply)
}

// State returns a consistent snapshot of the draft. An unconfigured league
// yields an empty state, not an error.
func (s *Session) State(ctx context.Context) (State, error) {
	reply := make(chan stateReply, 1)
	select {
	case s.inbox <- stateMsg{ctx: ctx, reply: reply}:
	case <-ctx.Done():
		return State{}, ctx.Err()
	case <-s.ctx.Done():
		return State{}, s.ctx.Err()
	}
	select {
	case r := <-reply:
		return r.state, r.err
	case <-ctx.Done():
		return State{}, ctx.Err()
	case <-s.ctx.Done():
		return State{}, s.ctx.Err()
	}
}

func (s *Session) Close() {
	s.cancel()
}

func (s *Session) send(ctx context.Context, m Msg, reply chan error) error {
	select {
	case s.inbox <- m:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

func (s *Session) claim(ctx context.Context, team string, playerID uint) error {
	cfg, err := s.store.GetConfig(ctx, s.league)
	if err != nil {
		return err
	}
	if cfg == nil {
		return engine.ErrNotConfigured
	}

	expected, err := engine.CurrentTurn(cfg.Order, cfg.PickCount)
	if err != nil {
		return err
	}
	if team != expected {
		return fmt.Errorf("%w: it is %s's pick", engine.ErrNotYourTurn, expected)
	}

	p, err := s.store.FindPlayer(ctx, s.league, playerID)
	if err != nil {
		return err
	}
	if p == nil {
		return engine.ErrPlayerNotFound
	}
	if p.ClaimedBy != nil {
		return engine.ErrAlreadyClaimed
	}

	ledger, err := s.store.ClaimedCounts(ctx, s.league, team)
	if err != nil {
		return err
	}
	slot, err := engine.Evaluate(cfg.Quotas, p.Position, ledger)
	if err != nil {
		return err
	}

	if err := s.store.ClaimPlayer(ctx, s.league, playerID, team); err != nil {
		return err
	}

	s.log.Info("player claimed",
		zap.String("team", team),
		zap.Uint("player_id", playerID),
		zap.String("position", p.Position),
		zap.String("slot", string(slot)),
		zap.Int("pick", cfg.PickCount))
	return nil
}

func (s *Session) configure(ctx context.Context, quotas map[string]int, order []string) error {
	if len(order) == 0 {
		return fmt.Errorf("%w: draft order must not be empty", engine.ErrNotConfigured)
	}
	seen := make(map[string]bool, len(order))
	for _, team := range order {
		if team == "" || seen[team] {
			return fmt.Errorf("%w: draft order entries must be unique and non-empty", engine.ErrNotConfigured)
		}
		seen[team] = true
	}
	for category, cap := range quotas {
		if cap < 0 {
			return fmt.Errorf("%w: negative cap for %s", engine.ErrNotConfigured, category)
		}
	}

	existing, err := s.store.GetConfig(ctx, s.league)
	if err != nil {
		return err
	}
	if existing != nil && existing.Started {
		return engine.ErrDraftStarted
	}

	cfg := &store.DraftConfig{
		League:    s.league,
		Quotas:    quotas,
		Order:     order,
		PickCount: 0,
		Started:   false,
	}
	if err := s.store.SaveConfig(ctx, cfg); err != nil {
		return err
	}

	s.log.Info("draft configured", zap.Strings("order", order), zap.Int("categories", len(quotas)))
	return nil
}

func (s *Session) start(ctx context.Context) error {
	cfg, err := s.store.GetConfig(ctx, s.league)
	if err != nil {
		return err
	}
	if cfg == nil {
		return engine.ErrNotConfigured
	}

	cfg.Started = true
	if err := s.store.SaveConfig(ctx, cfg); err != nil {
		return err
	}

	s.log.Info("draft started", zap.Int("pick", cfg.PickCount))
	return nil
}

func (s *Session) state(ctx context.Context) (State, error) {
	cfg, err := s.store.GetConfig(ctx, s.league)
	if err != nil {
		return State{}, err
	}
	if cfg == nil {
		return State{Quotas: map[string]int{}, Order: []string{}}, nil
	}

	st := State{
		Quotas:    cfg.Quotas,
		Order:     cfg.Order,
		PickCount: cfg.PickCount,
		Started:   cfg.Started,
	}
	if current, err := engine.CurrentTurn(cfg.Order, cfg.PickCount); err == nil {
		st.CurrentTeam = current
	}
	return st, nil
}
