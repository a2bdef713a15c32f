package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/draftdesk/fantasy-draft-backend/internal/draft"
)

type HubMsg interface{ isHubMsg() }

type EnsureSession struct {
	League string
	Reply  chan *draft.Session
}

type GetSession struct {
	League string
	Reply  chan *draft.Session
}

type RemoveSession struct {
	League string
}

type ShutdownHub struct{}

func (EnsureSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Hub owns the per-league draft sessions. Registry access goes through its
// loop, so two requests for the same league always land on the same
// session, and sessions for different leagues share nothing.
type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*draft.Session
	store    draft.Store
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, st draft.Store, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*draft.Session),
		store:    st,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Ensure returns the league's session, creating it on first use.
func (h *Hub) Ensure(league string) *draft.Session {
	reply := make(chan *draft.Session, 1)
	h.inbox <- EnsureSession{League: league, Reply: reply}
	return <-reply
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case EnsureSession:
				if s := h.sessions[msg.League]; s != nil {
					msg.Reply <- s
					break
				}
				s := draft.NewSession(h.ctx, msg.League, h.store, h.log)
				h.sessions[msg.League] = s
				msg.Reply <- s

			case GetSession:
				msg.Reply <- h.sessions[msg.League] // May be nil

			case RemoveSession:
				if s := h.sessions[msg.League]; s != nil {
					s.Close()
					delete(h.sessions, msg.League)
				}

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for _, s := range h.sessions {
		s.Close()
	}
	clear(h.sessions)
	h.cancel()
}
