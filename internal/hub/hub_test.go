package hub

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/draftdesk/fantasy-draft-backend/internal/draft"
	"github.com/draftdesk/fantasy-draft-backend/internal/store"
)

type nopStore struct{}

func (nopStore) GetConfig(context.Context, string) (*store.DraftConfig, error) { return nil, nil }
func (nopStore) SaveConfig(context.Context, *store.DraftConfig) error          { return nil }
func (nopStore) FindPlayer(context.Context, string, uint) (*store.Player, error) {
	return nil, nil
}
func (nopStore) ClaimedCounts(context.Context, string, string) (map[string]int, error) {
	return nil, nil
}
func (nopStore) ClaimPlayer(context.Context, string, uint, string) error { return nil }

func TestHub_Ensure_SamePointer(t *testing.T) {
	h := NewHub(context.Background(), nopStore{}, zap.NewNop())

	s1 := h.Ensure("sharks")
	s2 := h.Ensure("sharks")
	if s1 == nil || s1 != s2 {
		t.Fatalf("expected same session pointer")
	}
}

func TestHub_DifferentLeaguesGetDifferentSessions(t *testing.T) {
	h := NewHub(context.Background(), nopStore{}, zap.NewNop())

	if h.Ensure("sharks") == h.Ensure("jets") {
		t.Fatalf("leagues must not share a session")
	}
}

func TestHub_GetMissingIsNil(t *testing.T) {
	h := NewHub(context.Background(), nopStore{}, zap.NewNop())

	reply := make(chan *draft.Session, 1)
	h.Inbox() <- GetSession{League: "nowhere", Reply: reply}
	if got := <-reply; got != nil {
		t.Fatalf("expected nil session, got %v", got)
	}
}

func TestHub_RemoveDropsSession(t *testing.T) {
	h := NewHub(context.Background(), nopStore{}, zap.NewNop())

	first := h.Ensure("sharks")
	h.Inbox() <- RemoveSession{League: "sharks"}

	if h.Ensure("sharks") == first {
		t.Fatalf("expected a fresh session after removal")
	}
}
