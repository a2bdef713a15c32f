package engine

import (
	"errors"
	"testing"
)

func TestCurrentTurn_SnakeOrder(t *testing.T) {
	order := []string{"A", "B", "C"}
	want := []string{"A", "B", "C", "C", "B", "A", "A", "B", "C"}

	for pick, expected := range want {
		got, err := CurrentTurn(order, pick)
		if err != nil {
			t.Fatalf("pick %d: unexpected err %v", pick, err)
		}
		if got != expected {
			t.Fatalf("pick %d: got %q, want %q", pick, got, expected)
		}
	}
}

func TestCurrentTurn_EmptyOrder(t *testing.T) {
	_, err := CurrentTurn(nil, 0)
	if err == nil || !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestCurrentTurn_TwoTeams(t *testing.T) {
	order := []string{"blue", "red"}
	want := []string{"blue", "red", "red", "blue", "blue", "red"}

	for pick, expected := range want {
		got, _ := CurrentTurn(order, pick)
		if got != expected {
			t.Fatalf("pick %d: got %q, want %q", pick, got, expected)
		}
	}
}

func TestWildcardUsed(t *testing.T) {
	cases := []struct {
		name   string
		quotas map[string]int
		ledger map[string]int
		want   int
	}{
		{
			name:   "nothing drafted",
			quotas: map[string]int{"QB": 1, "ANY": 2},
			ledger: map[string]int{},
			want:   0,
		},
		{
			name:   "within caps",
			quotas: map[string]int{"QB": 2, "RB": 2, "ANY": 1},
			ledger: map[string]int{"QB": 2, "RB": 1},
			want:   0,
		},
		{
			name:   "one over cap",
			quotas: map[string]int{"QB": 1, "ANY": 2},
			ledger: map[string]int{"QB": 2},
			want:   1,
		},
		{
			name:   "uncapped category counts entirely",
			quotas: map[string]int{"QB": 1, "ANY": 3},
			ledger: map[string]int{"QB": 1, "K": 2},
			want:   2,
		},
		{
			name:   "excess across categories sums",
			quotas: map[string]int{"QB": 1, "RB": 1, "ANY": 5},
			ledger: map[string]int{"QB": 3, "RB": 2},
			want:   3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WildcardUsed(tc.quotas, tc.ledger); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEvaluate_QuotaBeforeWildcard(t *testing.T) {
	quotas := map[string]int{"WR": 2, "ANY": 1}

	// First two WRs land on the category cap.
	for used := 0; used < 2; used++ {
		slot, err := Evaluate(quotas, "WR", map[string]int{"WR": used})
		if err != nil {
			t.Fatalf("used=%d: unexpected err %v", used, err)
		}
		if slot != SlotCategory {
			t.Fatalf("used=%d: got %q, want category slot", used, slot)
		}
	}

	// Third WR only fits via the wildcard pool.
	slot, err := Evaluate(quotas, "WR", map[string]int{"WR": 2})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if slot != SlotWildcard {
		t.Fatalf("got %q, want wildcard slot", slot)
	}
}

func TestEvaluate_WildcardAccounting(t *testing.T) {
	quotas := map[string]int{"QB": 1, "ANY": 2}

	cases := []struct {
		name     string
		ledger   map[string]int
		wantSlot Slot
		wantErr  bool
	}{
		{name: "first QB uses the cap", ledger: map[string]int{}, wantSlot: SlotCategory},
		{name: "second QB uses wildcard", ledger: map[string]int{"QB": 1}, wantSlot: SlotWildcard},
		{name: "third QB uses wildcard", ledger: map[string]int{"QB": 2}, wantSlot: SlotWildcard},
		{name: "fourth QB denied", ledger: map[string]int{"QB": 3}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := Evaluate(quotas, "QB", tc.ledger)
			if tc.wantErr {
				if !errors.Is(err, ErrQuotaExhausted) {
					t.Fatalf("want ErrQuotaExhausted, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err %v", err)
			}
			if slot != tc.wantSlot {
				t.Fatalf("got %q, want %q", slot, tc.wantSlot)
			}
		})
	}
}

func TestEvaluate_NoWildcardConfigured(t *testing.T) {
	quotas := map[string]int{"QB": 1}

	_, err := Evaluate(quotas, "QB", map[string]int{"QB": 1})
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("want ErrQuotaExhausted, got %v", err)
	}
}

func TestEvaluate_UncappedCategoryRoutesThroughWildcard(t *testing.T) {
	quotas := map[string]int{"QB": 1, "ANY": 1}

	// K has no cap: even a team's first K draws from the wildcard pool.
	slot, err := Evaluate(quotas, "K", map[string]int{})
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if slot != SlotWildcard {
		t.Fatalf("got %q, want wildcard slot", slot)
	}

	// And once the pool is spent the uncapped category is shut out.
	_, err = Evaluate(quotas, "K", map[string]int{"K": 1})
	if !errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("want ErrQuotaExhausted, got %v", err)
	}
}
