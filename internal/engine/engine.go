package engine

import "fmt"

// Slot says which budget a successful claim consumed.
type Slot string

const (
	SlotCategory Slot = "category"
	SlotWildcard Slot = "wildcard"
)

// Evaluate decides whether a team may claim one more player in the given
// category. The ledger is the team's current per-category claim counts,
// recomputed from the drafted players each time rather than cached, so the
// decision always reflects the true roster.
//
// A claim first tries the category's own cap; only when that is absent or
// full does it fall through to the shared wildcard pool.
func Evaluate(quotas map[string]int, category string, ledger map[string]int) (Slot, error) {
	used := ledger[category]
	if cap, ok := CapFor(quotas, category); ok && used < cap {
		return SlotCategory, nil
	}

	wildcardCap := WildcardCap(quotas)
	if wildcardCap <= 0 {
		return "", fmt.Errorf("%w: %s is capped and no wildcard pool is configured", ErrQuotaExhausted, category)
	}
	if remaining := wildcardCap - WildcardUsed(quotas, ledger); remaining <= 0 {
		return "", fmt.Errorf("%w: wildcard pool exhausted", ErrQuotaExhausted)
	}
	return SlotWildcard, nil
}
