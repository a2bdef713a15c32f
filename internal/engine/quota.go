package engine

// Wildcard is the reserved quota category: a shared overflow pool any
// category may draw from once its own cap is used up.
const Wildcard = "ANY"

// CapFor returns the specific cap for a category. Absence is not the same
// as zero: an uncapped category never grants a category slot and routes
// every claim through the wildcard pool.
func CapFor(quotas map[string]int, category string) (int, bool) {
	cap, ok := quotas[category]
	return cap, ok
}

// WildcardCap reads the shared overflow cap, 0 when none is configured.
func WildcardCap(quotas map[string]int) int {
	return quotas[Wildcard]
}

// WildcardUsed recomputes wildcard consumption from the ledger: for every
// category the team has drafted into, picks beyond that category's cap
// came out of the wildcard pool. A category with no cap contributes all of
// its picks, since nothing else ever pays for them.
func WildcardUsed(quotas map[string]int, ledger map[string]int) int {
	used := 0
	for category, count := range ledger {
		if category == Wildcard {
			continue
		}
		cap, _ := CapFor(quotas, category)
		if excess := count - cap; excess > 0 {
			used += excess
		}
	}
	return used
}
