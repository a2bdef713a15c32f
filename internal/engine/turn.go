package engine

import "fmt"

// CurrentTurn maps the running pick counter onto the snake draft order:
// even rounds walk the order forward, odd rounds walk it backward, so the
// team picking first in one round picks last in the next.
func CurrentTurn(order []string, pickCount int) (string, error) {
	n := len(order)
	if n == 0 {
		return "", fmt.Errorf("%w: empty draft order", ErrNotConfigured)
	}

	round := pickCount / n
	pos := pickCount % n
	if round%2 == 1 {
		pos = n - 1 - pos
	}
	return order[pos], nil
}
