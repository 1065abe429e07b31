package viewer

import "fmt"

// Navigator tracks the visible slide. The index is always within [0, total)
// unless the deck is empty, in which case it stays 0.
type Navigator struct {
	index int
	total int
}

// NewNavigator starts at the first slide
func NewNavigator(total int) Navigator {
	if total < 0 {
		total = 0
	}
	return Navigator{total: total}
}

// Index is the zero-based position
func (n Navigator) Index() int { return n.index }

// Total is the slide count
func (n Navigator) Total() int { return n.total }

// Go moves to i, clamped into range
func (n *Navigator) Go(i int) {
	if n.total == 0 {
		n.index = 0
		return
	}
	n.index = max(0, min(i, n.total-1))
}

func (n *Navigator) Next()  { n.Go(n.index + 1) }
func (n *Navigator) Prev()  { n.Go(n.index - 1) }
func (n *Navigator) First() { n.Go(0) }
func (n *Navigator) Last()  { n.Go(n.total - 1) }

// CanPrev and CanNext report whether the move would change the position
func (n Navigator) CanPrev() bool { return n.index > 0 }
func (n Navigator) CanNext() bool { return n.index < n.total-1 }

// Indicator is the "n / total" counter, one-based
func (n Navigator) Indicator() string {
	if n.total == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", n.index+1, n.total)
}
