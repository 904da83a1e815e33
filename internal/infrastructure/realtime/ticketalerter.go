package realtime

import (
	"sync"
	"time"

	"fieldops/internal/domain/order"
	ordervo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/domain/ticket"
)

// recentOrderWindow is how far back an open order still counts towards the
// attention badge.
const recentOrderWindow = 24 * time.Hour

// TicketAlerter derives the dispatcher attention badge from the ticket and
// order snapshots, and deduplicates the audible new-ticket alert. Caches do
// full refreshes, so the same ticket is observed many times; the seen set
// guarantees it alerts at most once.
type TicketAlerter struct {
	mu sync.Mutex

	badge  int
	read   bool
	seen   map[string]struct{}
	primed bool
	nowFn  func() time.Time
}

func NewTicketAlerter() *TicketAlerter {
	return &TicketAlerter{
		seen:  make(map[string]struct{}),
		read:  true,
		nowFn: time.Now,
	}
}

// Update recomputes the badge from fresh snapshots and returns the IDs of
// tickets that should trigger the audible alert. The first update primes the
// seen set silently so a restart does not replay alerts for old tickets.
func (a *TicketAlerter) Update(tickets []*ticket.Ticket, orders []*order.ServiceOrder) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	pending := 0
	var fresh []string
	for _, t := range tickets {
		if t.Status().IsPending() {
			pending++
		}
		if _, ok := a.seen[t.ID()]; !ok {
			a.seen[t.ID()] = struct{}{}
			if a.primed && t.Status().IsPending() {
				fresh = append(fresh, t.ID())
			}
		}
	}

	recentOpen := 0
	cutoff := a.nowFn().Add(-recentOrderWindow)
	for _, o := range orders {
		if o.Status() == ordervo.StatusOpen && o.CreatedAt().After(cutoff) {
			recentOpen++
		}
	}

	newBadge := pending + recentOpen
	if newBadge > a.badge {
		// More work arrived since the dispatcher last looked.
		a.read = false
	}
	a.badge = newBadge
	a.primed = true

	return fresh
}

// Badge returns the current attention count and whether the dispatcher has
// acknowledged it.
func (a *TicketAlerter) Badge() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.badge, a.read
}

// MarkRead suppresses the badge until it grows again.
func (a *TicketAlerter) MarkRead() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.read = true
}
