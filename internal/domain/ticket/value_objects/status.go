package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusPending    TicketStatus = "pending"
	StatusAccepted   TicketStatus = "accepted"
	StatusRejected   TicketStatus = "rejected"
	StatusInProgress TicketStatus = "in_progress"
	StatusCompleted  TicketStatus = "completed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:    true,
	StatusAccepted:   true,
	StatusRejected:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

// Only the terminal states are locked down. Dispatchers correct mistakes by
// moving tickets backwards, so the non-terminal states accept any target.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAccepted,
		StatusRejected,
		StatusInProgress,
		StatusCompleted,
	},
	StatusAccepted: {
		StatusPending,
		StatusInProgress,
		StatusCompleted,
	},
	StatusInProgress: {
		StatusPending,
		StatusAccepted,
		StatusCompleted,
	},
	StatusRejected:  {},
	StatusCompleted: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsAccepted() bool {
	return ts == StatusAccepted
}

func (ts TicketStatus) IsRejected() bool {
	return ts == StatusRejected
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

// IsTerminal reports whether the status admits no further transitions.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusRejected || ts == StatusCompleted
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
