package id

import (
	"fmt"
	"regexp"
	"time"
)

// TicketPrefix is the leading character of client-visible ticket IDs.
const TicketPrefix = "T"

var ticketIDPattern = regexp.MustCompile(`^T\d{10,}$`)

// NewTicketID generates a client-visible ticket ID from the current time.
// The millisecond timestamp keeps IDs short enough to read over the phone
// while staying unique at the submission rates a dispatch desk sees.
func NewTicketID() string {
	return NewTicketIDAt(time.Now())
}

// NewTicketIDAt generates a ticket ID for the given time.
func NewTicketIDAt(t time.Time) string {
	return fmt.Sprintf("%s%d", TicketPrefix, t.UnixMilli())
}

// IsTicketID reports whether s has the shape of a ticket ID.
func IsTicketID(s string) bool {
	return ticketIDPattern.MatchString(s)
}
