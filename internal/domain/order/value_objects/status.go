package valueobjects

import "fmt"

type OrderStatus string

const (
	StatusOpen      OrderStatus = "open"
	StatusQuote     OrderStatus = "quote"
	StatusExecuting OrderStatus = "executing"
	StatusExecuted  OrderStatus = "executed"
	StatusClosed    OrderStatus = "closed"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusOpen:      true,
	StatusQuote:     true,
	StatusExecuting: true,
	StatusExecuted:  true,
	StatusClosed:    true,
}

// Orders only move forward. The quote state additionally closes directly
// when the client declines the quote.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusOpen: {
		StatusQuote,
		StatusExecuting,
	},
	StatusQuote: {
		StatusExecuting,
		StatusClosed,
	},
	StatusExecuting: {
		StatusExecuted,
	},
	StatusExecuted: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (os OrderStatus) String() string {
	return string(os)
}

func (os OrderStatus) IsValid() bool {
	return validOrderStatuses[os]
}

func (os OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	allowedTransitions, ok := orderStatusTransitions[os]
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

func (os OrderStatus) IsOpen() bool {
	return os == StatusOpen
}

func (os OrderStatus) IsQuote() bool {
	return os == StatusQuote
}

func (os OrderStatus) IsExecuting() bool {
	return os == StatusExecuting
}

func (os OrderStatus) IsExecuted() bool {
	return os == StatusExecuted
}

func (os OrderStatus) IsClosed() bool {
	return os == StatusClosed
}

func NewOrderStatus(s string) (OrderStatus, error) {
	os := OrderStatus(s)
	if !os.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return os, nil
}
