package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fieldops/internal/domain/ticket/value_objects"
)

func newPendingTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("T1755000000000", "Maria Souza", "5511987654321", "Rua A 10, Osasco", "Vazamento na pia", nil)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		clientName  string
		phone       string
		description string
		wantErr     string
	}{
		{
			name:        "valid ticket",
			id:          "T1755000000000",
			clientName:  "Maria Souza",
			phone:       "5511987654321",
			description: "Vazamento na pia",
		},
		{
			name:        "missing ID",
			clientName:  "Maria Souza",
			phone:       "5511987654321",
			description: "Vazamento",
			wantErr:     "ticket ID is required",
		},
		{
			name:        "missing client name",
			id:          "T1755000000000",
			phone:       "5511987654321",
			description: "Vazamento",
			wantErr:     "client name is required",
		},
		{
			name:       "missing description",
			id:         "T1755000000000",
			clientName: "Maria Souza",
			phone:      "5511987654321",
			wantErr:    "description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.id, tt.clientName, tt.phone, "Rua A", tt.description, nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, tk.Status())
			assert.Zero(t, tk.LinkedOrderID())
			assert.NotNil(t, tk.PhotoURLs())
		})
	}
}

func TestTicketAccept(t *testing.T) {
	t.Run("links order and flips status", func(t *testing.T) {
		tk := newPendingTicket(t)

		err := tk.Accept(42)

		require.NoError(t, err)
		assert.Equal(t, vo.StatusAccepted, tk.Status())
		assert.Equal(t, uint(42), tk.LinkedOrderID())
	})

	t.Run("zero order ID is rejected", func(t *testing.T) {
		tk := newPendingTicket(t)

		err := tk.Accept(0)

		assert.ErrorContains(t, err, "order ID cannot be zero")
		assert.Equal(t, vo.StatusPending, tk.Status())
	})

	t.Run("link is set exactly once", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Accept(42))

		err := tk.Accept(43)

		assert.ErrorContains(t, err, "already linked")
		assert.Equal(t, uint(42), tk.LinkedOrderID())
	})

	t.Run("rejected ticket cannot be accepted", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Reject())

		err := tk.Accept(42)

		assert.Error(t, err)
		assert.Zero(t, tk.LinkedOrderID())
	})
}

func TestTicketReject(t *testing.T) {
	t.Run("pending ticket can be rejected", func(t *testing.T) {
		tk := newPendingTicket(t)

		require.NoError(t, tk.Reject())

		assert.Equal(t, vo.StatusRejected, tk.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Reject())

		assert.Error(t, tk.Reject())
		assert.Error(t, tk.ChangeStatus(vo.StatusPending))
	})
}

func TestTicketChangeStatus(t *testing.T) {
	t.Run("accepted ticket moves forward", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Accept(42))

		require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
		require.NoError(t, tk.ChangeStatus(vo.StatusCompleted))

		assert.Equal(t, vo.StatusCompleted, tk.Status())
	})

	t.Run("backward transition from in_progress is tolerated", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Accept(42))
		require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))

		err := tk.ChangeStatus(vo.StatusAccepted)

		require.NoError(t, err)
		assert.Equal(t, vo.StatusAccepted, tk.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		tk := newPendingTicket(t)
		require.NoError(t, tk.Accept(42))
		require.NoError(t, tk.ChangeStatus(vo.StatusCompleted))

		assert.Error(t, tk.ChangeStatus(vo.StatusInProgress))
	})

	t.Run("unlinked ticket cannot skip to in_progress", func(t *testing.T) {
		tk := newPendingTicket(t)

		err := tk.ChangeStatus(vo.StatusInProgress)

		assert.Error(t, err)
		assert.Equal(t, vo.StatusPending, tk.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newPendingTicket(t)

		assert.NoError(t, tk.ChangeStatus(vo.StatusPending))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		tk := newPendingTicket(t)

		assert.Error(t, tk.ChangeStatus(vo.TicketStatus("bogus")))
	})
}
