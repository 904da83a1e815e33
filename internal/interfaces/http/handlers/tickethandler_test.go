package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/application/ticket/usecases"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/utils"
)

func newTicketHandler(
	submitUC usecases.SubmitTicketExecutor,
	acceptUC usecases.AcceptTicketExecutor,
	trackUC usecases.TrackTicketsExecutor,
) *TicketHandler {
	return NewTicketHandler(
		submitUC,
		acceptUC,
		&mockRejectTicketExecutor{},
		&mockChangeTicketStatusExecutor{},
		&mockListTicketsExecutor{},
		&mockGetTicketExecutor{},
		trackUC,
		&mockLogger{},
	)
}

func TestTicketHandler_SubmitTicket(t *testing.T) {
	submitUC := &mockSubmitTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.SubmitTicketCommand) (*usecases.SubmitTicketResult, error) {
			assert.Equal(t, "Maria Santos", cmd.ClientName)
			assert.Equal(t, []string{"/uploads/leak.jpg"}, cmd.PhotoURLs)
			return &usecases.SubmitTicketResult{
				TicketID:  "T1001",
				Status:    "pending",
				CreatedAt: time.Now(),
			}, nil
		},
	}
	handler := newTicketHandler(submitUC, &mockAcceptTicketExecutor{}, &mockTrackTicketsExecutor{})

	engine := gin.New()
	engine.POST("/public/tickets", handler.SubmitTicket)

	body := `{"client_name":"Maria Santos","contact_phone":"11 98765-4321","description":"Vazamento na cozinha","photo_urls":["/uploads/leak.jpg"]}`
	req := httptest.NewRequest(http.MethodPost, "/public/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "T1001", data["ticket_id"])
	assert.Equal(t, "pending", data["status"])
}

func TestTicketHandler_SubmitTicketMissingDescription(t *testing.T) {
	called := false
	submitUC := &mockSubmitTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.SubmitTicketCommand) (*usecases.SubmitTicketResult, error) {
			called = true
			return nil, nil
		},
	}
	handler := newTicketHandler(submitUC, &mockAcceptTicketExecutor{}, &mockTrackTicketsExecutor{})

	engine := gin.New()
	engine.POST("/public/tickets", handler.SubmitTicket)

	body := `{"client_name":"Maria Santos","contact_phone":"11 98765-4321"}`
	req := httptest.NewRequest(http.MethodPost, "/public/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, called)
}

func TestTicketHandler_AcceptTicket(t *testing.T) {
	acceptUC := &mockAcceptTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.AcceptTicketCommand) (*usecases.AcceptTicketResult, error) {
			assert.Equal(t, "T1001", cmd.TicketID)
			return &usecases.AcceptTicketResult{
				OrderID:      7,
				TicketStatus: "accepted",
				WhatsAppLink: "https://wa.me/5511987654321",
			}, nil
		},
	}
	handler := newTicketHandler(&mockSubmitTicketExecutor{}, acceptUC, &mockTrackTicketsExecutor{})

	engine := gin.New()
	engine.POST("/tickets/:id/accept", handler.AcceptTicket)

	req := httptest.NewRequest(http.MethodPost, "/tickets/T1001/accept", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["order_id"])
	assert.Equal(t, "accepted", data["ticket_status"])
}

func TestTicketHandler_AcceptTicketNotFound(t *testing.T) {
	acceptUC := &mockAcceptTicketExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.AcceptTicketCommand) (*usecases.AcceptTicketResult, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	handler := newTicketHandler(&mockSubmitTicketExecutor{}, acceptUC, &mockTrackTicketsExecutor{})

	engine := gin.New()
	engine.POST("/tickets/:id/accept", handler.AcceptTicket)

	req := httptest.NewRequest(http.MethodPost, "/tickets/T9999/accept", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTicketHandler_TrackTicketsRequiresPhone(t *testing.T) {
	handler := newTicketHandler(&mockSubmitTicketExecutor{}, &mockAcceptTicketExecutor{}, &mockTrackTicketsExecutor{})

	engine := gin.New()
	engine.GET("/public/tickets/track", handler.TrackTickets)

	req := httptest.NewRequest(http.MethodGet, "/public/tickets/track", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTicketHandler_TrackTickets(t *testing.T) {
	trackUC := &mockTrackTicketsExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.TrackTicketsQuery) ([]*usecases.TrackedTicket, error) {
			assert.Equal(t, "11987654321", query.Phone)
			return []*usecases.TrackedTicket{
				{TicketID: "T1001", Status: "accepted", OrderID: 7, OrderStatus: "executing"},
			}, nil
		},
	}
	handler := newTicketHandler(&mockSubmitTicketExecutor{}, &mockAcceptTicketExecutor{}, trackUC)

	engine := gin.New()
	engine.GET("/public/tickets/track", handler.TrackTickets)

	req := httptest.NewRequest(http.MethodGet, "/public/tickets/track?phone=11987654321", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	tracked := resp.Data.([]interface{})
	require.Len(t, tracked, 1)
	first := tracked[0].(map[string]interface{})
	assert.Equal(t, "executing", first["order_status"])
}
