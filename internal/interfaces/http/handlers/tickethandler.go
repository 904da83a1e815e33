package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/ticket/usecases"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type SubmitTicketRequest struct {
	ClientName   string   `json:"client_name" binding:"required"`
	ContactPhone string   `json:"contact_phone" binding:"required"`
	Location     string   `json:"location"`
	Description  string   `json:"description" binding:"required"`
	PhotoURLs    []string `json:"photo_urls"`
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TicketHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	acceptTicketUC usecases.AcceptTicketExecutor
	rejectTicketUC usecases.RejectTicketExecutor
	changeStatusUC usecases.ChangeTicketStatusExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	trackTicketsUC usecases.TrackTicketsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	acceptTicketUC usecases.AcceptTicketExecutor,
	rejectTicketUC usecases.RejectTicketExecutor,
	changeStatusUC usecases.ChangeTicketStatusExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	trackTicketsUC usecases.TrackTicketsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		submitTicketUC: submitTicketUC,
		acceptTicketUC: acceptTicketUC,
		rejectTicketUC: rejectTicketUC,
		changeStatusUC: changeStatusUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		trackTicketsUC: trackTicketsUC,
		logger:         logger,
	}
}

// SubmitTicket handles POST /tickets (public intake form)
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for ticket submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), usecases.SubmitTicketCommand{
		ClientName:   req.ClientName,
		ContactPhone: req.ContactPhone,
		Location:     req.Location,
		Description:  req.Description,
		PhotoURLs:    req.PhotoURLs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"created_at": result.CreatedAt,
	}, "Ticket submitted successfully")
}

// TrackTickets handles GET /track (public ticket lookup by phone)
func (h *TicketHandler) TrackTickets(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("phone is required"))
		return
	}

	result, err := h.trackTicketsUC.Execute(c.Request.Context(), usecases.TrackTicketsQuery{Phone: phone})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AcceptTicket handles POST /tickets/:id/accept
func (h *TicketHandler) AcceptTicket(c *gin.Context) {
	result, err := h.acceptTicketUC.Execute(c.Request.Context(), usecases.AcceptTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket accepted", gin.H{
		"order_id":      result.OrderID,
		"ticket_status": result.TicketStatus,
		"whatsapp_link": result.WhatsAppLink,
	})
}

// RejectTicket handles POST /tickets/:id/reject
func (h *TicketHandler) RejectTicket(c *gin.Context) {
	result, err := h.rejectTicketUC.Execute(c.Request.Context(), usecases.RejectTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rejected", gin.H{
		"ticket_status": result.TicketStatus,
		"whatsapp_link": result.WhatsAppLink,
	})
}

// ChangeTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTicketStatusCommand{
		TicketID: c.Param("id"),
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
