package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/infrastructure/realtime"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

// AlertHandler exposes the dispatcher attention badge.
type AlertHandler struct {
	alerter *realtime.TicketAlerter
	logger  logger.Interface
}

func NewAlertHandler(alerter *realtime.TicketAlerter, logger logger.Interface) *AlertHandler {
	return &AlertHandler{
		alerter: alerter,
		logger:  logger,
	}
}

// Badge handles GET /alerts/badge
func (h *AlertHandler) Badge(c *gin.Context) {
	count, read := h.alerter.Badge()
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"count": count,
		"read":  read,
	})
}

// MarkRead handles POST /alerts/read
func (h *AlertHandler) MarkRead(c *gin.Context) {
	h.alerter.MarkRead()
	utils.SuccessResponse(c, http.StatusOK, "Alerts acknowledged", nil)
}
