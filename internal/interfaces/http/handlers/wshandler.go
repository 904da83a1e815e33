package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"fieldops/internal/infrastructure/auth"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are already filtered by the CORS layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades the change feed endpoint. Browsers cannot set headers on
// websocket dials, so the token travels as a query parameter.
type WSHandler struct {
	hub        *WSHub
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewWSHandler(hub *WSHub, jwtService *auth.JWTService, logger logger.Interface) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Feed handles GET /ws/feed
func (h *WSHandler) Feed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	claims, err := h.jwtService.Verify(token)
	if err != nil {
		h.logger.Warn("failed to verify websocket token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := h.hub.register(conn)
	if client == nil {
		return
	}

	h.logger.Info("websocket client connected", "username", claims.Username)
	h.hub.readPump(client)
	h.logger.Debug("websocket client disconnected", "username", claims.Username)
}
