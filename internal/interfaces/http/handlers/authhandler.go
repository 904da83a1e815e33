package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/auth/usecases"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

// LoginExecutor executes the login use case.
type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type AuthHandler struct {
	loginUC LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", loginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresAt,
		Username:    result.Username,
		DisplayName: result.DisplayName,
		Role:        result.Role,
	})
}
