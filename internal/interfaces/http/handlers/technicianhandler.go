package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/technician/dto"
	"fieldops/internal/application/technician/usecases"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type CreateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTechnicianCommand) (*dto.TechnicianDTO, error)
}

type UpdateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTechnicianCommand) (*dto.TechnicianDTO, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context) ([]*dto.TechnicianDTO, error)
}

type DeleteTechnicianExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTechnicianCommand) error
}

type CreateTechnicianRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Specialty string `json:"specialty" binding:"required"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type UpdateTechnicianRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Specialty    *string  `json:"specialty"`
	Status       *string  `json:"status"`
	Username     *string  `json:"username"`
	Password     *string  `json:"password"`
	DocumentURLs []string `json:"document_urls"`
}

type TechnicianHandler struct {
	createTechnicianUC CreateTechnicianExecutor
	updateTechnicianUC UpdateTechnicianExecutor
	listTechniciansUC  ListTechniciansExecutor
	deleteTechnicianUC DeleteTechnicianExecutor
	logger             logger.Interface
}

func NewTechnicianHandler(
	createTechnicianUC CreateTechnicianExecutor,
	updateTechnicianUC UpdateTechnicianExecutor,
	listTechniciansUC ListTechniciansExecutor,
	deleteTechnicianUC DeleteTechnicianExecutor,
	logger logger.Interface,
) *TechnicianHandler {
	return &TechnicianHandler{
		createTechnicianUC: createTechnicianUC,
		updateTechnicianUC: updateTechnicianUC,
		listTechniciansUC:  listTechniciansUC,
		deleteTechnicianUC: deleteTechnicianUC,
		logger:             logger,
	}
}

// CreateTechnician handles POST /technicians
func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for create technician", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTechnicianUC.Execute(c.Request.Context(), usecases.CreateTechnicianCommand{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Specialty: req.Specialty,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Technician created successfully")
}

// ListTechnicians handles GET /technicians
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTechnician handles PUT /technicians/:id
func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var req UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTechnicianUC.Execute(c.Request.Context(), usecases.UpdateTechnicianCommand{
		TechnicianID: c.Param("id"),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Specialty:    req.Specialty,
		Status:       req.Status,
		Username:     req.Username,
		Password:     req.Password,
		DocumentURLs: req.DocumentURLs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician updated", result)
}

// DeleteTechnician handles DELETE /technicians/:id
func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	if err := h.deleteTechnicianUC.Execute(c.Request.Context(), usecases.DeleteTechnicianCommand{
		TechnicianID: c.Param("id"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
