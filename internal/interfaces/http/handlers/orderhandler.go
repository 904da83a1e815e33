package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/order/usecases"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type CreateOrderRequest struct {
	ClientName          string   `json:"client_name" binding:"required"`
	ContactPhone        string   `json:"contact_phone" binding:"required"`
	ContactEmail        string   `json:"contact_email"`
	ServiceCategory     string   `json:"service_category" binding:"required"`
	Address             string   `json:"address"`
	ProblemDescription  string   `json:"problem_description" binding:"required"`
	AssignedTechnicians []string `json:"assigned_technicians"`
}

// OrderDraftRequest mirrors the editable order fields. Absent fields stay
// untouched, which is what lets concurrent partial saves coexist.
type OrderDraftRequest struct {
	ClientName          *string  `json:"client_name"`
	ContactPhone        *string  `json:"contact_phone"`
	ContactEmail        *string  `json:"contact_email"`
	ServiceCategory     *string  `json:"service_category"`
	Address             *string  `json:"address"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	ProblemDescription  *string  `json:"problem_description"`
	WorkNotes           *string  `json:"work_notes"`
	MaterialNotes       *string  `json:"material_notes"`
	LaborCostCents      *int64   `json:"labor_cost_cents"`
	MaterialCostCents   *int64   `json:"material_cost_cents"`
	AssignedTechnicians []string `json:"assigned_technicians"`
	PhotosBefore        []string `json:"photos_before"`
	PhotosDuring        []string `json:"photos_during"`
	PhotosAfter         []string `json:"photos_after"`
}

func (r *OrderDraftRequest) ToDraft() usecases.OrderDraft {
	return usecases.OrderDraft{
		ClientName:          r.ClientName,
		ContactPhone:        r.ContactPhone,
		ContactEmail:        r.ContactEmail,
		ServiceCategory:     r.ServiceCategory,
		Address:             r.Address,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		ProblemDescription:  r.ProblemDescription,
		WorkNotes:           r.WorkNotes,
		MaterialNotes:       r.MaterialNotes,
		LaborCostCents:      r.LaborCostCents,
		MaterialCostCents:   r.MaterialCostCents,
		AssignedTechnicians: r.AssignedTechnicians,
		PhotosBefore:        r.PhotosBefore,
		PhotosDuring:        r.PhotosDuring,
		PhotosAfter:         r.PhotosAfter,
	}
}

type TransitionOrderRequest struct {
	Status string            `json:"status" binding:"required"`
	Draft  OrderDraftRequest `json:"draft"`
}

type DeclineQuoteRequest struct {
	VisitFeeCents int64 `json:"visit_fee_cents"`
}

type OrderHandler struct {
	createOrderUC     usecases.CreateOrderExecutor
	saveOrderUC       usecases.SaveOrderExecutor
	transitionOrderUC usecases.TransitionOrderExecutor
	declineQuoteUC    usecases.DeclineQuoteExecutor
	listOrdersUC      usecases.ListOrdersExecutor
	getOrderUC        usecases.GetOrderExecutor
	deleteOrderUC     usecases.DeleteOrderExecutor
	renderReportUC    usecases.RenderReportExecutor
	logger            logger.Interface
}

func NewOrderHandler(
	createOrderUC usecases.CreateOrderExecutor,
	saveOrderUC usecases.SaveOrderExecutor,
	transitionOrderUC usecases.TransitionOrderExecutor,
	declineQuoteUC usecases.DeclineQuoteExecutor,
	listOrdersUC usecases.ListOrdersExecutor,
	getOrderUC usecases.GetOrderExecutor,
	deleteOrderUC usecases.DeleteOrderExecutor,
	renderReportUC usecases.RenderReportExecutor,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:     createOrderUC,
		saveOrderUC:       saveOrderUC,
		transitionOrderUC: transitionOrderUC,
		declineQuoteUC:    declineQuoteUC,
		listOrdersUC:      listOrdersUC,
		getOrderUC:        getOrderUC,
		deleteOrderUC:     deleteOrderUC,
		renderReportUC:    renderReportUC,
		logger:            logger,
	}
}

func parseOrderID(c *gin.Context) (uint, error) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid order ID")
	}
	return uint(orderID), nil
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for create order", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), usecases.CreateOrderCommand{
		ClientName:          req.ClientName,
		ContactPhone:        req.ContactPhone,
		ContactEmail:        req.ContactEmail,
		ServiceCategory:     req.ServiceCategory,
		Address:             req.Address,
		ProblemDescription:  req.ProblemDescription,
		AssignedTechnicians: req.AssignedTechnicians,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Order created successfully")
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{OrderID: orderID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SaveOrder handles PUT /orders/:id
func (h *OrderHandler) SaveOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req OrderDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.saveOrderUC.Execute(c.Request.Context(), usecases.SaveOrderCommand{
		OrderID: orderID,
		Draft:   req.ToDraft(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order saved", result)
}

// TransitionOrder handles PATCH /orders/:id/status
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.transitionOrderUC.Execute(c.Request.Context(), usecases.TransitionOrderCommand{
		OrderID: orderID,
		Status:  req.Status,
		Draft:   req.Draft.ToDraft(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order transitioned", result)
}

// DeclineQuote handles POST /orders/:id/decline-quote
func (h *OrderHandler) DeclineQuote(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeclineQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.declineQuoteUC.Execute(c.Request.Context(), usecases.DeclineQuoteCommand{
		OrderID:       orderID,
		VisitFeeCents: req.VisitFeeCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quote declined", result)
}

// RenderReport handles GET /orders/:id/report
func (h *OrderHandler) RenderReport(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renderReportUC.Execute(c.Request.Context(), usecases.RenderReportCommand{OrderID: orderID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"report_url": result.ReportURL})
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := parseOrderID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteOrderUC.Execute(c.Request.Context(), usecases.DeleteOrderCommand{OrderID: orderID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
