package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/dispatch/usecases"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type MapMarkersExecutor interface {
	Execute(ctx context.Context) (*usecases.MapMarkersResult, error)
}

type RouteOrderExecutor interface {
	Execute(ctx context.Context, query usecases.RouteOrderQuery) (*usecases.RouteOrderResult, error)
}

type DispatchHandler struct {
	mapMarkersUC MapMarkersExecutor
	routeOrderUC RouteOrderExecutor
	logger       logger.Interface
}

func NewDispatchHandler(
	mapMarkersUC MapMarkersExecutor,
	routeOrderUC RouteOrderExecutor,
	logger logger.Interface,
) *DispatchHandler {
	return &DispatchHandler{
		mapMarkersUC: mapMarkersUC,
		routeOrderUC: routeOrderUC,
		logger:       logger,
	}
}

// MapMarkers handles GET /map/markers
func (h *DispatchHandler) MapMarkers(c *gin.Context) {
	result, err := h.mapMarkersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RouteOrder handles GET /map/route?order=N
func (h *DispatchHandler) RouteOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Query("order"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid order ID"))
		return
	}

	result, err := h.routeOrderUC.Execute(c.Request.Context(), usecases.RouteOrderQuery{OrderID: uint(orderID)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
