package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/reports/usecases"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type SummaryExecutor interface {
	Execute(ctx context.Context) (*usecases.SummaryResult, error)
}

type ReportHandler struct {
	summaryUC SummaryExecutor
	logger    logger.Interface
}

func NewReportHandler(summaryUC SummaryExecutor, logger logger.Interface) *ReportHandler {
	return &ReportHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// Summary handles GET /reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	result, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
