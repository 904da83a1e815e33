package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/application/expense/usecases"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type CreateExpenseExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateExpenseCommand) (*usecases.ExpenseDTO, error)
}

type DeleteExpenseExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteExpenseCommand) error
}

type ListExpensesExecutor interface {
	Execute(ctx context.Context) ([]*usecases.ExpenseDTO, error)
}

type CreateExpenseRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

type ExpenseHandler struct {
	createExpenseUC CreateExpenseExecutor
	deleteExpenseUC DeleteExpenseExecutor
	listExpensesUC  ListExpensesExecutor
	logger          logger.Interface
}

func NewExpenseHandler(
	createExpenseUC CreateExpenseExecutor,
	deleteExpenseUC DeleteExpenseExecutor,
	listExpensesUC ListExpensesExecutor,
	logger logger.Interface,
) *ExpenseHandler {
	return &ExpenseHandler{
		createExpenseUC: createExpenseUC,
		deleteExpenseUC: deleteExpenseUC,
		listExpensesUC:  listExpensesUC,
		logger:          logger,
	}
}

// CreateExpense handles POST /expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body for create expense", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createExpenseUC.Execute(c.Request.Context(), usecases.CreateExpenseCommand{
		Category:    req.Category,
		Description: req.Description,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Expense recorded successfully")
}

// ListExpenses handles GET /expenses
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	result, err := h.listExpensesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteExpense handles DELETE /expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.deleteExpenseUC.Execute(c.Request.Context(), usecases.DeleteExpenseCommand{
		ExpenseID: c.Param("id"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
