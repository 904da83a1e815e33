package usecases

import (
	"context"
	"sort"

	"fieldops/internal/domain/expense"
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/logger"
)

type TechnicianCount struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

type SummaryResult struct {
	RevenueCents     int64             `json:"revenue_cents"`
	ExpenseCents     int64             `json:"expense_cents"`
	ProfitCents      int64             `json:"profit_cents"`
	ClosedOrders     int               `json:"closed_orders"`
	OpenOrders       int               `json:"open_orders"`
	ExpensesByType   map[string]int64  `json:"expenses_by_type"`
	TechnicianCounts []TechnicianCount `json:"technician_counts"`
}

// SummaryUseCase aggregates the profit and loss view: revenue comes from
// closed orders only, since earlier stages are estimates.
type SummaryUseCase struct {
	orderRepo   order.OrderRepository
	expenseRepo expense.ExpenseRepository
	logger      logger.Interface
}

func NewSummaryUseCase(
	orderRepo order.OrderRepository,
	expenseRepo expense.ExpenseRepository,
	logger logger.Interface,
) *SummaryUseCase {
	return &SummaryUseCase{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (uc *SummaryUseCase) Execute(ctx context.Context) (*SummaryResult, error) {
	orders, err := uc.orderRepo.List(ctx, order.OrderFilter{})
	if err != nil {
		uc.logger.Error("failed to list orders for summary", "error", err)
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		uc.logger.Error("failed to list expenses for summary", "error", err)
		return nil, err
	}

	result := &SummaryResult{
		ExpensesByType: make(map[string]int64),
	}

	perTechnician := make(map[string]int)
	for _, o := range orders {
		if o.Status() == vo.StatusClosed {
			result.ClosedOrders++
			result.RevenueCents += o.TotalCents()
		} else {
			result.OpenOrders++
		}
		for _, name := range o.AssignedTechnicians() {
			perTechnician[name]++
		}
	}

	for _, e := range expenses {
		result.ExpenseCents += e.AmountCents()
		result.ExpensesByType[e.Category().String()] += e.AmountCents()
	}

	result.ProfitCents = result.RevenueCents - result.ExpenseCents

	result.TechnicianCounts = make([]TechnicianCount, 0, len(perTechnician))
	for name, count := range perTechnician {
		result.TechnicianCounts = append(result.TechnicianCounts, TechnicianCount{Name: name, Orders: count})
	}
	sort.Slice(result.TechnicianCounts, func(i, j int) bool {
		if result.TechnicianCounts[i].Orders != result.TechnicianCounts[j].Orders {
			return result.TechnicianCounts[i].Orders > result.TechnicianCounts[j].Orders
		}
		return result.TechnicianCounts[i].Name < result.TechnicianCounts[j].Name
	})

	return result, nil
}
