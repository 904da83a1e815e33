package usecases

import (
	"context"

	"fieldops/internal/application/order/dto"
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
	"fieldops/internal/shared/utils"
)

type CreateOrderCommand struct {
	ClientName          string
	ContactPhone        string
	ContactEmail        string
	ServiceCategory     string
	Address             string
	ProblemDescription  string
	AssignedTechnicians []string
}

// CreateOrderUseCase opens a service order directly, without a client ticket.
type CreateOrderUseCase struct {
	orderRepo   order.OrderRepository
	countryCode string
	logger      logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.OrderRepository,
	countryCode string,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		countryCode: countryCode,
		logger:      logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.OrderDTO, error) {
	category, err := vo.NewServiceCategory(cmd.ServiceCategory)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	phone := utils.NormalizePhone(cmd.ContactPhone, uc.countryCode)

	newOrder, err := order.NewServiceOrder(
		cmd.ClientName,
		phone,
		cmd.ContactEmail,
		category,
		cmd.Address,
		cmd.ProblemDescription,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.AssignedTechnicians) > 0 {
		newOrder.AssignTechnicians(cmd.AssignedTechnicians)
	}

	if err := uc.orderRepo.Save(ctx, newOrder); err != nil {
		uc.logger.Error("failed to save order", "error", err)
		return nil, err
	}

	uc.logger.Info("order created", "order_id", newOrder.ID(), "client", newOrder.ClientName())

	return dto.FromEntity(newOrder), nil
}
