package order

import (
	"context"

	vo "fieldops/internal/domain/order/value_objects"
)

type OrderRepository interface {
	Save(ctx context.Context, order *ServiceOrder) error
	Update(ctx context.Context, order *ServiceOrder) error
	Delete(ctx context.Context, orderID uint) error
	GetByID(ctx context.Context, orderID uint) (*ServiceOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]*ServiceOrder, error)
}

type OrderFilter struct {
	Status *vo.OrderStatus
}
