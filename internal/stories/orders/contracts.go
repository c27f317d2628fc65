package orders

import "context"

type Repository interface {
	CreateOrder(ctx context.Context, order Order) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	ListPendingOrders(ctx context.Context) ([]*Order, error)
	ListApprovedOrders(ctx context.Context) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status Status, websiteID *string) error
	CompleteOrder(ctx context.Context, id int64, websiteLink string) (bool, error)
}
