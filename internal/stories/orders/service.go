package orders

import (
	"context"
	"fmt"

	"moonlaunch-bot/internal/metrics"

	"github.com/samber/lo"
)

// Service owns the order lifecycle rules. The storage layer is pure CRUD;
// every transition check lives here.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new pending order for a customer.
func (s *Service) Create(ctx context.Context, userID int64, packageTitle, coinDetails string, solAmount float64) (*Order, error) {
	order, err := s.repo.CreateOrder(ctx, Order{
		UserID:      userID,
		Package:     packageTitle,
		CoinDetails: coinDetails,
		SolAmount:   solAmount,
		Status:      StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListPending returns pending orders newest first.
func (s *Service) ListPending(ctx context.Context) ([]*Order, error) {
	return s.repo.ListPendingOrders(ctx)
}

// ListApproved returns approved (not yet completed) orders newest first.
func (s *Service) ListApproved(ctx context.Context) ([]*Order, error) {
	return s.repo.ListApprovedOrders(ctx)
}

// Approve transitions a pending order to approved and assigns its website id.
func (s *Service) Approve(ctx context.Context, id int64) (*Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(StatusApproved) {
		return nil, fmt.Errorf("approve order %d in status %q: %w", id, order.Status, ErrNotApproved)
	}

	websiteID := WebsiteID(id)
	if err := s.repo.UpdateOrderStatus(ctx, id, StatusApproved, lo.ToPtr(websiteID)); err != nil {
		return nil, fmt.Errorf("approve order %d: %w", id, err)
	}

	metrics.OrdersApproved.Inc()

	order.Status = StatusApproved
	order.WebsiteID = lo.ToPtr(websiteID)
	return order, nil
}

// Complete transitions an approved order to completed and attaches the
// website link. Orders that were never approved are refused.
func (s *Service) Complete(ctx context.Context, id int64, websiteLink string) (*Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != StatusApproved {
		return nil, ErrNotApproved
	}

	// The update itself is guarded by status so a concurrent transition
	// cannot slip through between the read above and the write.
	ok, err := s.repo.CompleteOrder(ctx, id, websiteLink)
	if err != nil {
		return nil, fmt.Errorf("complete order %d: %w", id, err)
	}
	if !ok {
		return nil, ErrNotApproved
	}

	metrics.OrdersCompleted.Inc()

	order.Status = StatusCompleted
	order.WebsiteLink = lo.ToPtr(websiteLink)
	return order, nil
}
