package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moonlaunch-bot/internal/stories/orders"

	sq "github.com/Masterminds/squirrel"
)

const ordersTable = "orders"

var orderRowFields = fields(orderRow{})

type orderRow struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Package     string    `db:"package"`
	CoinDetails string    `db:"coin_details"`
	Status      string    `db:"status"`
	WebsiteID   *string   `db:"website_id"`
	WebsiteLink *string   `db:"website_link"`
	SolAmount   float64   `db:"sol_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r orderRow) ToModel() *orders.Order {
	return &orders.Order{
		ID:          r.ID,
		UserID:      r.UserID,
		Package:     r.Package,
		CoinDetails: r.CoinDetails,
		Status:      orders.Status(r.Status),
		WebsiteID:   r.WebsiteID,
		WebsiteLink: r.WebsiteLink,
		SolAmount:   r.SolAmount,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *storageImpl) CreateOrder(ctx context.Context, order orders.Order) (*orders.Order, error) {
	params := map[string]interface{}{
		"user_id":      order.UserID,
		"package":      order.Package,
		"coin_details": order.CoinDetails,
		"sol_amount":   order.SolAmount,
		"status":       string(orders.StatusPending),
		"created_at":   s.now(),
	}

	q, args, err := s.stmtBuilder().
		Insert(ordersTable).
		SetMap(params).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result.LastInsertId: %w", err)
	}

	return s.GetOrderByID(ctx, id)
}

// GetOrderByID returns nil, nil when no order exists; the orders service
// maps that to its NotFound error.
func (s *storageImpl) GetOrderByID(ctx context.Context, id int64) (*orders.Order, error) {
	q, args, err := s.stmtBuilder().
		Select(orderRowFields).
		From(ordersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	var row orderRow
	err = s.db.GetContext(ctx, &row, q, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	return row.ToModel(), nil
}

func (s *storageImpl) ListPendingOrders(ctx context.Context) ([]*orders.Order, error) {
	return s.listOrdersByStatus(ctx, orders.StatusPending)
}

func (s *storageImpl) ListApprovedOrders(ctx context.Context) ([]*orders.Order, error) {
	return s.listOrdersByStatus(ctx, orders.StatusApproved)
}

func (s *storageImpl) listOrdersByStatus(ctx context.Context, status orders.Status) ([]*orders.Order, error) {
	q, args, err := s.stmtBuilder().
		Select(orderRowFields).
		From(ordersTable).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	var rows []orderRow
	if err := s.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	result := make([]*orders.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.ToModel())
	}

	return result, nil
}

func (s *storageImpl) UpdateOrderStatus(ctx context.Context, id int64, status orders.Status, websiteID *string) error {
	params := map[string]interface{}{
		"status": string(status),
	}
	if websiteID != nil {
		params["website_id"] = *websiteID
	}

	q, args, err := s.stmtBuilder().
		Update(ordersTable).
		SetMap(params).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

// CompleteOrder attaches the website link and moves the order to completed.
// The status guard makes the single-row write refuse orders that are not
// approved; the returned bool reports whether a row actually changed.
func (s *storageImpl) CompleteOrder(ctx context.Context, id int64, websiteLink string) (bool, error) {
	q, args, err := s.stmtBuilder().
		Update(ordersTable).
		Set("status", string(orders.StatusCompleted)).
		Set("website_link", websiteLink).
		Where(sq.Eq{"id": id, "status": string(orders.StatusApproved)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build sql query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected: %w", err)
	}

	return affected > 0, nil
}
