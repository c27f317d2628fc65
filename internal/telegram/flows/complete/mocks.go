package complete

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
)

// MockBotApi records everything the flow tries to send.
type MockBotApi struct {
	SentMessages []tgbotapi.Chattable
}

func (m *MockBotApi) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

// MockOrderService serves a fixed set of orders and mimics the service's
// approval precondition on completion.
type MockOrderService struct {
	OrdersByID    map[int64]*orders.Order
	CompleteCalls int
}

func NewMockOrderService(existing ...*orders.Order) *MockOrderService {
	byID := make(map[int64]*orders.Order, len(existing))
	for _, o := range existing {
		byID[o.ID] = o
	}
	return &MockOrderService{OrdersByID: byID}
}

func (m *MockOrderService) Get(_ context.Context, id int64) (*orders.Order, error) {
	order, ok := m.OrdersByID[id]
	if !ok {
		return nil, orders.ErrNotFound
	}
	return order, nil
}

func (m *MockOrderService) Complete(_ context.Context, id int64, websiteLink string) (*orders.Order, error) {
	m.CompleteCalls++

	order, ok := m.OrdersByID[id]
	if !ok {
		return nil, orders.ErrNotFound
	}
	if order.Status != orders.StatusApproved {
		return nil, orders.ErrNotApproved
	}

	order.Status = orders.StatusCompleted
	order.WebsiteLink = &websiteLink
	return order, nil
}
