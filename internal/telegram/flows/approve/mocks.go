package approve

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

func (m *MockBotApi) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// MockOrderService serves a fixed order set and applies the pending->approved
// transition rule.
type MockOrderService struct {
	OrdersByID map[int64]*orders.Order
}

func NewMockOrderService(existing ...*orders.Order) *MockOrderService {
	byID := make(map[int64]*orders.Order, len(existing))
	for _, o := range existing {
		byID[o.ID] = o
	}
	return &MockOrderService{OrdersByID: byID}
}

func (m *MockOrderService) ListPending(_ context.Context) ([]*orders.Order, error) {
	var pending []*orders.Order
	for _, o := range m.OrdersByID {
		if o.Status == orders.StatusPending {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

func (m *MockOrderService) Get(_ context.Context, id int64) (*orders.Order, error) {
	o, ok := m.OrdersByID[id]
	if !ok {
		return nil, orders.ErrNotFound
	}
	return o, nil
}

func (m *MockOrderService) Approve(_ context.Context, id int64) (*orders.Order, error) {
	o, ok := m.OrdersByID[id]
	if !ok {
		return nil, orders.ErrNotFound
	}
	if !o.Status.CanTransitionTo(orders.StatusApproved) {
		return nil, orders.ErrNotApproved
	}

	websiteID := orders.WebsiteID(id)
	o.Status = orders.StatusApproved
	o.WebsiteID = &websiteID
	return o, nil
}
