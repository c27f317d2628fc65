package order

import (
	"context"
	"time"

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

// MockOrderService persists orders in memory.
type MockOrderService struct {
	NextID int64
	Orders []*orders.Order
}

func NewMockOrderService() *MockOrderService {
	return &MockOrderService{NextID: 1}
}

func (m *MockOrderService) Create(_ context.Context, userID int64, packageTitle, coinDetails string, solAmount float64) (*orders.Order, error) {
	order := &orders.Order{
		ID:          m.NextID,
		UserID:      userID,
		Package:     packageTitle,
		CoinDetails: coinDetails,
		SolAmount:   solAmount,
		Status:      orders.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	m.NextID++
	m.Orders = append(m.Orders, order)
	return order, nil
}
