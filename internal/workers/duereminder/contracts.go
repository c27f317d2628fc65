package duereminder

import (
	"context"

	"moonlaunch-bot/internal/stories/orders"
)

type OrderService interface {
	ListApproved(ctx context.Context) ([]*orders.Order, error)
}

type TelegramBot interface {
	SendMessage(chatID int64, text string) error
}
