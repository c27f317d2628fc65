package approve

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
		Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	}

	orderService interface {
		ListPending(ctx context.Context) ([]*orders.Order, error)
		Get(ctx context.Context, id int64) (*orders.Order, error)
		Approve(ctx context.Context, id int64) (*orders.Order, error)
	}
)
