package complete

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
	"moonlaunch-bot/internal/telegram/flows"
	"moonlaunch-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	}

	stateManager interface {
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
		GetCompleteOrderData(chatID int64) (*flows.CompleteOrderFlowData, error)
	}

	orderService interface {
		Get(ctx context.Context, id int64) (*orders.Order, error)
		Complete(ctx context.Context, id int64, websiteLink string) (*orders.Order, error)
	}
)
