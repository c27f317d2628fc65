package order

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
	"moonlaunch-bot/internal/stories/packages"
	"moonlaunch-bot/internal/telegram/flows"
	"moonlaunch-bot/internal/telegram/states"
)

type (
	botApi interface {
		Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
		Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	}

	stateManager interface {
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
		GetOrderData(chatID int64) (*flows.OrderFlowData, error)
	}

	orderService interface {
		Create(ctx context.Context, userID int64, packageTitle, coinDetails string, solAmount float64) (*orders.Order, error)
	}

	packageCatalog interface {
		All() []packages.Package
		ByKey(key string) (packages.Package, bool)
		ByCallback(data string) (packages.Package, bool)
	}
)
