package telegram

import (
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/config"
	"moonlaunch-bot/internal/stories/packages"
	"moonlaunch-bot/internal/telegram/flows"
	"moonlaunch-bot/internal/telegram/flows/approve"
	"moonlaunch-bot/internal/telegram/flows/complete"
	"moonlaunch-bot/internal/telegram/flows/order"
	"moonlaunch-bot/internal/telegram/messages"
	"moonlaunch-bot/internal/telegram/states"
)

const (
	adminID    = int64(777)
	customerID = int64(42)
)

type mockBot struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *mockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{MessageID: len(m.SentMessages)}, nil
}

func (m *mockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type routerFixture struct {
	router         *Router
	bot            *mockBot
	orderBot       *order.MockBotApi
	approveBot     *approve.MockBotApi
	approveService *approve.MockOrderService
	completeBot    *complete.MockBotApi
	stateManager   *states.Manager
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	catalog, err := packages.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stateManager := states.NewManager()
	adminChecker := NewAdminChecker(&config.TelegramConfig{AdminID: adminID})

	orderBot := &order.MockBotApi{}
	orderHandler := order.NewHandler(
		orderBot, stateManager, order.NewMockOrderService(), catalog, "wallet", adminID, logger)

	approveBot := &approve.MockBotApi{}
	approveService := approve.NewMockOrderService()
	approveHandler := approve.NewHandler(approveBot, approveService, logger)

	completeBot := &complete.MockBotApi{}
	completeHandler := complete.NewHandler(completeBot, stateManager, complete.NewMockOrderService(), logger)

	bot := &mockBot{}
	router := NewRouter(bot, stateManager, adminChecker, orderHandler, approveHandler, completeHandler)

	return &routerFixture{
		router:         router,
		bot:            bot,
		orderBot:       orderBot,
		approveBot:     approveBot,
		approveService: approveService,
		completeBot:    completeBot,
		stateManager:   stateManager,
	}
}

func commandUpdate(userID int64, command string) *tgbotapi.Update {
	return &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: command,
			Chat: &tgbotapi.Chat{ID: userID},
			From: &tgbotapi.User{ID: userID, FirstName: "Test"},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func callbackFrom(userID int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: data,
			From: &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{
				MessageID: 10,
				Chat:      &tgbotapi.Chat{ID: userID},
			},
		},
	}
}

func TestRouteStartForCustomer(t *testing.T) {
	f := newRouterFixture(t)

	if err := f.router.Route(commandUpdate(customerID, "/start")); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(f.orderBot.SentMessages) != 1 {
		t.Fatalf("order flow sent %d messages, want welcome", len(f.orderBot.SentMessages))
	}
	if got := f.stateManager.GetState(customerID); got != states.CustomerOrderWaitPackage {
		t.Errorf("state = %s, want %s", got, states.CustomerOrderWaitPackage)
	}
	if len(f.approveBot.SentMessages) != 0 {
		t.Error("customer /start reached the admin surface")
	}
}

func TestRouteStartForAdmin(t *testing.T) {
	f := newRouterFixture(t)

	if err := f.router.Route(commandUpdate(adminID, "/start")); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(f.approveBot.SentMessages) != 1 {
		t.Fatalf("admin surface sent %d messages, want admin panel", len(f.approveBot.SentMessages))
	}
	if len(f.orderBot.SentMessages) != 0 {
		t.Error("admin /start started the customer flow")
	}
}

func TestRouteAdminCommandsRejectCustomers(t *testing.T) {
	for _, command := range []string{"/approve", "/complete"} {
		t.Run(command, func(t *testing.T) {
			f := newRouterFixture(t)

			if err := f.router.Route(commandUpdate(customerID, command)); err != nil {
				t.Fatalf("Route() error = %v", err)
			}

			if len(f.bot.SentMessages) != 1 {
				t.Fatalf("router sent %d messages, want rejection", len(f.bot.SentMessages))
			}
			msg := f.bot.SentMessages[0].(tgbotapi.MessageConfig)
			if msg.Text != messages.AdminOnly {
				t.Errorf("reply = %q, want %q", msg.Text, messages.AdminOnly)
			}
			if len(f.approveBot.SentMessages) != 0 || len(f.completeBot.SentMessages) != 0 {
				t.Error("rejected command still reached an admin flow")
			}
		})
	}
}

func TestRouteAdminCallbackRejectsCustomers(t *testing.T) {
	f := newRouterFixture(t)

	if err := f.router.Route(callbackFrom(customerID, approve.CallbackPendingOrders)); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(f.approveBot.SentMessages) != 0 {
		t.Error("unauthorized callback reached the approve flow")
	}
	if len(f.bot.SentMessages) != 1 {
		t.Fatalf("router sent %d messages, want rejection", len(f.bot.SentMessages))
	}
	msg := f.bot.SentMessages[0].(tgbotapi.MessageConfig)
	if msg.Text != messages.Unauthorized {
		t.Errorf("reply = %q, want %q", msg.Text, messages.Unauthorized)
	}
}

func TestRouteAdminCallbackForAdmin(t *testing.T) {
	f := newRouterFixture(t)

	if err := f.router.Route(callbackFrom(adminID, approve.CallbackPendingOrders)); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(f.approveBot.SentMessages) != 1 {
		t.Errorf("approve flow sent %d messages, want pending list", len(f.approveBot.SentMessages))
	}
}

func TestRouteCommandCancelsActiveFlow(t *testing.T) {
	f := newRouterFixture(t)

	f.stateManager.SetState(customerID, states.CustomerOrderWaitDetails, &flows.OrderFlowData{PackageKey: "basic"})

	if err := f.router.Route(commandUpdate(customerID, "/start")); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	// /start replaces the stale session with a fresh one
	if got := f.stateManager.GetState(customerID); got != states.CustomerOrderWaitPackage {
		t.Errorf("state = %s, want %s", got, states.CustomerOrderWaitPackage)
	}
}

func TestRouteGlobalCancelCallback(t *testing.T) {
	f := newRouterFixture(t)

	f.stateManager.SetState(customerID, states.CustomerOrderWaitDetails, &flows.OrderFlowData{})

	if err := f.router.Route(callbackFrom(customerID, "cancel")); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if got := f.stateManager.GetState(customerID); got != states.StateNone {
		t.Errorf("state = %s, want cleared", got)
	}
	msg := f.bot.SentMessages[len(f.bot.SentMessages)-1].(tgbotapi.MessageConfig)
	if msg.Text != messages.Cancelled {
		t.Errorf("reply = %q, want %q", msg.Text, messages.Cancelled)
	}
}

func TestRouteAdminStateRejectsCustomers(t *testing.T) {
	f := newRouterFixture(t)

	// A customer chat somehow carrying an admin flow state must be kicked out
	f.stateManager.SetState(customerID, states.AdminCompleteWaitOrderID, &flows.CompleteOrderFlowData{})

	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "7",
			Chat: &tgbotapi.Chat{ID: customerID},
			From: &tgbotapi.User{ID: customerID},
		},
	}
	if err := f.router.Route(update); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if got := f.stateManager.GetState(customerID); got != states.StateNone {
		t.Errorf("state = %s, want cleared", got)
	}
	if len(f.completeBot.SentMessages) != 0 {
		t.Error("unauthorized message reached the complete flow")
	}
	msg := f.bot.SentMessages[0].(tgbotapi.MessageConfig)
	if msg.Text != messages.AdminOnly {
		t.Errorf("reply = %q, want %q", msg.Text, messages.AdminOnly)
	}
}

func TestRouteUnknownInputSendsHelp(t *testing.T) {
	f := newRouterFixture(t)

	update := &tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "hello there",
			Chat: &tgbotapi.Chat{ID: customerID},
			From: &tgbotapi.User{ID: customerID},
		},
	}
	if err := f.router.Route(update); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(f.bot.SentMessages) != 1 {
		t.Fatalf("router sent %d messages, want help", len(f.bot.SentMessages))
	}
}
