package complete

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
	"moonlaunch-bot/internal/telegram/flows"
	"moonlaunch-bot/internal/telegram/messages"
	"moonlaunch-bot/internal/telegram/states"
)

// Handler drives the admin completion flow: order id -> website link ->
// approved order becomes completed and the customer gets the link.
type Handler struct {
	bot          botApi
	stateManager stateManager
	orderService orderService
	logger       *slog.Logger
}

func NewHandler(bot botApi, sm stateManager, os orderService, logger *slog.Logger) *Handler {
	return &Handler{
		bot:          bot,
		stateManager: sm,
		orderService: os,
		logger:       logger,
	}
}

// Start prompts for the order id. The router has already checked the admin
// identity.
func (h *Handler) Start(chatID int64) error {
	h.stateManager.SetState(chatID, states.AdminCompleteWaitOrderID, &flows.CompleteOrderFlowData{})
	return h.sendText(chatID, messages.EnterOrderID)
}

// Handle dispatches an update based on the current conversation state.
func (h *Handler) Handle(update *tgbotapi.Update, state states.State) error {
	ctx := context.Background()

	switch state {
	case states.AdminCompleteWaitOrderID:
		return h.handleOrderID(ctx, update)
	case states.AdminCompleteWaitLink:
		return h.handleWebsiteLink(ctx, update)
	default:
		return fmt.Errorf("unknown complete state: %s", state)
	}
}

func (h *Handler) handleOrderID(ctx context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	if update.Message == nil || update.Message.Text == "" {
		return h.sendText(chatID, messages.InvalidOrderID)
	}

	raw := strings.TrimSpace(update.Message.Text)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Stay in the same state and re-prompt.
		return h.sendText(chatID, messages.InvalidOrderID)
	}

	if _, err := h.orderService.Get(ctx, id); err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return h.sendText(chatID, messages.OrderNotFoundRetry)
		}
		h.logger.Error("failed to look up order", slog.Int64("order_id", id), slog.Any("error", err))
		return h.sendText(chatID, messages.Error)
	}

	h.stateManager.SetState(chatID, states.AdminCompleteWaitLink, &flows.CompleteOrderFlowData{OrderID: id})
	return h.sendText(chatID, messages.EnterWebsiteLink)
}

func (h *Handler) handleWebsiteLink(ctx context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return h.sendText(chatID, messages.EnterWebsiteLink)
	}
	websiteURL := strings.TrimSpace(update.Message.Text)

	data, err := h.stateManager.GetCompleteOrderData(chatID)
	if err != nil {
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.Error)
	}

	// Any failure below aborts the flow without mutating state.
	h.stateManager.Clear(chatID)

	o, err := h.orderService.Complete(ctx, data.OrderID, websiteURL)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNotFound):
			return h.sendText(chatID, messages.OrderNotFound)
		case errors.Is(err, orders.ErrNotApproved):
			return h.sendText(chatID, messages.OrderNotApproved)
		default:
			h.logger.Error("failed to complete order",
				slog.Int64("order_id", data.OrderID), slog.Any("error", err))
			return h.sendText(chatID, messages.Error)
		}
	}

	customerMsg := tgbotapi.NewMessage(o.UserID, fmt.Sprintf(
		"🚀 Your website is ready!\n\n🌐 %s\n\nThank you for choosing MoonLaunch!", websiteURL))
	if _, err := h.bot.Send(customerMsg); err != nil {
		h.logger.Error("failed to notify customer about completion",
			slog.Int64("order_id", o.ID), slog.Any("error", err))
	}

	return h.sendText(chatID, fmt.Sprintf("✅ Order %d completed!\nUser has been notified.", o.ID))
}

func (h *Handler) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.bot.Send(msg)
	return err
}

func extractChatID(update *tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}
