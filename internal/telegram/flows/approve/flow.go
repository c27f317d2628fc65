package approve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/stories/orders"
	"moonlaunch-bot/internal/telegram/messages"
)

// Callback tokens of the admin approval surface.
const (
	CallbackPendingOrders   = "see_pending_orders"
	CallbackViewOrderPrefix = "view_order_"
	CallbackApprovePrefix   = "approve_"
	CallbackAdminBack       = "admin_back"
)

// Handler serves the admin's pending-order list, order detail view and the
// approve action. Role gating happens in the router before any call lands
// here.
type Handler struct {
	bot          botApi
	orderService orderService
	logger       *slog.Logger
	now          func() time.Time
}

func NewHandler(bot botApi, os orderService, logger *slog.Logger) *Handler {
	return &Handler{
		bot:          bot,
		orderService: os,
		logger:       logger,
		now:          time.Now,
	}
}

// Handles reports whether the callback token belongs to this surface.
func Handles(callbackData string) bool {
	return callbackData == CallbackPendingOrders ||
		callbackData == CallbackAdminBack ||
		strings.HasPrefix(callbackData, CallbackViewOrderPrefix) ||
		strings.HasPrefix(callbackData, CallbackApprovePrefix)
}

// HandleCallback dispatches an admin callback press.
func (h *Handler) HandleCallback(update *tgbotapi.Update) error {
	ctx := context.Background()
	data := update.CallbackQuery.Data

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		return err
	}

	switch {
	case data == CallbackPendingOrders:
		return h.showPendingOrders(ctx, update)
	case data == CallbackAdminBack:
		return h.showAdminPanel(update)
	case strings.HasPrefix(data, CallbackViewOrderPrefix):
		return h.viewOrder(ctx, update, strings.TrimPrefix(data, CallbackViewOrderPrefix))
	case strings.HasPrefix(data, CallbackApprovePrefix):
		return h.approveOrder(ctx, update, strings.TrimPrefix(data, CallbackApprovePrefix))
	default:
		return fmt.Errorf("unknown approve callback: %s", data)
	}
}

// ShowAdminWelcome sends the admin panel as a fresh message (used by /start).
func (h *Handler) ShowAdminWelcome(chatID int64, userName string) error {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Hello Admin %s! 👑\n\nYou can see pending orders below:", userName))
	msg.ReplyMarkup = adminPanelKeyboard()
	msg.ParseMode = "Markdown"
	_, err := h.bot.Send(msg)
	return err
}

func (h *Handler) showAdminPanel(update *tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	messageID := update.CallbackQuery.Message.MessageID

	edit := tgbotapi.NewEditMessageText(chatID, messageID, "👑 Admin panel")
	keyboard := adminPanelKeyboard()
	edit.ReplyMarkup = &keyboard
	_, err := h.bot.Send(edit)
	return err
}

func (h *Handler) showPendingOrders(ctx context.Context, update *tgbotapi.Update) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	messageID := update.CallbackQuery.Message.MessageID

	pending, err := h.orderService.ListPending(ctx)
	if err != nil {
		h.logger.Error("failed to list pending orders", slog.Any("error", err))
		return h.sendText(chatID, messages.Error)
	}

	if len(pending) == 0 {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, messages.NoPendingOrders)
		_, err := h.bot.Send(edit)
		return err
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range pending {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🆔 %d - %s", o.ID, o.CreatedAt.Format("02/01 15:04")),
				fmt.Sprintf("%s%d", CallbackViewOrderPrefix, o.ID),
			),
		})
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(messages.ButtonBack, CallbackAdminBack),
	})

	edit := tgbotapi.NewEditMessageText(chatID, messageID, messages.PendingOrdersHeader)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	edit.ReplyMarkup = &keyboard
	edit.ParseMode = "Markdown"
	_, err = h.bot.Send(edit)
	return err
}

func (h *Handler) viewOrder(ctx context.Context, update *tgbotapi.Update, rawID string) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	messageID := update.CallbackQuery.Message.MessageID

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return h.sendText(chatID, messages.OrderNotFound)
	}

	o, err := h.orderService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			// Report and stay on the list view.
			return h.sendText(chatID, messages.OrderNotFound)
		}
		h.logger.Error("failed to load order", slog.Int64("order_id", id), slog.Any("error", err))
		return h.sendText(chatID, messages.Error)
	}

	details := fmt.Sprintf(
		"📄 *Order Details* 🆔 `%d`\n"+
			"📅 *Date:* %s\n"+
			"💼 *Package:* %s\n"+
			"👤 *User ID:* `%d`\n\n"+
			"📝 *Coin Details:*\n%s",
		o.ID, o.CreatedAt.Format("2006-01-02 15:04:05"), o.Package, o.UserID, o.CoinDetails)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonApprove, fmt.Sprintf("%s%d", CallbackApprovePrefix, o.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonBackToOrders, CallbackPendingOrders),
		),
	)

	edit := tgbotapi.NewEditMessageText(chatID, messageID, details)
	edit.ReplyMarkup = &keyboard
	edit.ParseMode = "Markdown"
	_, err = h.bot.Send(edit)
	return err
}

func (h *Handler) approveOrder(ctx context.Context, update *tgbotapi.Update, rawID string) error {
	chatID := update.CallbackQuery.Message.Chat.ID
	messageID := update.CallbackQuery.Message.MessageID

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return h.sendText(chatID, messages.OrderNotFound)
	}

	o, err := h.orderService.Approve(ctx, id)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			return h.sendText(chatID, messages.OrderNotFound)
		}
		h.logger.Error("failed to approve order", slog.Int64("order_id", id), slog.Any("error", err))
		return h.sendText(chatID, messages.Error)
	}

	due := h.dueDate()

	edit := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf(
		"✅ *Order Approved!*\n\n🆔 Website ID: `%s`\n📅 Due Date: %s", *o.WebsiteID, due))
	edit.ParseMode = "Markdown"
	if _, err := h.bot.Send(edit); err != nil {
		return err
	}

	// Notify the customer separately.
	customerMsg := tgbotapi.NewMessage(o.UserID, fmt.Sprintf(
		"🎉 *Payment Received!*\n\n"+
			"🆔 Your Website ID: `%s`\n"+
			"⏳ Your website will be ready within 24 hours!\n\n"+
			"📅 Expected completion: %s", *o.WebsiteID, due))
	customerMsg.ParseMode = "Markdown"
	if _, err := h.bot.Send(customerMsg); err != nil {
		h.logger.Error("failed to notify customer about approval",
			slog.Int64("order_id", id), slog.Any("error", err))
	}

	return nil
}

// dueDate is the fulfillment policy: end of the current calendar day.
func (h *Handler) dueDate() string {
	return h.now().Format("2006-01-02") + " 23:59:00"
}

func (h *Handler) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.bot.Send(msg)
	return err
}

func adminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonPendingOrders, CallbackPendingOrders),
		),
	)
}
