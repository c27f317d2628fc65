package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/solana"
	"moonlaunch-bot/internal/telegram/flows"
	"moonlaunch-bot/internal/telegram/messages"
	"moonlaunch-bot/internal/telegram/states"
)

// Callback tokens of the customer flow.
const (
	CallbackDetailsConfirmed = "details_confirmed"
	CallbackEditDetails      = "edit_details"
	CallbackPaymentDone      = "payment_done"
)

// Handler drives the customer order flow:
// package -> coin details -> confirmation -> payment -> pending order.
type Handler struct {
	bot           botApi
	stateManager  stateManager
	orderService  orderService
	catalog       packageCatalog
	walletAddress string
	adminChatID   int64
	logger        *slog.Logger
}

func NewHandler(
	bot botApi,
	sm stateManager,
	os orderService,
	catalog packageCatalog,
	walletAddress string,
	adminChatID int64,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		stateManager:  sm,
		orderService:  os,
		catalog:       catalog,
		walletAddress: walletAddress,
		adminChatID:   adminChatID,
		logger:        logger,
	}
}

// Start greets the customer and presents the package menu.
func (h *Handler) Start(chatID int64, userName string) error {
	h.stateManager.SetState(chatID, states.CustomerOrderWaitPackage, &flows.OrderFlowData{})

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, pkg := range h.catalog.All() {
		button := tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%s - %s", pkg.Title, pkg.Price),
			pkg.CallbackData,
		)
		rows = append(rows, []tgbotapi.InlineKeyboardButton{button})
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Hello %s! 👋\n\n%s", userName, messages.Welcome))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	msg.ParseMode = "Markdown"

	_, err := h.bot.Send(msg)
	return err
}

// Handle dispatches an update based on the current conversation state.
func (h *Handler) Handle(update *tgbotapi.Update, state states.State) error {
	ctx := context.Background()

	switch state {
	case states.CustomerOrderWaitPackage:
		return h.handlePackageSelection(ctx, update)
	case states.CustomerOrderWaitDetails:
		return h.handleDetails(ctx, update)
	case states.CustomerOrderWaitConfirm:
		return h.handleConfirmation(ctx, update)
	case states.CustomerOrderWaitPayment:
		return h.handlePaymentDone(ctx, update)
	default:
		return fmt.Errorf("unknown order state: %s", state)
	}
}

func (h *Handler) handlePackageSelection(_ context.Context, update *tgbotapi.Update) error {
	if update.CallbackQuery == nil {
		return h.sendText(extractChatID(update), messages.UseButtonsForChoice)
	}

	chatID := update.CallbackQuery.Message.Chat.ID

	pkg, ok := h.catalog.ByCallback(update.CallbackQuery.Data)
	if !ok {
		return h.sendText(chatID, messages.InvalidPackage)
	}

	data, err := h.stateManager.GetOrderData(chatID)
	if err != nil {
		return h.sendText(chatID, messages.Error)
	}

	data.PackageKey = pkg.Key
	data.PackageTitle = pkg.Title
	h.stateManager.SetState(chatID, states.CustomerOrderWaitDetails, data)

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		return err
	}

	selected := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"📦 You selected: %s\n\n**Please copy the text below and fill it with your coin details.**", pkg.Title))
	selected.ParseMode = "Markdown"
	if _, err := h.bot.Send(selected); err != nil {
		return err
	}

	template := tgbotapi.NewMessage(chatID, messages.DetailsTemplate)
	template.ParseMode = "Markdown"
	_, err = h.bot.Send(template)
	return err
}

func (h *Handler) handleDetails(_ context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	// Whitespace-only input re-prompts without advancing.
	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return h.sendText(chatID, messages.DetailsEmpty)
	}

	data, err := h.stateManager.GetOrderData(chatID)
	if err != nil {
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.MissingData)
	}

	data.CoinDetails = update.Message.Text
	data.DetailsReceivedAt = time.Now()
	h.stateManager.SetState(chatID, states.CustomerOrderWaitConfirm, data)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonConfirm, CallbackDetailsConfirmed),
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonEdit, CallbackEditDetails),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"📝 *Please confirm your details:*\n\n%s\n\nChoose an option below:", update.Message.Text))
	msg.ReplyMarkup = keyboard
	msg.ParseMode = "Markdown"

	_, err = h.bot.Send(msg)
	return err
}

func (h *Handler) handleConfirmation(ctx context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	if update.CallbackQuery == nil {
		return h.sendText(chatID, messages.UseButtonsForChoice)
	}

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		return err
	}

	switch update.CallbackQuery.Data {
	case CallbackDetailsConfirmed:
		return h.proceedToPayment(ctx, chatID, update.CallbackQuery.From.ID)
	case CallbackEditDetails:
		data, err := h.stateManager.GetOrderData(chatID)
		if err != nil {
			h.stateManager.Clear(chatID)
			return h.sendText(chatID, messages.MissingData)
		}
		// Previous details stay in the session until overwritten.
		h.stateManager.SetState(chatID, states.CustomerOrderWaitDetails, data)
		return h.sendText(chatID, messages.DetailsEditPrompt)
	default:
		return h.sendText(chatID, messages.UseButtonsForChoice)
	}
}

// proceedToPayment persists the pending order first so the payment QR always
// references a real order id, then shows the payment instructions.
func (h *Handler) proceedToPayment(ctx context.Context, chatID, userID int64) error {
	data, err := h.stateManager.GetOrderData(chatID)
	if err != nil || data.PackageKey == "" || strings.TrimSpace(data.CoinDetails) == "" {
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.MissingData)
	}

	pkg, ok := h.catalog.ByKey(data.PackageKey)
	if !ok {
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.InvalidPackage)
	}

	amount, err := pkg.SolAmount()
	if err != nil {
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.PaymentSetupFailed)
	}

	created, err := h.orderService.Create(ctx, userID, pkg.Title, data.CoinDetails, amount)
	if err != nil {
		h.logger.Error("failed to persist order", slog.Any("error", err), slog.Int64("user_id", userID))
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.PaymentSetupFailed)
	}

	data.OrderID = &created.ID
	h.stateManager.SetState(chatID, states.CustomerOrderWaitPayment, data)

	qr, err := solana.PaymentQR(h.walletAddress, amount, created.ID)
	if err != nil {
		h.logger.Error("failed to render payment qr", slog.Any("error", err))
		return h.sendText(chatID, messages.PaymentSetupFailed)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "payment_qr.png",
		Bytes: qr,
	})
	photo.Caption = fmt.Sprintf("💸 Send *%v SOL* to:\n`%s`", amount, h.walletAddress)
	photo.ParseMode = "Markdown"
	if _, err := h.bot.Send(photo); err != nil {
		return err
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(messages.ButtonPaymentDone, CallbackPaymentDone),
		),
	)
	msg := tgbotapi.NewMessage(chatID, messages.PaymentDonePrompt)
	msg.ReplyMarkup = keyboard
	_, err = h.bot.Send(msg)
	return err
}

func (h *Handler) handlePaymentDone(_ context.Context, update *tgbotapi.Update) error {
	chatID := extractChatID(update)

	if update.CallbackQuery == nil || update.CallbackQuery.Data != CallbackPaymentDone {
		return h.sendText(chatID, messages.UseButtonsForChoice)
	}

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		return err
	}

	data, err := h.stateManager.GetOrderData(chatID)
	if err != nil || data.OrderID == nil {
		// Session data is gone; the flow cannot be finalized.
		h.stateManager.Clear(chatID)
		return h.sendText(chatID, messages.MissingData)
	}

	orderID := *data.OrderID
	packageTitle := data.PackageTitle
	h.stateManager.Clear(chatID)

	edit := tgbotapi.NewEditMessageText(chatID, update.CallbackQuery.Message.MessageID, fmt.Sprintf(
		"📦 Order #%d Received!\nStatus: Pending Approval\nWe'll notify you once approved!", orderID))
	if _, err := h.bot.Send(edit); err != nil {
		return err
	}

	return h.notifyAdmin(update, orderID, packageTitle)
}

func (h *Handler) notifyAdmin(update *tgbotapi.Update, orderID int64, packageTitle string) error {
	from := update.CallbackQuery.From
	userLabel := from.UserName
	if userLabel == "" {
		userLabel = from.FirstName
	}

	text := fmt.Sprintf("🆕 New Order %d\nPackage: %s\nUser: @%s (ID: %d)",
		orderID, packageTitle, userLabel, from.ID)
	msg := tgbotapi.NewMessage(h.adminChatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to notify admin about new order",
			slog.Int64("order_id", orderID), slog.Any("error", err))
		return err
	}
	return nil
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
