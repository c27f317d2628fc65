package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moonlaunch-bot/internal/telegram/flows/approve"
	"moonlaunch-bot/internal/telegram/flows/complete"
	"moonlaunch-bot/internal/telegram/flows/order"
	"moonlaunch-bot/internal/telegram/messages"
	"moonlaunch-bot/internal/telegram/states"
)

type Router struct {
	bot          botApi
	stateManager stateManager
	adminChecker adminChecker

	orderHandler    *order.Handler
	approveHandler  *approve.Handler
	completeHandler *complete.Handler
}

type botApi interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type stateManager interface {
	GetState(chatID int64) states.State
	Clear(chatID int64)
}

type adminChecker interface {
	IsAdmin(telegramID int64) bool
}

func NewRouter(
	bot botApi,
	sm stateManager,
	ac adminChecker,
	orderHandler *order.Handler,
	approveHandler *approve.Handler,
	completeHandler *complete.Handler,
) *Router {
	return &Router{
		bot:             bot,
		stateManager:    sm,
		adminChecker:    ac,
		orderHandler:    orderHandler,
		approveHandler:  approveHandler,
		completeHandler: completeHandler,
	}
}

// Route resolves an inbound update to a flow transition. Admin-only entry
// points are gated here, before any order store access.
func (r *Router) Route(update *tgbotapi.Update) error {
	telegramID := extractUserID(update)
	if telegramID == 0 {
		return nil // malformed update
	}
	chatID := extractChatID(update)

	// Commands take priority and cancel any in-flight flow.
	if update.Message != nil && update.Message.IsCommand() {
		r.stateManager.Clear(chatID)
		return r.handleCommand(update, telegramID, chatID)
	}

	if update.CallbackQuery != nil {
		callbackData := update.CallbackQuery.Data

		switch {
		case callbackData == "cancel":
			return r.handleGlobalCancel(update)
		case approve.Handles(callbackData):
			if !r.adminChecker.IsAdmin(telegramID) {
				return r.rejectUnauthorizedCallback(update)
			}
			return r.approveHandler.HandleCallback(update)
		}
	}

	state := r.stateManager.GetState(chatID)

	switch {
	case strings.HasPrefix(string(state), "cob_"):
		return r.orderHandler.Handle(update, state)
	case strings.HasPrefix(string(state), "acp_"):
		if !r.adminChecker.IsAdmin(telegramID) {
			r.stateManager.Clear(chatID)
			return r.sendText(chatID, messages.AdminOnly)
		}
		return r.completeHandler.Handle(update, state)
	}

	return r.sendHelp(chatID)
}

func (r *Router) handleCommand(update *tgbotapi.Update, telegramID, chatID int64) error {
	userName := update.Message.From.FirstName
	if update.Message.From.LastName != "" {
		userName += " " + update.Message.From.LastName
	}

	switch update.Message.Command() {
	case "start":
		if r.adminChecker.IsAdmin(telegramID) {
			return r.approveHandler.ShowAdminWelcome(chatID, userName)
		}
		return r.orderHandler.Start(chatID, userName)
	case "approve":
		if !r.adminChecker.IsAdmin(telegramID) {
			return r.sendText(chatID, messages.AdminOnly)
		}
		return r.approveHandler.ShowAdminWelcome(chatID, userName)
	case "complete":
		if !r.adminChecker.IsAdmin(telegramID) {
			return r.sendText(chatID, messages.AdminOnly)
		}
		return r.completeHandler.Start(chatID)
	case "cancel":
		// State is already cleared above.
		return r.sendText(chatID, messages.Cancelled)
	default:
		return r.sendHelp(chatID)
	}
}

func (r *Router) handleGlobalCancel(update *tgbotapi.Update) error {
	if update.CallbackQuery.Message == nil {
		return nil
	}
	chatID := update.CallbackQuery.Message.Chat.ID

	r.stateManager.Clear(chatID)

	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, messages.Cancelled)
	if _, err := r.bot.Request(callback); err != nil {
		return err
	}

	return r.sendText(chatID, messages.Cancelled)
}

func (r *Router) rejectUnauthorizedCallback(update *tgbotapi.Update) error {
	callback := tgbotapi.NewCallback(update.CallbackQuery.ID, messages.Unauthorized)
	if _, err := r.bot.Request(callback); err != nil {
		return err
	}
	if update.CallbackQuery.Message == nil {
		return nil
	}
	return r.sendText(update.CallbackQuery.Message.Chat.ID, messages.Unauthorized)
}

func (r *Router) sendHelp(chatID int64) error {
	if chatID == 0 {
		return nil
	}
	text := "Available commands:\n\n" +
		"/start — Order a website 🚀\n" +
		"/cancel — Cancel the current operation"
	return r.sendText(chatID, text)
}

func (r *Router) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := r.bot.Send(msg)
	return err
}

// SetupBotCommands registers the bot's command menu.
func (r *Router) SetupBotCommands() error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot 🚀",
		},
		{
			Command:     "approve",
			Description: "Approve a pending order ✅ (Admin Only)",
		},
		{
			Command:     "complete",
			Description: "Mark an order as completed 🎉",
		},
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(commands...)
	_, err := r.bot.Request(setCommandsConfig)
	return err
}

func extractUserID(update *tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
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
