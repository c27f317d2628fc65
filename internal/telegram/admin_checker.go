package telegram

import "moonlaunch-bot/internal/config"

// AdminChecker compares a telegram identity against the single configured
// administrator. The id is validated at startup, so the comparison here is
// a plain typed equality.
type AdminChecker struct {
	adminID int64
}

func NewAdminChecker(cfg *config.TelegramConfig) *AdminChecker {
	return &AdminChecker{adminID: cfg.AdminID}
}

func (a *AdminChecker) IsAdmin(telegramID int64) bool {
	return telegramID == a.adminID
}

// AdminChatID returns the chat to notify about new orders.
func (a *AdminChecker) AdminChatID() int64 {
	return a.adminID
}
