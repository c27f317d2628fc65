package duereminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robfig/cron/v3"
)

// Worker reminds the administrator each morning which approved orders are
// due by the end of the day (every approved order is due the day it was
// approved, so anything still approved is at or past its due date).
type Worker struct {
	orderService OrderService
	bot          TelegramBot
	adminChatID  int64
	logger       *slog.Logger
	cron         *cron.Cron
}

func NewWorker(orderService OrderService, bot TelegramBot, adminChatID int64, logger *slog.Logger) *Worker {
	return &Worker{
		orderService: orderService,
		bot:          bot,
		adminChatID:  adminChatID,
		logger:       logger,
		cron:         cron.New(),
	}
}

// Name returns the worker name
func (w *Worker) Name() string {
	return "duereminder"
}

// Start starts the due reminder worker
func (w *Worker) Start() error {
	// Runs daily at 09:00
	_, err := w.cron.AddFunc("0 9 * * *", func() {
		ctx := context.Background()
		if err := w.run(ctx); err != nil {
			w.logger.Error("Due reminder worker failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule due reminder worker: %w", err)
	}

	w.cron.Start()
	return nil
}

// Stop stops the worker
func (w *Worker) Stop() {
	w.cron.Stop()
}

func (w *Worker) run(ctx context.Context) error {
	approved, err := w.orderService.ListApproved(ctx)
	if err != nil {
		return fmt.Errorf("list approved orders: %w", err)
	}

	if len(approved) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ %d approved order(s) awaiting delivery today:\n", len(approved))
	for _, o := range approved {
		websiteID := ""
		if o.WebsiteID != nil {
			websiteID = *o.WebsiteID
		}
		fmt.Fprintf(&b, "\n🆔 %d (%s), approved %s", o.ID, websiteID, o.CreatedAt.Format("02/01 15:04"))
	}
	b.WriteString("\n\nUse /complete to deliver.")

	if err := w.bot.SendMessage(w.adminChatID, b.String()); err != nil {
		return fmt.Errorf("send due reminder: %w", err)
	}

	w.logger.Info("Due reminder sent", "approved_orders", len(approved))
	return nil
}
