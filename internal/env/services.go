package environment

import (
	"context"
	"log/slog"

	"moonlaunch-bot/internal/config"
	"moonlaunch-bot/internal/storage"
	"moonlaunch-bot/internal/stories/orders"
	"moonlaunch-bot/internal/stories/packages"
	"moonlaunch-bot/internal/telegram"
	"moonlaunch-bot/internal/telegram/flows/approve"
	"moonlaunch-bot/internal/telegram/flows/complete"
	"moonlaunch-bot/internal/telegram/flows/order"
	"moonlaunch-bot/internal/telegram/states"
	"moonlaunch-bot/internal/workers"
	"moonlaunch-bot/internal/workers/duereminder"

	"github.com/pkg/errors"
)

type Services struct {
	TelegramRouter *telegram.Router
	WorkerManager  *workers.Manager
}

func newServices(ctx context.Context, clients *Clients, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	var s Services

	if clients.TelegramBot == nil {
		return nil, errors.New("telegram bot is not initialized")
	}

	storageImpl := storage.New(clients.SQLiteDB.DB)
	if err := storageImpl.InitSchema(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to init storage schema")
	}

	catalog, err := packages.NewCatalog()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load package catalog")
	}

	orderService := orders.NewService(storageImpl)

	stateManager := states.NewManager()
	adminChecker := telegram.NewAdminChecker(&cfg.Telegram)

	orderHandler := order.NewHandler(
		clients.TelegramBot,
		stateManager,
		orderService,
		catalog,
		cfg.Solana.WalletAddress,
		cfg.Telegram.AdminID,
		logger,
	)

	approveHandler := approve.NewHandler(
		clients.TelegramBot,
		orderService,
		logger,
	)

	completeHandler := complete.NewHandler(
		clients.TelegramBot,
		stateManager,
		orderService,
		logger,
	)

	s.TelegramRouter = telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		adminChecker,
		orderHandler,
		approveHandler,
		completeHandler,
	)

	dueReminderWorker := duereminder.NewWorker(
		orderService,
		clients.TelegramBot,
		cfg.Telegram.AdminID,
		logger,
	)
	s.WorkerManager = workers.NewManager(logger, dueReminderWorker)

	return &s, nil
}
