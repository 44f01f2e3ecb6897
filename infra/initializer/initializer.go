// Package initializer builds the application dependency graph from the
// loaded configuration.
package initializer

import (
	"context"

	"github.com/finexa/backend/infra"
	investmentinfra "github.com/finexa/backend/infra/repository/investment"
	notificationinfra "github.com/finexa/backend/infra/repository/notification"
	savingsinfra "github.com/finexa/backend/infra/repository/savings"
	transactioninfra "github.com/finexa/backend/infra/repository/transaction"
	userinfra "github.com/finexa/backend/infra/repository/user"
	"github.com/finexa/backend/infra/storage"
	"github.com/finexa/backend/pkg/app"
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/domain/notification"
	"github.com/finexa/backend/pkg/eventbus"
)

// InitializeDependencies sets up the logger, opens the database, runs
// pending migrations and constructs the repositories, file store and
// event bus the services are wired from.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := infra.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
			logger.Error("failed to run migrations", "error", err)
			return nil, err
		}
		logger.Info("migrations applied", "path", cfg.DB.MigrationsPath)
	}

	fileStore, err := storage.NewFileStore(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		logger.Error("failed to prepare upload directory", "error", err)
		return nil, err
	}

	bus := eventbus.NewMemory()
	bus.Subscribe(notification.EventTypeCreated, func(_ context.Context, e eventbus.Event) {
		created, ok := e.(notification.CreatedEvent)
		if !ok {
			return
		}
		logger.Info(
			"notification created",
			"notification_id", created.NotificationID,
			"user_id", created.UserID,
			"type", created.NotifType,
		)
	})

	return &app.Deps{
		UserRepo:         userinfra.New(db),
		NotificationRepo: notificationinfra.New(db),
		PreferenceRepo:   notificationinfra.NewPreferences(db),
		TransactionRepo:  transactioninfra.New(db),
		SavingsRepo:      savingsinfra.New(db),
		InvestmentRepo:   investmentinfra.New(db),
		FileStore:        fileStore,
		EventBus:         bus,
		Logger:           logger,
	}, nil
}
