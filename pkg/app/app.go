// Package app assembles the domain services from their infrastructure
// dependencies.
package app

import (
	"log/slog"

	"github.com/finexa/backend/infra/storage"
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/eventbus"
	investmentrepo "github.com/finexa/backend/pkg/repository/investment"
	notificationrepo "github.com/finexa/backend/pkg/repository/notification"
	savingsrepo "github.com/finexa/backend/pkg/repository/savings"
	transactionrepo "github.com/finexa/backend/pkg/repository/transaction"
	userrepo "github.com/finexa/backend/pkg/repository/user"
	"github.com/finexa/backend/pkg/service/auth"
	"github.com/finexa/backend/pkg/service/investment"
	"github.com/finexa/backend/pkg/service/notification"
	"github.com/finexa/backend/pkg/service/savings"
	"github.com/finexa/backend/pkg/service/transaction"
	"github.com/finexa/backend/pkg/service/user"
)

// Deps contains the infrastructure dependencies the services are built on.
type Deps struct {
	UserRepo         userrepo.Repository
	NotificationRepo notificationrepo.Repository
	PreferenceRepo   notificationrepo.PreferenceRepository
	TransactionRepo  transactionrepo.Repository
	SavingsRepo      savingsrepo.Repository
	InvestmentRepo   investmentrepo.Repository
	FileStore        *storage.FileStore
	EventBus         eventbus.Bus
	Logger           *slog.Logger
}

// App holds the wired services consumed by the HTTP layer and the CLI.
type App struct {
	Deps   *Deps
	Config *config.App

	AuthService         *auth.Service
	UserService         *user.Service
	NotificationService *notification.Service
	TransactionService  *transaction.Service
	SavingsService      *savings.Service
	InvestmentService   *investment.Service
}

// New wires the services. The user service receives the savings and
// investment services only through their aggregate read contracts.
func New(deps *Deps, cfg *config.App) *App {
	logger := deps.Logger

	savingsSvc := savings.New(deps.SavingsRepo, deps.UserRepo, logger)
	investmentSvc := investment.New(deps.InvestmentRepo, deps.UserRepo, logger)

	return &App{
		Deps:   deps,
		Config: cfg,

		AuthService: auth.New(deps.UserRepo, cfg.Jwt, logger),
		UserService: user.New(deps.UserRepo, savingsSvc, investmentSvc, logger),
		NotificationService: notification.New(
			deps.NotificationRepo,
			deps.PreferenceRepo,
			deps.UserRepo,
			deps.EventBus,
			logger,
		),
		TransactionService: transaction.New(deps.TransactionRepo, deps.UserRepo, logger),
		SavingsService:     savingsSvc,
		InvestmentService:  investmentSvc,
	}
}
