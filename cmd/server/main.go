package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	_ "github.com/finexa/backend/docs"
	"github.com/finexa/backend/infra/initializer"
	"github.com/finexa/backend/pkg/app"
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/webapi"
)

// @title Finexa API
// @version 1.0.0
// @description Personal finance API: users, transactions, savings goals,
// @description investments and notifications.
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
