package main

import (
	"context"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/admin/tg-bots/gpt-bot/internal/app"
	"github.com/admin/tg-bots/gpt-bot/internal/pkg/logger"
)

const appName = "gpt_bot"

func main() {
	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(appName, cfg)
	logger.SetDefault(app.Log)

	if err := app.Run(ctx); err != nil {
		panic(err)
	}
}
