package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/pg"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

func (a *App) runServices(ctx context.Context, deps *Dependencies) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := deps.HTTPServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Telegram Updates: либо Webhook (prod), либо Polling (local dev)
	if deps.TelegramPoller != nil {
		g.Go(func() error {
			return a.runPolling(gCtx, deps)
		})
	} else {
		a.Log.Info("telegram updates mode: webhook",
			"webhook_url", a.Cfg.Telegram.WebhookURL)
	}

	g.Go(func() error {
		return deps.JobScheduler.Start(gCtx)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := deps.HTTPServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		for _, c := range deps.Closers {
			if err := c.close(); err != nil {
				a.Log.Error("failed to close backend", "error", err, "name", c.name)
			}
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

// runPolling запускает polling для локальной разработки
func (a *App) runPolling(ctx context.Context, deps *Dependencies) error {
	// Удаляем webhook перед запуском polling
	deleteCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := deps.TelegramClient.DeleteWebhook(deleteCtx); err != nil {
		a.Log.Warn("failed to delete webhook, continuing anyway", "error", err)
	} else {
		a.Log.Info("webhook deleted successfully, starting polling")
	}

	return deps.TelegramPoller.Start(ctx)
}

// initPostgres инициализирует подключение к PostgreSQL и запускает миграции
func (a *App) initPostgres(ctx context.Context) (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(ctx, db, a.Log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
