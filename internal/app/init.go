package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/gpt-bot/internal/adapters/primary/http"
	adminController "github.com/admin/tg-bots/gpt-bot/internal/adapters/primary/http/controllers/admin"
	healthcheckController "github.com/admin/tg-bots/gpt-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/gpt-bot/internal/adapters/primary/http/controllers/telegram"
	alerterAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/kafka"
	openaiAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/openai"
	fileStorage "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/file"
	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/storage/s3"
	tgAdapter "github.com/admin/tg-bots/gpt-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/repository"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/service"
	usagelogRepo "github.com/admin/tg-bots/gpt-bot/internal/repository/usagelog"
	alerterService "github.com/admin/tg-bots/gpt-bot/internal/services/alerter"
	jobScheduler "github.com/admin/tg-bots/gpt-bot/internal/services/jobs"
	telegramService "github.com/admin/tg-bots/gpt-bot/internal/services/telegram"
	usagelogService "github.com/admin/tg-bots/gpt-bot/internal/services/usagelog"
	gptUsecase "github.com/admin/tg-bots/gpt-bot/internal/usecases/gpt"
	"github.com/admin/tg-bots/gpt-bot/internal/usecases/gpt/texts"
)

// closer ресурс, который нужно закрыть при остановке
type closer struct {
	name  string
	close func() error
}

type Dependencies struct {
	HTTPServer      *http.Server
	TelegramClient  *tgAdapter.Client
	TelegramService *telegramService.Service
	TelegramPoller  *tgAdapter.Poller
	JobScheduler    *jobScheduler.Scheduler
	Closers         []closer
}

// usageLogBackends приёмники дневной статистики и то, что нужно для /ready и /admin
type usageLogBackends struct {
	Sink    *usagelogService.Service
	Repo    repository.IUsageLogRepo // nil без postgres
	Pingers map[string]healthcheckController.Pinger
	Closers []closer
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	location, err := a.Cfg.Usage.Location()
	if err != nil {
		return nil, err
	}

	tgClient := tgAdapter.NewClientWithBaseURL(a.Cfg.Telegram.APIURL, a.Cfg.Telegram.BotToken, a.Log)
	alerterSvc := a.initAlerter(tgClient)

	backends := a.initUsageLog(ctx, alerterSvc)

	tgService := telegramService.New(nil, tgClient, a.Log) // use case задаётся ниже
	gptService := gptUsecase.New(
		inmemory.NewConversationStore(),
		inmemory.NewUsageTracker(backends.Sink, location, a.Log),
		tgService,
		openaiAdapter.NewClient(a.Cfg.OpenAI, a.Log),
		a.Log,
	)
	tgService.SetBotService(gptService)

	if err := a.registerBotCommands(ctx, tgClient); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	httpServer := a.initHTTP(tgService, gptService, backends)

	poller, err := a.initTelegramMode(ctx, tgService, tgClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram mode: %w", err)
	}

	scheduler := jobScheduler.NewScheduler(a.Log, alerterSvc)
	scheduler.Register(jobScheduler.NewDailyReset(
		gptService,
		a.Cfg.Usage.ResetHour,
		a.Cfg.Usage.ResetMinute,
		location,
		a.Log,
	))

	return &Dependencies{
		HTTPServer:      httpServer,
		TelegramClient:  tgClient,
		TelegramService: tgService,
		TelegramPoller:  poller,
		JobScheduler:    scheduler,
		Closers:         backends.Closers,
	}, nil
}

// initAlerter алерты и дневная статистика в чат админа, nil если чат не задан
func (a *App) initAlerter(mainClient *tgAdapter.Client) service.IAlerterService {
	if !a.Cfg.Alerter.Enabled() {
		a.Log.Info("alerter disabled: chat id is not set")
		return nil
	}

	client := mainClient
	if a.Cfg.Alerter.BotToken != "" {
		client = tgAdapter.NewClientWithBaseURL(a.Cfg.Telegram.APIURL, a.Cfg.Alerter.BotToken, a.Log)
	}

	return alerterService.New(alerterAdapter.NewClient(a.Cfg.Alerter, client, a.Log))
}

// initUsageLog основной файл плюс все настроенные зеркала.
// Недоступное при старте зеркало пропускается с предупреждением, бот работает дальше.
func (a *App) initUsageLog(ctx context.Context, alerterSvc service.IAlerterService) *usageLogBackends {
	backends := &usageLogBackends{
		Sink:    usagelogService.New(fileStorage.NewUsageLog(a.Cfg.Usage.LogFile), a.Log),
		Pingers: make(map[string]healthcheckController.Pinger),
	}

	if a.Cfg.Postgres.Enabled() {
		db, err := a.initPostgres(ctx)
		if err != nil {
			a.Log.Warn("failed to init postgres, continuing without it", "error", err)
		} else {
			persistenceLayer := pg.NewDB(db)
			repo := usagelogRepo.New(persistenceLayer, a.Log)
			backends.Repo = repo
			backends.Sink.AddMirror("postgres", repo)
			backends.Pingers["postgres"] = persistenceLayer
			backends.Closers = append(backends.Closers, closer{name: "postgres", close: persistenceLayer.Close})
		}
	}

	if a.Cfg.Redis.Enabled() {
		rdb, err := a.Cfg.Redis.NewConnection(ctx)
		if err != nil {
			a.Log.Warn("failed to init redis, continuing without it", "error", err)
		} else {
			redisLog := redisAdapter.NewUsageLog(rdb, a.Cfg.Redis.UsageLogKey, a.Log)
			backends.Sink.AddMirror("redis", redisLog)
			backends.Pingers["redis"] = redisLog
			backends.Closers = append(backends.Closers, closer{name: "redis", close: redisLog.Close})
			a.Log.Info("redis connected successfully")
		}
	}

	if a.Cfg.S3.Enabled() {
		minioClient, err := a.Cfg.S3.NewClient(ctx)
		if err != nil {
			a.Log.Warn("failed to init s3, continuing without it", "error", err)
		} else {
			s3Client := s3Adapter.NewClient(minioClient, a.Cfg.S3.Bucket, a.Log)
			backends.Sink.AddMirror("s3", s3Client)
			backends.Pingers["s3"] = s3Client
			a.Log.Info("s3 connected successfully", "bucket", a.Cfg.S3.Bucket)
		}
	}

	if a.Cfg.Kafka.Enabled() {
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer, continuing without it", "error", err)
		} else {
			backends.Sink.AddMirror("kafka", producer)
			backends.Closers = append(backends.Closers, closer{name: "kafka", close: producer.Close})
		}
	}

	// строка дня дублируется в чат админа, как делал исходный бот
	if alerterSvc != nil {
		if adminSink, ok := alerterSvc.(*alerterService.Service); ok {
			backends.Sink.AddMirror("admin_chat", adminSink)
		}
	}

	a.Log.Info("usage log configured",
		"file", a.Cfg.Usage.LogFile,
		"mirrors", backends.Sink.Mirrors(),
	)
	return backends
}

// initHTTP инициализирует HTTP сервер и контроллеры
func (a *App) initHTTP(
	tgService *telegramService.Service,
	gptService *gptUsecase.Service,
	backends *usageLogBackends,
) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(a.Name, backends.Pingers, a.Log),
		telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log),
	}

	if a.Cfg.Server.AdminEnabled {
		controllers = append(controllers, adminController.New(gptService, backends.Repo, a.Log))
		a.Log.Info("admin API enabled")
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

// initTelegramMode инициализирует режим работы Telegram (webhook или polling)
func (a *App) initTelegramMode(
	ctx context.Context,
	tgService *telegramService.Service,
	tgClient *tgAdapter.Client,
) (*tgAdapter.Poller, error) {
	a.Log.Info("telegram configuration",
		"use_webhook", a.Cfg.Telegram.IsWebhookEnabled(),
		"webhook_url", a.Cfg.Telegram.WebhookURL,
	)

	if a.Cfg.Telegram.IsWebhookEnabled() {
		webhookURL := fmt.Sprintf("%s/webhook", a.Cfg.Telegram.WebhookURL)
		if err := tgClient.SetWebhook(ctx, webhookURL, a.Cfg.Telegram.WebhookSecret); err != nil {
			return nil, fmt.Errorf("failed to set webhook: %w", err)
		}
		a.Log.Info("webhook set successfully", "webhook_url", webhookURL)
		return nil, nil // webhook режим, poller не нужен
	}

	a.Log.Warn("polling mode enabled - this should only be used for local development")
	return tgAdapter.NewPoller(tgClient, a.Cfg.Telegram, tgService.HandleUpdate, a.Log), nil
}

// registerBotCommands регистрирует меню команд.
// /get-user-statistics в меню не попадает: Telegram не принимает "-" в именах команд.
func (a *App) registerBotCommands(ctx context.Context, client *tgAdapter.Client) error {
	commands := []tgAdapter.BotCommand{
		{Command: texts.CommandClear, Description: texts.ClearCommandDescription},
	}

	return client.SetMyCommands(ctx, commands)
}
