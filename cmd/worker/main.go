package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"returns-notifier/internal/common/config"
	"returns-notifier/internal/common/database"
	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/directory"
	"returns-notifier/internal/localization"
	"returns-notifier/internal/messaging"
	"returns-notifier/internal/notify"
	"returns-notifier/internal/worker"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting notification worker...")

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	dispatcher, err := buildDispatcher(ctx, cfg, pg, redis, log)
	if err != nil {
		zapLog.Fatal("dispatcher setup failed", zap.Error(err))
	}

	handler := worker.NewHandler(dispatcher, cfg.Camunda.GetTimeout(), log)

	jobWorker := zeebeClient.NewJobWorker().
		JobType(worker.TaskType).
		Handler(handler.Handle).
		MaxJobsActive(cfg.Camunda.MaxJobsActive).
		Timeout(cfg.Camunda.GetTimeout()).
		RequestTimeout(cfg.Camunda.GetRequestTimeout()).
		Open()

	zapLog.Info("worker started",
		zap.String("taskType", worker.TaskType),
		zap.Int("maxJobsActive", cfg.Camunda.MaxJobsActive),
	)

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping worker...")
	jobWorker.Close()
	jobWorker.AwaitClose()

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}
	zapLog.Info("Notification worker stopped gracefully")
}

// buildDispatcher wires the dispatch pipeline from configuration.
func buildDispatcher(ctx context.Context, cfg *config.Config, pg *database.PostgresClient, redis *database.RedisClient, log logger.Logger) (*notify.Dispatcher, error) {
	dir := directory.NewPostgresDirectory(pg.DB, log)
	recipients := directory.NewRedisRecipients(redis.Client, log)
	renderer := localization.NewRedisRenderer(redis.Client, log)

	var (
		gateway notify.MessagingGateway = messaging.NopGateway{}
		sms     notify.SMSService       = messaging.NopSMSService{}
		sender                          = messaging.ConfigSender{}
	)
	if cfg.Notifications.Email.Enabled {
		g, err := messaging.NewSESGatewayFromRegion(ctx, cfg.Notifications.AWS.Region, log)
		if err != nil {
			return nil, err
		}
		gateway = g
		sender = messaging.ConfigSender{From: cfg.Notifications.Email.FromEmail}
	}
	if cfg.Notifications.SMS.Enabled {
		s, err := messaging.NewSNSNotificationServiceFromRegion(ctx, cfg.Notifications.AWS.Region, dir, renderer, cfg.Notifications.SMS.SenderID, log)
		if err != nil {
			return nil, err
		}
		sms = s
	}

	builder := notify.NewContextBuilder(dir, dir, dir, dir, renderer, log)
	employee := notify.NewEmployeeNotifier(recipients, renderer, gateway, log)
	client := notify.NewClientNotifier(renderer, gateway, sms, log)

	return notify.NewDispatcher(builder, employee, client, sender, log), nil
}
