package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/events"
	"github.com/alex-morcg/horarios-vacaciones/internal/messaging/kafka/consumer"
	"github.com/alex-morcg/horarios-vacaciones/internal/notify"
	"github.com/alex-morcg/horarios-vacaciones/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)

	// Without a configured gateway the consumer still drains the topic, it
	// just logs instead of sending.
	var notifier notify.Notifier
	if gateway := os.Getenv("WHATSAPP_GATEWAY_URL"); gateway != "" {
		notifier = notify.NewWhatsAppNotifier(
			gateway,
			os.Getenv("WHATSAPP_FROM"),
			os.Getenv("WHATSAPP_AUTH_TOKEN"),
			logger,
		)
	} else {
		notifier = notify.NewNoopNotifier(logger)
	}

	cfg := consumer.Config{
		AdminPhone: os.Getenv("NOTIFY_ADMIN_PHONE"),
		AppURL:     os.Getenv("APP_URL"),
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.RequestLifecycleTopic,
		GroupID:        "horarios-vacaciones-notifications",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRequestLifecycle(ctx, reader, employeeRepo, notifier, cfg, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
