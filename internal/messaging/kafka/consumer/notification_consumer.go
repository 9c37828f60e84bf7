package consumer

import (
	"context"
	"encoding/json"

	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/events"
	"github.com/alex-morcg/horarios-vacaciones/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Config for outbound notifications. AdminPhone receives every lifecycle
// message; employees only get decision messages when opted in.
type Config struct {
	AdminPhone string
	AppURL     string
}

// ConsumeRequestLifecycle reads request lifecycle events and dispatches the
// WhatsApp notifications the product sends: new requests go to the admin with
// any detected conflicts, decisions go to the employee and the admin.
func ConsumeRequestLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	employeeRepo employee.Repository,
	notifier notify.Notifier,
	cfg Config,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_lifecycle")
	log.Info("request lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request lifecycle consumer stopped")
				return
			}
			log.Error("fetch request lifecycle message failed", zap.Error(err))
			continue
		}

		eventType := headerValue(msg, "event_type")

		switch eventType {
		case events.EventRequestCreated:
			var event events.RequestCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode request_created event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			if err := handleCreated(ctx, notifier, cfg, event); err != nil {
				log.Error("notify request_created failed",
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
				continue
			}

		case events.EventRequestDecided:
			var event events.RequestDecidedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode request_decided event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			if err := handleDecided(ctx, employeeRepo, notifier, cfg, event, log); err != nil {
				log.Error("notify request_decided failed",
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
				continue
			}

		default:
			log.Warn("unknown lifecycle event type, skipping", zap.String("event_type", eventType))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request lifecycle message failed", zap.Error(err))
		}
	}
}

func handleCreated(ctx context.Context, notifier notify.Notifier, cfg Config, event events.RequestCreatedEvent) error {
	if cfg.AdminPhone == "" {
		return nil
	}
	return notifier.Send(ctx, cfg.AdminPhone, formatCreatedMessage(event, cfg.AppURL))
}

func handleDecided(
	ctx context.Context,
	employeeRepo employee.Repository,
	notifier notify.Notifier,
	cfg Config,
	event events.RequestDecidedEvent,
	log *zap.Logger,
) error {
	emp, err := employeeRepo.FindByCode(ctx, event.EmployeeCode)
	if err != nil {
		log.Warn("employee lookup for notification failed",
			zap.String("employee_code", event.EmployeeCode),
			zap.Error(err),
		)
	} else if emp.Phone != nil && *emp.Phone != "" && emp.WhatsappOptIn {
		if err := notifier.Send(ctx, *emp.Phone, formatDecidedMessage(event)); err != nil {
			return err
		}
	} else {
		log.Info("employee has no whatsapp configured or notifications disabled",
			zap.String("employee_code", event.EmployeeCode),
		)
	}

	if cfg.AdminPhone == "" {
		return nil
	}
	return notifier.Send(ctx, cfg.AdminPhone, formatDecidedAdminMessage(event))
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
