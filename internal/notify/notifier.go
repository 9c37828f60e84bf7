package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Notifier delivers a WhatsApp message to a phone number in E.164 form.
// Delivery is best effort: the caller decides whether a failure is retried.
type Notifier interface {
	Send(ctx context.Context, to, message string) error
}

type noopNotifier struct {
	logger *zap.Logger
}

// NewNoopNotifier logs instead of sending. Used when no gateway is configured
// (local development, tests).
func NewNoopNotifier(logger *zap.Logger) Notifier {
	return &noopNotifier{logger: logger.Named("notify.noop")}
}

func (n *noopNotifier) Send(ctx context.Context, to, message string) error {
	n.logger.Info("whatsapp message suppressed",
		zap.String("to", to),
		zap.Int("length", len(message)),
	)
	return nil
}

type whatsappNotifier struct {
	client     *http.Client
	gatewayURL string
	from       string
	authToken  string
	logger     *zap.Logger
}

// NewWhatsAppNotifier posts Twilio-shaped form payloads to the configured
// messaging gateway.
func NewWhatsAppNotifier(gatewayURL, from, authToken string, logger *zap.Logger) Notifier {
	return &whatsappNotifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		gatewayURL: gatewayURL,
		from:       from,
		authToken:  authToken,
		logger:     logger.Named("notify.whatsapp"),
	}
}

func (n *whatsappNotifier) Send(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("From", "whatsapp:"+n.from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+n.authToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	n.logger.Info("whatsapp message sent", zap.String("to", to))
	return nil
}
