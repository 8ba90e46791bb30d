package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bikeshare-rental-backend/internal/logger"
)

type externalNotifier struct {
	baseURL string
	client  *http.Client
}

// NewExternalNotifier returns a NotificationGateway that posts email to
// the notification microservice.
func NewExternalNotifier(baseURL string, timeout time.Duration) NotificationGateway {
	return &externalNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *externalNotifier) SendEmail(ctx context.Context, to, subject, body string) error {
	logger.ExternalServiceCall("notifier", "POST /email", "to", to, "subject", subject)

	payload, _ := json.Marshal(map[string]string{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("notifier", "POST /email", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err = fmt.Errorf("notification service returned %s", resp.Status)
		logger.ExternalServiceResult("notifier", "POST /email", err)
		return err
	}
	logger.ExternalServiceResult("notifier", "POST /email", nil)
	return nil
}
