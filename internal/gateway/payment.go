package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/logger"
)

type paymentGateway struct {
	baseURL string
	client  *http.Client
}

// NewPaymentGateway returns a PaymentGateway backed by the payment
// microservice's REST API.
func NewPaymentGateway(baseURL string, timeout time.Duration) PaymentGateway {
	return &paymentGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	ExternalID  string `json:"external_id"`
	CyclistID   int32  `json:"cyclist_id"`
	AmountCents int32  `json:"amount_cents"`
}

type chargeResponse struct {
	ID          string `json:"id"`
	CyclistID   int32  `json:"cyclist_id"`
	AmountCents int32  `json:"amount_cents"`
	Status      string `json:"status"`
}

func (g *paymentGateway) Charge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error) {
	return g.postCharge(ctx, "/charge", cyclistID, amountCents, domain.ChargeStatusCompleted)
}

func (g *paymentGateway) EnqueuePendingCharge(ctx context.Context, cyclistID int32, amountCents int32) (*domain.Charge, error) {
	return g.postCharge(ctx, "/chargeQueue", cyclistID, amountCents, domain.ChargeStatusPending)
}

func (g *paymentGateway) postCharge(ctx context.Context, path string, cyclistID int32, amountCents int32, fallbackStatus domain.ChargeStatus) (*domain.Charge, error) {
	logger.ExternalServiceCall("payment", "POST "+path, "cyclist_id", cyclistID, "amount_cents", amountCents)

	// The external ID deduplicates retried requests on the payment side.
	body, _ := json.Marshal(chargeRequest{
		ExternalID:  uuid.NewString(),
		CyclistID:   cyclistID,
		AmountCents: amountCents,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("payment", "POST "+path, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err = fmt.Errorf("payment service returned %s for %s", resp.Status, path)
		logger.ExternalServiceResult("payment", "POST "+path, err)
		return nil, err
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("payment: decoding %s: %w", path, err)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("payment: empty charge id from %s", path)
	}

	status := domain.ChargeStatus(out.Status)
	if status == "" {
		status = fallbackStatus
	}

	logger.ExternalServiceResult("payment", "POST "+path, nil, "charge_id", out.ID)
	return &domain.Charge{
		ID:          out.ID,
		CyclistID:   out.CyclistID,
		AmountCents: out.AmountCents,
		Status:      status,
	}, nil
}

func (g *paymentGateway) ValidateCard(ctx context.Context, card *domain.CreditCard) error {
	logger.ExternalServiceCall("payment", "POST /card/validate")

	body, _ := json.Marshal(map[string]string{
		"holder_name": card.HolderName,
		"number":      card.Number,
		"expiry":      card.Expiry,
		"cvv":         card.CVV,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/card/validate", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("payment", "POST /card/validate", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		err = domain.Validation("credit card was rejected by the payment service")
		logger.ExternalServiceResult("payment", "POST /card/validate", err)
		return err
	}
	if resp.StatusCode >= 300 {
		err = fmt.Errorf("payment service returned %s for /card/validate", resp.Status)
		logger.ExternalServiceResult("payment", "POST /card/validate", err)
		return err
	}
	logger.ExternalServiceResult("payment", "POST /card/validate", nil)
	return nil
}
