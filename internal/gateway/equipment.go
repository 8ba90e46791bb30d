package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bikeshare-rental-backend/internal/domain"
	"bikeshare-rental-backend/internal/logger"
)

type equipmentGateway struct {
	baseURL string
	client  *http.Client
}

// NewEquipmentGateway returns an EquipmentGateway backed by the equipment
// microservice's REST API.
func NewEquipmentGateway(baseURL string, timeout time.Duration) EquipmentGateway {
	return &equipmentGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *equipmentGateway) GetLock(ctx context.Context, lockID int32) (*domain.Lock, error) {
	var lock domain.Lock
	if err := g.getJSON(ctx, fmt.Sprintf("/lock/%d", lockID), &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

func (g *equipmentGateway) GetBikeAtLock(ctx context.Context, lockID int32) (*domain.Bike, error) {
	var bike domain.Bike
	if err := g.getJSON(ctx, fmt.Sprintf("/lock/%d/bike", lockID), &bike); err != nil {
		return nil, err
	}
	return &bike, nil
}

func (g *equipmentGateway) GetBikeByID(ctx context.Context, bikeID int32) (*domain.Bike, error) {
	var bike domain.Bike
	if err := g.getJSON(ctx, fmt.Sprintf("/bike/%d", bikeID), &bike); err != nil {
		return nil, err
	}
	return &bike, nil
}

func (g *equipmentGateway) IsBikeInUse(ctx context.Context, bikeID int32) (bool, error) {
	bike, err := g.GetBikeByID(ctx, bikeID)
	if err != nil {
		return false, err
	}
	return bike.Status == domain.BikeStatusInUse, nil
}

func (g *equipmentGateway) Unlock(ctx context.Context, lockID, bikeID int32) error {
	return g.postAction(ctx, fmt.Sprintf("/lock/%d/unlock", lockID), bikeID)
}

func (g *equipmentGateway) Lock(ctx context.Context, lockID, bikeID int32) error {
	return g.postAction(ctx, fmt.Sprintf("/lock/%d/lock", lockID), bikeID)
}

func (g *equipmentGateway) getJSON(ctx context.Context, path string, out any) error {
	logger.ExternalServiceCall("equipment", "GET "+path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("equipment", "GET "+path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = domain.NotFound("equipment: " + path)
		logger.ExternalServiceResult("equipment", "GET "+path, err)
		return err
	}
	if resp.StatusCode >= 300 {
		err = fmt.Errorf("equipment service returned %s for %s", resp.Status, path)
		logger.ExternalServiceResult("equipment", "GET "+path, err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("equipment: decoding %s: %w", path, err)
	}
	logger.ExternalServiceResult("equipment", "GET "+path, nil)
	return nil
}

func (g *equipmentGateway) postAction(ctx context.Context, path string, bikeID int32) error {
	logger.ExternalServiceCall("equipment", "POST "+path, "bike_id", bikeID)
	payload, _ := json.Marshal(map[string]int32{"bike_id": bikeID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("equipment", "POST "+path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err = fmt.Errorf("equipment service returned %s for %s", resp.Status, path)
		logger.ExternalServiceResult("equipment", "POST "+path, err)
		return err
	}
	logger.ExternalServiceResult("equipment", "POST "+path, nil)
	return nil
}
