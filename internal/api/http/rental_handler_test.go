package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "bikeshare-rental-backend/internal/api/http"
	"bikeshare-rental-backend/internal/domain"
)

type stubRentalService struct {
	startFn  func(ctx context.Context, cyclistID, startLockID int32) (*domain.Rental, error)
	returnFn func(ctx context.Context, bikeID, endLockID int32) (*domain.ReturnSummary, error)
}

func (s *stubRentalService) StartRental(ctx context.Context, cyclistID, startLockID int32) (*domain.Rental, error) {
	return s.startFn(ctx, cyclistID, startLockID)
}

func (s *stubRentalService) ReturnRental(ctx context.Context, bikeID, endLockID int32) (*domain.ReturnSummary, error) {
	return s.returnFn(ctx, bikeID, endLockID)
}

func TestRentalHandler_StartRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubRentalService{
			startFn: func(_ context.Context, cyclistID, startLockID int32) (*domain.Rental, error) {
				assert.Equal(t, int32(1), cyclistID)
				assert.Equal(t, int32(7), startLockID)
				return &domain.Rental{ID: 5, CyclistID: cyclistID, BikeID: 42, StartLockID: startLockID, StartTime: time.Now(), ChargeID: "ch-1"}, nil
			},
		}
		h := api.NewRentalHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/rental", strings.NewReader(`{"cyclist_id":1,"start_lock_id":7}`))
		rec := httptest.NewRecorder()
		h.StartRental(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var rental domain.Rental
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&rental))
		assert.Equal(t, int32(5), rental.ID)
		assert.Equal(t, int32(42), rental.BikeID)
	})

	t.Run("Malformed body", func(t *testing.T) {
		h := api.NewRentalHandler(&stubRentalService{})

		req := httptest.NewRequest(http.MethodPost, "/rental", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		h.StartRental(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Error taxonomy maps to status codes", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"not found", domain.NotFound("cyclist"), http.StatusNotFound},
			{"conflict", domain.Conflict("cyclist already has an open rental"), http.StatusConflict},
			{"validation", domain.Validation("lock not found or defective"), http.StatusUnprocessableEntity},
			{"external service", domain.ExternalService("could not bill the rental", nil), http.StatusBadGateway},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := &stubRentalService{
					startFn: func(_ context.Context, _, _ int32) (*domain.Rental, error) {
						return nil, tc.err
					},
				}
				h := api.NewRentalHandler(svc)

				req := httptest.NewRequest(http.MethodPost, "/rental", strings.NewReader(`{"cyclist_id":1,"start_lock_id":7}`))
				rec := httptest.NewRecorder()
				h.StartRental(rec, req)

				assert.Equal(t, tc.status, rec.Code)
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.NotEmpty(t, body["error"])
			})
		}
	})
}

func TestRentalHandler_ReturnRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		svc := &stubRentalService{
			returnFn: func(_ context.Context, bikeID, endLockID int32) (*domain.ReturnSummary, error) {
				assert.Equal(t, int32(42), bikeID)
				assert.Equal(t, int32(8), endLockID)
				return &domain.ReturnSummary{
					BikeID:         bikeID,
					CyclistID:      1,
					StartTime:      now.Add(-65 * time.Minute),
					EndTime:        now,
					EndLockID:      endLockID,
					SurchargeCents: 1000,
					ExtraChargeID:  "ch-2",
				}, nil
			},
		}
		h := api.NewRentalHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/return", strings.NewReader(`{"bike_id":42,"end_lock_id":8}`))
		rec := httptest.NewRecorder()
		h.ReturnRental(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var summary domain.ReturnSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, int32(1000), summary.SurchargeCents)
		assert.Equal(t, "ch-2", summary.ExtraChargeID)
	})

	t.Run("No open rental", func(t *testing.T) {
		svc := &stubRentalService{
			returnFn: func(_ context.Context, _, _ int32) (*domain.ReturnSummary, error) {
				return nil, domain.NotFound("rental")
			},
		}
		h := api.NewRentalHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/return", strings.NewReader(`{"bike_id":42,"end_lock_id":8}`))
		rec := httptest.NewRecorder()
		h.ReturnRental(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
