package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"maogo-api/internal/models"
	"maogo-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFareService is a mock implementation of the FareService interface
type MockFareService struct {
	mock.Mock
}

func (m *MockFareService) EstimateRide(ctx context.Context, pickupCode, dropoffCode string) (*models.FareEstimate, error) {
	args := m.Called(ctx, pickupCode, dropoffCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FareEstimate), args.Error(1)
}

func TestRideHandler_Estimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	estimate := &models.FareEstimate{
		DistanceKm:       1.03,
		EstimatedMinutes: 3,
		EstimatedFareRDP: 111.22,
		Summary:          "1.0 km · ~3 min · RD$111",
	}

	tests := []struct {
		name           string
		body           interface{}
		mockEstimate   *models.FareEstimate
		mockError      error
		skipMock       bool
		expectedStatus int
	}{
		{
			name: "successful estimate",
			body: RideEstimateRequest{
				PickupCodigo:  "VG-MAO-SJ-00001",
				DropoffCodigo: "VG-MAO-G-00001",
			},
			mockEstimate:   estimate,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing codes",
			body:           map[string]interface{}{"pickup_codigo": "VG-MAO-SJ-00001"},
			skipMock:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "endpoint missing",
			body: RideEstimateRequest{
				PickupCodigo:  "VG-MAO-SJ-00001",
				DropoffCodigo: "VG-MAO-ZZ-00001",
			},
			mockError:      service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			body: RideEstimateRequest{
				PickupCodigo:  "VG-MAO-SJ-00001",
				DropoffCodigo: "VG-MAO-G-00001",
			},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockFareService)
			handler := NewRideHandler(mockSvc)

			if !tt.skipMock {
				mockSvc.On("EstimateRide", mock.Anything, mock.Anything, mock.Anything).Return(tt.mockEstimate, tt.mockError)
			}

			c, w := testContext(t, http.MethodPost, "/ride/estimate", tt.body)
			handler.Estimate(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got models.FareEstimate
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockEstimate, got)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
