package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"maogo-api/internal/models"
	"maogo-api/internal/repository"
)

// Fare model constants. Amounts are in Dominican pesos.
const (
	earthRadiusKm  = 6371.0
	baseFareRDP    = 75.0
	costPerKmRDP   = 35.0
	avgSpeedKmh    = 25.0
	minTripMinutes = 3
)

// FareService computes trip estimates between two registered addresses.
type FareService struct {
	repo FareRepository
}

// FareRepository interface for dependency injection
type FareRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Address, error)
}

// NewFareService creates a new fare service
func NewFareService(repo FareRepository) *FareService {
	return &FareService{repo: repo}
}

// haversineKm returns the great-circle distance in kilometers between two
// coordinate pairs given in degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlng1 := lng1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlng2 := lng2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlng := rlng2 - rlng1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlng/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Estimate computes distance, duration and fare between two coordinate
// pairs. Duration never falls below the minimum trip time.
func Estimate(pickup, dropoff *models.Address) models.FareEstimate {
	distanceKm := haversineKm(pickup.Latitude, pickup.Longitude, dropoff.Latitude, dropoff.Longitude)

	fare := baseFareRDP + distanceKm*costPerKmRDP
	minutes := int(distanceKm / avgSpeedKmh * 60)
	if minutes < minTripMinutes {
		minutes = minTripMinutes
	}

	return models.FareEstimate{
		DistanceKm:       round2(distanceKm),
		EstimatedMinutes: minutes,
		EstimatedFareRDP: round2(fare),
		Summary:          fmt.Sprintf("%.1f km · ~%d min · RD$%.0f", distanceKm, minutes, fare),
	}
}

// EstimateRide looks up both endpoint addresses and returns the trip
// estimate between them. Either endpoint missing is ErrNotFound.
func (s *FareService) EstimateRide(ctx context.Context, pickupCode, dropoffCode string) (*models.FareEstimate, error) {
	pickup, err := s.repo.GetByCode(ctx, pickupCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to load pickup address %q: %w", pickupCode, err)
	}

	dropoff, err := s.repo.GetByCode(ctx, dropoffCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to load dropoff address %q: %w", dropoffCode, err)
	}

	estimate := Estimate(pickup, dropoff)
	return &estimate, nil
}
