package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maogo-api/internal/models"
	"maogo-api/internal/repository"
)

// Defaults applied to drafts that leave the corresponding fields blank.
const (
	defaultProvince     = "Valverde"
	defaultMunicipality = "Mao"
	defaultSource       = "team"
	defaultCreatedBy    = "API"
)

// defaultSearchLimit caps result sets when the caller supplies no limit.
const defaultSearchLimit = 500

// maxGenerateAttempts bounds the retry loop when two concurrent inserts for
// the same sector generate the same code and the unique constraint rejects
// the loser.
const maxGenerateAttempts = 3

// RegistryService contains the business logic for registering, updating and
// searching addresses.
type RegistryService struct {
	repo RegistryRepository
}

// Repository interface for dependency injection
type RegistryRepository interface {
	CountByPrefix(ctx context.Context, prefix string) (int, error)
	Insert(ctx context.Context, addr models.Address) (*models.Address, error)
	GetByCode(ctx context.Context, code string) (*models.Address, error)
	Update(ctx context.Context, addr models.Address) (*models.Address, error)
	Search(ctx context.Context, query string, limit int) ([]models.Address, error)
	DistinctSectors(ctx context.Context) ([]string, error)
}

// NewRegistryService creates a new registry service
func NewRegistryService(repo RegistryRepository) *RegistryService {
	return &RegistryService{repo: repo}
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %f", ErrInvalidCoordinates, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %f", ErrInvalidCoordinates, lng)
	}
	return nil
}

// Insert registers a new address. When the draft carries no code, one is
// generated from the sector; a generated code that loses an insert race is
// regenerated from a refreshed count, a bounded number of times. A
// client-supplied code is used verbatim and never retried.
func (s *RegistryService) Insert(ctx context.Context, draft models.AddressDraft) (*models.Address, error) {
	sector := strings.TrimSpace(draft.Sector)
	if sector == "" {
		return nil, ErrMissingSector
	}
	if err := validateCoordinates(draft.Latitude, draft.Longitude); err != nil {
		return nil, err
	}

	addr := models.Address{
		Code:         strings.TrimSpace(draft.Code),
		Province:     draft.Province,
		Municipality: draft.Municipality,
		Sector:       sector,
		Street:       draft.Street,
		Number:       draft.Number,
		Reference:    draft.Reference,
		Latitude:     draft.Latitude,
		Longitude:    draft.Longitude,
		Verified:     draft.Verified,
		Source:       draft.Source,
		CreatedBy:    draft.CreatedBy,
		Notes:        draft.Notes,
	}
	if addr.Province == "" {
		addr.Province = defaultProvince
	}
	if addr.Municipality == "" {
		addr.Municipality = defaultMunicipality
	}
	if addr.Source == "" {
		addr.Source = defaultSource
	}
	if addr.CreatedBy == "" {
		addr.CreatedBy = defaultCreatedBy
	}

	if addr.Code != "" {
		stored, err := s.repo.Insert(ctx, addr)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				return nil, ErrDuplicateCode
			}
			return nil, fmt.Errorf("service: failed to insert address: %w", err)
		}
		return stored, nil
	}

	prefix := codePrefix(sector)
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		count, err := s.repo.CountByPrefix(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("service: failed to count codes for prefix %q: %w", prefix, err)
		}
		addr.Code = formatCode(prefix, count+1)

		stored, err := s.repo.Insert(ctx, addr)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			return nil, fmt.Errorf("service: failed to insert address: %w", err)
		}
		// Lost the race for this sequence number; refresh the count and retry.
	}

	return nil, ErrDuplicateCode
}

// Update applies a partial update to the address identified by code. The
// code itself is immutable; a patch with no applicable fields is rejected.
func (s *RegistryService) Update(ctx context.Context, code string, patch models.AddressPatch) (*models.Address, error) {
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to load address %q: %w", code, err)
	}

	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	merged := applyPatch(*existing, patch)
	if err := validateCoordinates(merged.Latitude, merged.Longitude); err != nil {
		return nil, err
	}

	stored, err := s.repo.Update(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update address %q: %w", code, err)
	}
	return stored, nil
}

// Get fetches a single address by code.
func (s *RegistryService) Get(ctx context.Context, code string) (*models.Address, error) {
	addr, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to get address %q: %w", code, err)
	}
	return addr, nil
}

// Search lists addresses matching the query, most recent first. A
// non-positive limit falls back to the default cap.
func (s *RegistryService) Search(ctx context.Context, query string, limit int) ([]models.Address, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	addresses, err := s.repo.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search addresses: %w", err)
	}
	return addresses, nil
}

// ListSectors returns the distinct sector names in ascending order.
func (s *RegistryService) ListSectors(ctx context.Context) ([]string, error) {
	sectors, err := s.repo.DistinctSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sectors: %w", err)
	}
	return sectors, nil
}
