package service

import (
	"context"
	"testing"
	"time"

	"maogo-api/internal/models"
	"maogo-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRegistryRepository is a mock implementation of the RegistryRepository interface
type MockRegistryRepository struct {
	mock.Mock
}

func (m *MockRegistryRepository) CountByPrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockRegistryRepository) Insert(ctx context.Context, addr models.Address) (*models.Address, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockRegistryRepository) GetByCode(ctx context.Context, code string) (*models.Address, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockRegistryRepository) Update(ctx context.Context, addr models.Address) (*models.Address, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockRegistryRepository) Search(ctx context.Context, query string, limit int) ([]models.Address, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *MockRegistryRepository) DistinctSectors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func storedFrom(addr models.Address) *models.Address {
	stored := addr
	stored.ID = 1
	stored.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &stored
}

func TestRegistryService_Insert_GeneratesCode(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Sector:    "Sector Los Jardines",
		Latitude:  19.5517,
		Longitude: -71.0752,
	}

	mockRepo.On("CountByPrefix", mock.Anything, "VG-MAO-SJ-").Return(2, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
		return a.Code == "VG-MAO-SJ-00003"
	})).Return(storedFrom(models.Address{Code: "VG-MAO-SJ-00003"}), nil).Once()

	stored, err := svc.Insert(context.Background(), draft)

	assert.NoError(t, err)
	assert.Equal(t, "VG-MAO-SJ-00003", stored.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Sector:    "Guatapanal",
		Latitude:  19.60,
		Longitude: -71.05,
	}

	mockRepo.On("CountByPrefix", mock.Anything, "VG-MAO-G-").Return(0, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
		return a.Province == "Valverde" &&
			a.Municipality == "Mao" &&
			a.Source == "team" &&
			a.CreatedBy == "API"
	})).Return(storedFrom(models.Address{Code: "VG-MAO-G-00001"}), nil).Once()

	_, err := svc.Insert(context.Background(), draft)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_ClientSuppliedCode(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Code:      "custom-123",
		Sector:    "Sector Los Jardines",
		Latitude:  19.55,
		Longitude: -71.07,
	}

	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
		return a.Code == "custom-123"
	})).Return(storedFrom(models.Address{Code: "custom-123"}), nil).Once()

	stored, err := svc.Insert(context.Background(), draft)

	assert.NoError(t, err)
	assert.Equal(t, "custom-123", stored.Code)
	mockRepo.AssertNotCalled(t, "CountByPrefix", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_ClientSuppliedDuplicate(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Code:      "VG-MAO-SJ-00001",
		Sector:    "Sector Los Jardines",
		Latitude:  19.55,
		Longitude: -71.07,
	}

	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateCode).Once()

	_, err := svc.Insert(context.Background(), draft)

	assert.ErrorIs(t, err, ErrDuplicateCode)
	// Client-supplied codes are never retried.
	mockRepo.AssertNumberOfCalls(t, "Insert", 1)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_RetriesGeneratedCodeOnRace(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Sector:    "Sector Los Jardines",
		Latitude:  19.55,
		Longitude: -71.07,
	}

	// A concurrent insert claimed VG-MAO-SJ-00003 between the count and the
	// insert; the refreshed count yields the next free sequence number.
	mockRepo.On("CountByPrefix", mock.Anything, "VG-MAO-SJ-").Return(2, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
		return a.Code == "VG-MAO-SJ-00003"
	})).Return(nil, repository.ErrDuplicateCode).Once()
	mockRepo.On("CountByPrefix", mock.Anything, "VG-MAO-SJ-").Return(3, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.Address) bool {
		return a.Code == "VG-MAO-SJ-00004"
	})).Return(storedFrom(models.Address{Code: "VG-MAO-SJ-00004"}), nil).Once()

	stored, err := svc.Insert(context.Background(), draft)

	assert.NoError(t, err)
	assert.Equal(t, "VG-MAO-SJ-00004", stored.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_RetriesExhausted(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	draft := models.AddressDraft{
		Sector:    "Sector Los Jardines",
		Latitude:  19.55,
		Longitude: -71.07,
	}

	mockRepo.On("CountByPrefix", mock.Anything, "VG-MAO-SJ-").Return(2, nil).Times(3)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateCode).Times(3)

	_, err := svc.Insert(context.Background(), draft)

	assert.ErrorIs(t, err, ErrDuplicateCode)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Insert_Validation(t *testing.T) {
	tests := []struct {
		name     string
		draft    models.AddressDraft
		expected error
	}{
		{
			name:     "missing sector",
			draft:    models.AddressDraft{Sector: "   ", Latitude: 19.55, Longitude: -71.07},
			expected: ErrMissingSector,
		},
		{
			name:     "latitude out of range",
			draft:    models.AddressDraft{Sector: "Guatapanal", Latitude: 91, Longitude: -71.07},
			expected: ErrInvalidCoordinates,
		},
		{
			name:     "longitude out of range",
			draft:    models.AddressDraft{Sector: "Guatapanal", Latitude: 19.55, Longitude: -181},
			expected: ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRegistryRepository)
			svc := NewRegistryService(mockRepo)

			_, err := svc.Insert(context.Background(), tt.draft)

			assert.ErrorIs(t, err, tt.expected)
			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestRegistryService_Update(t *testing.T) {
	existing := models.Address{
		ID:           1,
		Code:         "VG-MAO-SJ-00001",
		Province:     "Valverde",
		Municipality: "Mao",
		Sector:       "Sector Los Jardines",
		Street:       "Calle Duarte",
		Latitude:     19.55,
		Longitude:    -71.07,
		Verified:     false,
		Source:       "team",
		CreatedBy:    "API",
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	street := "Calle Mella"
	verified := true

	t.Run("applies only supplied fields", func(t *testing.T) {
		mockRepo := new(MockRegistryRepository)
		svc := NewRegistryService(mockRepo)

		patch := models.AddressPatch{Street: &street, Verified: &verified}

		merged := existing
		merged.Street = street
		merged.Verified = verified

		mockRepo.On("GetByCode", mock.Anything, existing.Code).Return(&existing, nil).Once()
		mockRepo.On("Update", mock.Anything, merged).Return(&merged, nil).Once()

		updated, err := svc.Update(context.Background(), existing.Code, patch)

		assert.NoError(t, err)
		assert.Equal(t, street, updated.Street)
		assert.True(t, updated.Verified)
		assert.Equal(t, existing.Code, updated.Code)
		assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("idempotent with equal values", func(t *testing.T) {
		mockRepo := new(MockRegistryRepository)
		svc := NewRegistryService(mockRepo)

		sameStreet := existing.Street
		patch := models.AddressPatch{Street: &sameStreet}

		mockRepo.On("GetByCode", mock.Anything, existing.Code).Return(&existing, nil).Once()
		mockRepo.On("Update", mock.Anything, existing).Return(&existing, nil).Once()

		updated, err := svc.Update(context.Background(), existing.Code, patch)

		assert.NoError(t, err)
		assert.Equal(t, existing, *updated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		mockRepo := new(MockRegistryRepository)
		svc := NewRegistryService(mockRepo)

		mockRepo.On("GetByCode", mock.Anything, existing.Code).Return(&existing, nil).Once()

		_, err := svc.Update(context.Background(), existing.Code, models.AddressPatch{})

		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown code", func(t *testing.T) {
		mockRepo := new(MockRegistryRepository)
		svc := NewRegistryService(mockRepo)

		mockRepo.On("GetByCode", mock.Anything, "VG-MAO-ZZ-00001").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Update(context.Background(), "VG-MAO-ZZ-00001", models.AddressPatch{Street: &street})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("patched coordinates validated", func(t *testing.T) {
		mockRepo := new(MockRegistryRepository)
		svc := NewRegistryService(mockRepo)

		badLat := 120.0
		mockRepo.On("GetByCode", mock.Anything, existing.Code).Return(&existing, nil).Once()

		_, err := svc.Update(context.Background(), existing.Code, models.AddressPatch{Latitude: &badLat})

		assert.ErrorIs(t, err, ErrInvalidCoordinates)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRegistryService_Search(t *testing.T) {
	results := []models.Address{{Code: "VG-MAO-SJ-00002"}, {Code: "VG-MAO-SJ-00001"}}

	tests := []struct {
		name          string
		query         string
		limit         int
		expectedQuery string
		expectedLimit int
	}{
		{
			name:          "default limit applied",
			query:         "jardines",
			limit:         0,
			expectedQuery: "jardines",
			expectedLimit: 500,
		},
		{
			name:          "explicit limit kept",
			query:         "",
			limit:         25,
			expectedQuery: "",
			expectedLimit: 25,
		},
		{
			name:          "query trimmed",
			query:         "  duarte  ",
			limit:         10,
			expectedQuery: "duarte",
			expectedLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRegistryRepository)
			svc := NewRegistryService(mockRepo)

			mockRepo.On("Search", mock.Anything, tt.expectedQuery, tt.expectedLimit).Return(results, nil).Once()

			got, err := svc.Search(context.Background(), tt.query, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, results, got)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegistryService_ListSectors(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	mockRepo.On("DistinctSectors", mock.Anything).Return([]string{"Guatapanal", "Sector Los Jardines"}, nil).Once()

	sectors, err := svc.ListSectors(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Guatapanal", "Sector Los Jardines"}, sectors)
	mockRepo.AssertExpectations(t)
}

func TestRegistryService_Get(t *testing.T) {
	mockRepo := new(MockRegistryRepository)
	svc := NewRegistryService(mockRepo)

	mockRepo.On("GetByCode", mock.Anything, "VG-MAO-ZZ-00001").Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), "VG-MAO-ZZ-00001")

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertExpectations(t)
}
