package models

import "time"

// Address represents a single registered street address, identified by its
// stable human-readable code and carrying its geographic coordinates.
type Address struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Province     string    `json:"province"`
	Municipality string    `json:"municipality"`
	Sector       string    `json:"sector"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Reference    string    `json:"reference"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Verified     bool      `json:"verified"`
	Source       string    `json:"source"`
	CreatedBy    string    `json:"created_by"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddressDraft is the client payload for creating an address. Code is
// optional; when absent a code is generated from the sector.
type AddressDraft struct {
	Code         string  `json:"code"`
	Province     string  `json:"province"`
	Municipality string  `json:"municipality"`
	Sector       string  `json:"sector" binding:"required"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Reference    string  `json:"reference"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Verified     bool    `json:"verified"`
	Source       string  `json:"source"`
	CreatedBy    string  `json:"created_by"`
	Notes        string  `json:"notes"`
}

// AddressPatch is a sparse update: only non-nil fields are applied. The code
// identifies the target record through the URL and deliberately has no field
// here, so it can never be rewritten.
type AddressPatch struct {
	Province     *string  `json:"province"`
	Municipality *string  `json:"municipality"`
	Sector       *string  `json:"sector"`
	Street       *string  `json:"street"`
	Number       *string  `json:"number"`
	Reference    *string  `json:"reference"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Verified     *bool    `json:"verified"`
	Source       *string  `json:"source"`
	CreatedBy    *string  `json:"created_by"`
	Notes        *string  `json:"notes"`
}

// IsEmpty reports whether the patch carries no applicable fields.
func (p AddressPatch) IsEmpty() bool {
	return p.Province == nil && p.Municipality == nil && p.Sector == nil &&
		p.Street == nil && p.Number == nil && p.Reference == nil &&
		p.Latitude == nil && p.Longitude == nil && p.Verified == nil &&
		p.Source == nil && p.CreatedBy == nil && p.Notes == nil
}

// FareEstimate is the computed distance, duration and price between two
// registered addresses.
type FareEstimate struct {
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	EstimatedFareRDP float64 `json:"estimated_fare_rdp"`
	Summary          string  `json:"summary"`
}

// Sector is a single distinct sector name, wrapped for the /sectors listing.
type Sector struct {
	Sector string `json:"sector"`
}
