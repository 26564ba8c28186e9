package service

import "maogo-api/internal/models"

// applyPatch merges the non-nil fields of a patch into an existing address.
// Code and CreatedAt carry over untouched; the patch has no way to name them.
func applyPatch(addr models.Address, patch models.AddressPatch) models.Address {
	if patch.Province != nil {
		addr.Province = *patch.Province
	}
	if patch.Municipality != nil {
		addr.Municipality = *patch.Municipality
	}
	if patch.Sector != nil {
		addr.Sector = *patch.Sector
	}
	if patch.Street != nil {
		addr.Street = *patch.Street
	}
	if patch.Number != nil {
		addr.Number = *patch.Number
	}
	if patch.Reference != nil {
		addr.Reference = *patch.Reference
	}
	if patch.Latitude != nil {
		addr.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		addr.Longitude = *patch.Longitude
	}
	if patch.Verified != nil {
		addr.Verified = *patch.Verified
	}
	if patch.Source != nil {
		addr.Source = *patch.Source
	}
	if patch.CreatedBy != nil {
		addr.CreatedBy = *patch.CreatedBy
	}
	if patch.Notes != nil {
		addr.Notes = *patch.Notes
	}
	return addr
}
