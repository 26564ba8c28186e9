package repository

import (
	"context"
	"errors"
	"fmt"

	"maogo-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage-level sentinel errors, translated by the service layer.
var (
	ErrNotFound      = errors.New("repository: address not found")
	ErrDuplicateCode = errors.New("repository: code already exists")
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

const addressColumns = `
	id,
	code,
	province,
	municipality,
	sector,
	street,
	number,
	reference,
	latitude,
	longitude,
	verified,
	source,
	created_by,
	notes,
	created_at
`

// Repository implements the address repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanAddress(row pgx.Row) (*models.Address, error) {
	var a models.Address
	err := row.Scan(
		&a.ID,
		&a.Code,
		&a.Province,
		&a.Municipality,
		&a.Sector,
		&a.Street,
		&a.Number,
		&a.Reference,
		&a.Latitude,
		&a.Longitude,
		&a.Verified,
		&a.Source,
		&a.CreatedBy,
		&a.Notes,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CountByPrefix returns how many stored codes start with the given prefix.
func (r *Repository) CountByPrefix(ctx context.Context, prefix string) (int, error) {
	sql := `SELECT COUNT(*) FROM addresses WHERE code LIKE $1 || '%'`

	var count int
	if err := r.db.QueryRow(ctx, sql, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count codes by prefix: %w", err)
	}
	return count, nil
}

// Insert persists a new address and returns the stored record with its
// database-assigned id and creation timestamp. A unique constraint hit on
// code is reported as ErrDuplicateCode.
func (r *Repository) Insert(ctx context.Context, addr models.Address) (*models.Address, error) {
	sql := `
		INSERT INTO addresses
			(code, province, municipality, sector, street, number, reference,
			 latitude, longitude, verified, source, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + addressColumns

	row := r.db.QueryRow(ctx, sql,
		addr.Code,
		addr.Province,
		addr.Municipality,
		addr.Sector,
		addr.Street,
		addr.Number,
		addr.Reference,
		addr.Latitude,
		addr.Longitude,
		addr.Verified,
		addr.Source,
		addr.CreatedBy,
		addr.Notes,
	)

	stored, err := scanAddress(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("repository: failed to insert address: %w", err)
	}
	return stored, nil
}

// GetByCode fetches a single address by its unique code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*models.Address, error) {
	sql := `SELECT` + addressColumns + `FROM addresses WHERE code = $1`

	addr, err := scanAddress(r.db.QueryRow(ctx, sql, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get address by code: %w", err)
	}
	return addr, nil
}

// Update overwrites the mutable fields of the address identified by code and
// returns the stored record. Code and created_at are never touched.
func (r *Repository) Update(ctx context.Context, addr models.Address) (*models.Address, error) {
	sql := `
		UPDATE addresses SET
			province = $2,
			municipality = $3,
			sector = $4,
			street = $5,
			number = $6,
			reference = $7,
			latitude = $8,
			longitude = $9,
			verified = $10,
			source = $11,
			created_by = $12,
			notes = $13
		WHERE code = $1
		RETURNING ` + addressColumns

	row := r.db.QueryRow(ctx, sql,
		addr.Code,
		addr.Province,
		addr.Municipality,
		addr.Sector,
		addr.Street,
		addr.Number,
		addr.Reference,
		addr.Latitude,
		addr.Longitude,
		addr.Verified,
		addr.Source,
		addr.CreatedBy,
		addr.Notes,
	)

	stored, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to update address: %w", err)
	}
	return stored, nil
}

// Search returns addresses matching the query as a case-insensitive substring
// of sector, street, reference or code, most recent first. An empty query
// lists everything up to limit.
func (r *Repository) Search(ctx context.Context, query string, limit int) ([]models.Address, error) {
	sql := `SELECT` + addressColumns + `FROM addresses`
	args := []interface{}{}

	if query != "" {
		sql += `
		WHERE sector ILIKE '%' || $1 || '%'
		   OR street ILIKE '%' || $1 || '%'
		   OR reference ILIKE '%' || $1 || '%'
		   OR code ILIKE '%' || $1 || '%'`
		args = append(args, query)
	}

	sql += fmt.Sprintf(`
		ORDER BY created_at DESC, id DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		addresses = append(addresses, *addr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return addresses, nil
}

// DistinctSectors returns the distinct sector names in ascending order.
func (r *Repository) DistinctSectors(ctx context.Context) ([]string, error) {
	sql := `SELECT DISTINCT sector FROM addresses ORDER BY sector ASC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list sectors: %w", err)
	}
	defer rows.Close()

	sectors := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("repository: failed to scan sector: %w", err)
		}
		sectors = append(sectors, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return sectors, nil
}
