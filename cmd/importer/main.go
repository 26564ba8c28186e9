package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"maogo-api/internal/config"

	"github.com/jackc/pgx/v5"
)

// AddressRecord is one row of a field-collected address export.
type AddressRecord struct {
	Code         string
	Province     string
	Municipality string
	Sector       string
	Street       string
	Number       string
	Reference    string
	Lat          float64
	Lng          float64
	Verified     bool
	Source       string
	CreatedBy    string
	Notes        string
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure table exists
	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

// Expected columns: code, province, municipality, sector, street, number,
// reference, latitude, longitude, verified, source, created_by, notes.
func parseCSV(filePath string) ([]AddressRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []AddressRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 13 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 13 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[7], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[7])
		}

		lng, err := strconv.ParseFloat(record[8], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[8])
		}

		verified := record[9] == "1" || record[9] == "true"

		address := AddressRecord{
			Code:         record[0],
			Province:     record[1],
			Municipality: record[2],
			Sector:       record[3],
			Street:       record[4],
			Number:       record[5],
			Reference:    record[6],
			Lat:          lat,
			Lng:          lng,
			Verified:     verified,
			Source:       record[10],
			CreatedBy:    record[11],
			Notes:        record[12],
		}

		records = append(records, address)
	}

	return records, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		province TEXT NOT NULL DEFAULT '',
		municipality TEXT NOT NULL DEFAULT '',
		sector TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		reference TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		source TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS addresses_created_at_idx ON addresses (created_at DESC);
	CREATE INDEX IF NOT EXISTS addresses_code_pattern_idx ON addresses (code text_pattern_ops);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRecords(conn *pgx.Conn, records []AddressRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"addresses"},
		[]string{"code", "province", "municipality", "sector", "street", "number", "reference", "latitude", "longitude", "verified", "source", "created_by", "notes"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.Code, r.Province, r.Municipality, r.Sector, r.Street, r.Number, r.Reference, r.Lat, r.Lng, r.Verified, r.Source, r.CreatedBy, r.Notes}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM addresses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample code
	var code string
	err = conn.QueryRow(context.Background(), "SELECT code FROM addresses LIMIT 1").Scan(&code)
	if err != nil {
		return fmt.Errorf("failed to check code: %w", err)
	}

	fmt.Printf("Sample code: %s\n", code)
	return nil
}
