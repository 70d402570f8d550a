package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"rent-analyzer/models"
	"rent-analyzer/utils"
)

// PostgresStore serves the reference table from PostgreSQL. On first run the
// table is empty and gets seeded from the file/built-in data by the caller.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use store.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := utils.Retry(logger, "postgres ping", 5, 2*time.Second, db.Ping); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return s, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ref_listings (
			id              SERIAL PRIMARY KEY,
			location        TEXT          NOT NULL,
			latitude        NUMERIC(9,6)  NOT NULL,
			longitude       NUMERIC(9,6)  NOT NULL,
			area_sqft       INTEGER       NOT NULL,
			bhk             INTEGER       NOT NULL,
			amenities_score INTEGER       NOT NULL,
			rent_price      NUMERIC(12,2) NOT NULL,
			created_at      TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_ref_listings_location ON ref_listings(location);
		CREATE INDEX IF NOT EXISTS idx_ref_listings_rent     ON ref_listings(rent_price);
	`)
	return err
}

// Count returns the number of stored reference listings.
func (s *PostgresStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ref_listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: count: %w", err)
	}
	return n, nil
}

// Seed batch-inserts the given listings. Meant for a one-time fill of an
// empty table.
func (s *PostgresStore) Seed(listings []*models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := s.insertBatch(listings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) insertBatch(batch []*models.Listing) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*7)

	for idx, l := range batch {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			l.Location, l.Latitude, l.Longitude, l.AreaSqft, l.BHK, l.AmenitiesScore, l.RentPrice)
	}

	query := fmt.Sprintf(`
		INSERT INTO ref_listings (location, latitude, longitude, area_sqft, bhk, amenities_score, rent_price)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := s.db.Exec(query, valueArgs...)
	if err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// Load retrieves all stored reference listings in insertion order.
func (s *PostgresStore) Load() ([]*models.Listing, error) {
	rows, err := s.db.Query(`
		SELECT location, latitude, longitude, area_sqft, bhk, amenities_score, rent_price
		FROM ref_listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: load: %w", err)
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		l := &models.Listing{}
		if err := rows.Scan(
			&l.Location, &l.Latitude, &l.Longitude,
			&l.AreaSqft, &l.BHK, &l.AmenitiesScore, &l.RentPrice,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
