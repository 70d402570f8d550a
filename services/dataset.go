package services

import (
	"rent-analyzer/config"
	"rent-analyzer/models"
	"rent-analyzer/storage"
	"rent-analyzer/utils"
)

// FallbackListings returns the built-in sample table used when no other
// reference source is available. Order matters: the map and the location
// selector preserve it.
func FallbackListings() []*models.Listing {
	return []*models.Listing{
		{Location: "Bandra, Mumbai", Latitude: 19.060, Longitude: 72.830, AreaSqft: 700, BHK: 2, AmenitiesScore: 7, RentPrice: 60000},
		{Location: "Andheri, Mumbai", Latitude: 19.119, Longitude: 72.846, AreaSqft: 850, BHK: 2, AmenitiesScore: 8, RentPrice: 45000},
		{Location: "Borivali, Mumbai", Latitude: 19.230, Longitude: 72.856, AreaSqft: 900, BHK: 3, AmenitiesScore: 6, RentPrice: 48000},
		{Location: "Powai, Mumbai", Latitude: 19.119, Longitude: 72.905, AreaSqft: 750, BHK: 2, AmenitiesScore: 9, RentPrice: 52000},
	}
}

// DatasetService produces the reference table at startup. It tries
// PostgreSQL (when enabled), then the CSV file, then the built-in sample,
// and never fails: every fallthrough is logged and absorbed.
type DatasetService struct {
	cfg    *config.Config
	logger *utils.Logger
	store  *storage.PostgresStore
}

func NewDatasetService(cfg *config.Config, logger *utils.Logger) *DatasetService {
	return &DatasetService{cfg: cfg, logger: logger}
}

// Load builds the reference table. Called exactly once per process; the
// result is treated as immutable for the process's lifetime.
func (s *DatasetService) Load() []*models.Listing {
	if s.cfg.PostgresEnabled {
		if listings, ok := s.loadFromPostgres(); ok {
			return listings
		}
	}
	return s.loadFromFile()
}

func (s *DatasetService) loadFromPostgres() ([]*models.Listing, bool) {
	store, err := storage.NewPostgresStore(s.cfg.DSN(), s.logger)
	if err != nil {
		s.logger.Warn("[dataset] PostgreSQL unavailable, falling back to file: %v", err)
		return nil, false
	}
	s.store = store

	count, err := store.Count()
	if err != nil {
		s.logger.Warn("[dataset] PostgreSQL count failed, falling back to file: %v", err)
		return nil, false
	}

	if count == 0 {
		seed := s.loadFromFile()
		if err := store.Seed(seed); err != nil {
			s.logger.Warn("[dataset] Seeding PostgreSQL failed, using seed data directly: %v", err)
			return seed, true
		}
		s.logger.Info("[dataset] Seeded PostgreSQL with %d reference listings", len(seed))
	}

	listings, err := store.Load()
	if err != nil {
		s.logger.Warn("[dataset] PostgreSQL load failed, falling back to file: %v", err)
		return nil, false
	}
	if len(listings) == 0 {
		s.logger.Warn("[dataset] PostgreSQL returned an empty table, falling back to file")
		return nil, false
	}

	s.logger.Info("[dataset] Loaded %d reference listings from PostgreSQL", len(listings))
	return listings, true
}

func (s *DatasetService) loadFromFile() []*models.Listing {
	listings, err := storage.NewCSVReader(s.cfg.CSVPath).Load()
	if err != nil {
		s.logger.Warn("[dataset] CSV load failed, using built-in sample table: %v", err)
		return FallbackListings()
	}
	s.logger.Info("[dataset] Loaded %d reference listings from %s", len(listings), s.cfg.CSVPath)
	return listings
}

// Close releases the PostgreSQL connection if one was opened.
func (s *DatasetService) Close() {
	if s.store != nil {
		_ = s.store.Close()
	}
}
