package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rent-analyzer/models"
)

// expectedHeader is the column layout of the reference-table CSV file.
var expectedHeader = []string{
	"location", "latitude", "longitude", "area_sqft", "bhk", "amenities_score", "rent_price",
}

// CSVReader loads the reference table from a CSV file on disk.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader for the file at path. The file is not
// touched until Load is called.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Load reads and parses the whole file. Any missing file, bad header or
// malformed row fails the entire load; the caller falls back to the next
// source in the chain.
func (r *CSVReader) Load() ([]*models.Listing, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", r.path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", r.path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv: %q has no data rows", r.path)
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("csv: %q: %w", r.path, err)
	}

	listings := make([]*models.Listing, 0, len(records)-1)
	for i, row := range records[1:] {
		l, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv: %q row %d: %w", r.path, i+2, err)
		}
		listings = append(listings, l)
	}

	return listings, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, name := range expectedHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != name {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, name, header[i])
		}
	}
	return nil
}

func parseRow(row []string) (*models.Listing, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}
	area, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return nil, fmt.Errorf("area_sqft: %w", err)
	}
	bhk, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return nil, fmt.Errorf("bhk: %w", err)
	}
	amenities, err := strconv.Atoi(strings.TrimSpace(row[5]))
	if err != nil {
		return nil, fmt.Errorf("amenities_score: %w", err)
	}
	rent, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64)
	if err != nil {
		return nil, fmt.Errorf("rent_price: %w", err)
	}

	return &models.Listing{
		Location:       strings.TrimSpace(row[0]),
		Latitude:       lat,
		Longitude:      lon,
		AreaSqft:       area,
		BHK:            bhk,
		AmenitiesScore: amenities,
		RentPrice:      rent,
	}, nil
}
