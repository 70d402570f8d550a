package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rent.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVReaderLoadsValidFile(t *testing.T) {
	path := writeTemp(t,
		"location,latitude,longitude,area_sqft,bhk,amenities_score,rent_price\n"+
			"\"Bandra, Mumbai\",19.060,72.830,700,2,7,60000\n"+
			"\"Andheri, Mumbai\",19.119,72.846,850,2,8,45000\n")

	listings, err := NewCSVReader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	l := listings[0]
	if l.Location != "Bandra, Mumbai" || l.Latitude != 19.060 || l.Longitude != 72.830 ||
		l.AreaSqft != 700 || l.BHK != 2 || l.AmenitiesScore != 7 || l.RentPrice != 60000 {
		t.Errorf("first row mismatch: %+v", l)
	}
}

func TestCSVReaderMissingFile(t *testing.T) {
	if _, err := NewCSVReader(filepath.Join(t.TempDir(), "nope.csv")).Load(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCSVReaderRejectsBadHeader(t *testing.T) {
	path := writeTemp(t, "loc,lat,lon,area,bhk,amen,rent\nX,1,2,3,4,5,6\n")
	if _, err := NewCSVReader(path).Load(); err == nil {
		t.Error("expected error for wrong header")
	}
}

func TestCSVReaderRejectsMalformedRow(t *testing.T) {
	path := writeTemp(t,
		"location,latitude,longitude,area_sqft,bhk,amenities_score,rent_price\n"+
			"\"Bandra, Mumbai\",not-a-number,72.830,700,2,7,60000\n")
	if _, err := NewCSVReader(path).Load(); err == nil {
		t.Error("expected error for malformed latitude")
	}
}

func TestCSVReaderRejectsEmptyFile(t *testing.T) {
	path := writeTemp(t, "location,latitude,longitude,area_sqft,bhk,amenities_score,rent_price\n")
	if _, err := NewCSVReader(path).Load(); err == nil {
		t.Error("expected error for header-only file")
	}
}
