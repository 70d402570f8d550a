package services

import (
	"os"
	"path/filepath"
	"testing"

	"rent-analyzer/config"
)

func TestLoadFallbackWhenFileMissing(t *testing.T) {
	cfg := &config.Config{CSVPath: filepath.Join(t.TempDir(), "missing.csv")}
	svc := NewDatasetService(cfg, newTestLogger())
	defer svc.Close()

	table := svc.Load()
	if len(table) != 4 {
		t.Fatalf("fallback table: got %d rows, want 4", len(table))
	}

	wantOrder := []string{"Bandra, Mumbai", "Andheri, Mumbai", "Borivali, Mumbai", "Powai, Mumbai"}
	for i, want := range wantOrder {
		if table[i].Location != want {
			t.Errorf("row %d: got %q, want %q", i, table[i].Location, want)
		}
	}

	bandra := table[0]
	if bandra.Latitude != 19.060 || bandra.Longitude != 72.830 ||
		bandra.AreaSqft != 700 || bandra.BHK != 2 ||
		bandra.AmenitiesScore != 7 || bandra.RentPrice != 60000 {
		t.Errorf("Bandra row mismatch: %+v", bandra)
	}
}

func TestLoadFromCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "real_rent_data.csv")
	content := "location,latitude,longitude,area_sqft,bhk,amenities_score,rent_price\n" +
		"\"Thane, Mumbai\",19.218,72.978,650,1,5,30000\n" +
		"\"Dadar, Mumbai\",19.018,72.842,900,2,7,55000\n" +
		"\"Colaba, Mumbai\",18.915,72.825,1100,3,9,95000\n" +
		"\"Goregaon, Mumbai\",19.155,72.849,800,2,6,42000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{CSVPath: path}
	svc := NewDatasetService(cfg, newTestLogger())
	defer svc.Close()

	table := svc.Load()
	if len(table) != 4 {
		t.Fatalf("got %d rows, want 4", len(table))
	}
	if table[0].Location != "Thane, Mumbai" || table[0].RentPrice != 30000 {
		t.Errorf("first row mismatch: %+v", table[0])
	}
}

func TestLoadFallbackOnMalformedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("not,a,reference\ntable,at,all\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{CSVPath: path}
	svc := NewDatasetService(cfg, newTestLogger())
	defer svc.Close()

	table := svc.Load()
	if len(table) != 4 || table[0].Location != "Bandra, Mumbai" {
		t.Errorf("expected fallback table, got %d rows", len(table))
	}
}
