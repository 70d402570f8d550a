package storage

import "rent-analyzer/models"

// ReferenceSource is the interface any reference-table backend must satisfy.
type ReferenceSource interface {
	Load() ([]*models.Listing, error)
}

var (
	_ ReferenceSource = (*CSVReader)(nil)
	_ ReferenceSource = (*PostgresStore)(nil)
)
