package testutil

import (
	"testing"

	"github.com/yungbote/dinocatalog-backend/internal/data/seed"
	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

// SeedRecords returns the embedded catalog, unnumbered.
func SeedRecords(tb testing.TB) []*domain.Dinosaur {
	tb.Helper()
	records, err := seed.Load()
	if err != nil {
		tb.Fatalf("load seed: %v", err)
	}
	return records
}
