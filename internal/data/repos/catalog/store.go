// Package catalog holds the record store: the only source of catalog records
// for the query engine. Two backings share one contract and must return
// identical results for identical seed data.
package catalog

import (
	"context"
	"fmt"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

// Store is the read contract. All returns records in id order. ByID returns
// an error matching domain.ErrNotFound for unknown ids. Failures of the
// backing itself match domain.ErrStoreUnavailable and are never reported as
// an empty result.
type Store interface {
	All(ctx context.Context) ([]*domain.Dinosaur, error)
	ByID(ctx context.Context, id uint) (*domain.Dinosaur, error)
	Count(ctx context.Context) (int64, error)
}

// Seeder loads the initial dataset. Ids are assigned from 1 in input order.
type Seeder interface {
	SeedIfEmpty(ctx context.Context, records []*domain.Dinosaur) (int, error)
}

type SeededStore interface {
	Store
	Seeder
}

func notFound(op string, id uint) error {
	return domain.NotFoundError(op, fmt.Sprintf("Dinosaur with ID %d not found", id))
}
