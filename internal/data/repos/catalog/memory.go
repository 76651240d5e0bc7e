package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

type snapshot struct {
	ordered []*domain.Dinosaur
	byID    map[uint]*domain.Dinosaur
}

// MemoryStore keeps the catalog in process memory. It is written once by Seed
// and read without locks afterwards.
type MemoryStore struct {
	seedMu sync.Mutex
	snap   atomic.Pointer[snapshot]
	log    *logger.Logger
}

var _ SeededStore = (*MemoryStore)(nil)

func NewMemoryStore(baseLog *logger.Logger) *MemoryStore {
	s := &MemoryStore{log: baseLog.With("repo", "MemoryDinosaurStore")}
	s.snap.Store(&snapshot{ordered: []*domain.Dinosaur{}, byID: map[uint]*domain.Dinosaur{}})
	return s
}

// Seed copies records into the store, assigning ids 1..n. A store accepts
// exactly one seed.
func (s *MemoryStore) Seed(records []*domain.Dinosaur) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if len(s.snap.Load().ordered) > 0 {
		return fmt.Errorf("memory store: already seeded")
	}

	next := &snapshot{
		ordered: make([]*domain.Dinosaur, 0, len(records)),
		byID:    make(map[uint]*domain.Dinosaur, len(records)),
	}
	for i, rec := range records {
		if rec == nil {
			return fmt.Errorf("memory store: record %d is nil", i)
		}
		cp := *rec
		cp.ID = uint(i + 1)
		next.ordered = append(next.ordered, &cp)
		next.byID[cp.ID] = &cp
	}
	s.snap.Store(next)
	s.log.Info("catalog seeded", "records", len(next.ordered))
	return nil
}

func (s *MemoryStore) SeedIfEmpty(ctx context.Context, records []*domain.Dinosaur) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, domain.UnavailableError("memory.SeedIfEmpty", err)
	}
	if len(s.snap.Load().ordered) > 0 {
		return 0, nil
	}
	if err := s.Seed(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *MemoryStore) All(ctx context.Context) ([]*domain.Dinosaur, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.UnavailableError("memory.All", err)
	}
	return slices.Clone(s.snap.Load().ordered), nil
}

func (s *MemoryStore) ByID(ctx context.Context, id uint) (*domain.Dinosaur, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.UnavailableError("memory.ByID", err)
	}
	d, ok := s.snap.Load().byID[id]
	if !ok {
		return nil, notFound("memory.ByID", id)
	}
	return d, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, domain.UnavailableError("memory.Count", err)
	}
	return int64(len(s.snap.Load().ordered)), nil
}
