package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/yungbote/dinocatalog-backend/internal/data/repos/testutil"
	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

type backing struct {
	name string
	open func(t *testing.T) SeededStore
}

func backings() []backing {
	return []backing{
		{"memory", func(t *testing.T) SeededStore {
			return NewMemoryStore(testutil.Logger(t))
		}},
		{"sqlite", func(t *testing.T) SeededStore {
			svc := testutil.SQLite(t)
			s := NewGormStore(svc.DB(), testutil.Logger(t))
			if err := s.Migrate(context.Background()); err != nil {
				t.Fatalf("Migrate: %v", err)
			}
			return s
		}},
		{"postgres", func(t *testing.T) SeededStore {
			tx := testutil.Tx(t, testutil.Postgres(t))
			s := NewGormStore(tx, testutil.Logger(t))
			if err := s.Migrate(context.Background()); err != nil {
				t.Fatalf("Migrate: %v", err)
			}
			return s
		}},
	}
}

func seeded(t *testing.T, b backing) SeededStore {
	t.Helper()
	s := b.open(t)
	n, err := s.SeedIfEmpty(context.Background(), testutil.SeedRecords(t))
	if err != nil {
		t.Fatalf("SeedIfEmpty: %v", err)
	}
	if n != 11 {
		t.Fatalf("SeedIfEmpty: inserted=%d want 11", n)
	}
	return s
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			s := seeded(t, b)

			all, err := s.All(ctx)
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if len(all) != 11 {
				t.Fatalf("All: len=%d", len(all))
			}
			for i, d := range all {
				if d.ID != uint(i+1) {
					t.Fatalf("All: position %d has id %d", i, d.ID)
				}
			}

			got, err := s.ByID(ctx, 7)
			if err != nil {
				t.Fatalf("ByID(7): %v", err)
			}
			if got.Name != "Velociraptor" || *got.WeightKg != 20 {
				t.Fatalf("ByID(7): got %s %v", got.Name, *got.WeightKg)
			}

			for _, id := range []uint{0, 12, 9999} {
				_, err := s.ByID(ctx, id)
				if !errors.Is(err, domain.ErrNotFound) {
					t.Fatalf("ByID(%d): err=%v, want ErrNotFound", id, err)
				}
			}

			n, err := s.Count(ctx)
			if err != nil || n != 11 {
				t.Fatalf("Count: n=%d err=%v", n, err)
			}
		})
	}
}

func TestBackingsAgree(t *testing.T) {
	ctx := context.Background()
	var reference []*domain.Dinosaur
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			all, err := seeded(t, b).All(ctx)
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if reference == nil {
				reference = all
				return
			}
			if !reflect.DeepEqual(reference, all) {
				for i := range all {
					if !reflect.DeepEqual(reference[i], all[i]) {
						t.Fatalf("record %d differs:\nref: %+v\ngot: %+v", i+1, reference[i], all[i])
					}
				}
				t.Fatalf("record sets differ")
			}
		})
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			s := seeded(t, b)
			n, err := s.SeedIfEmpty(ctx, testutil.SeedRecords(t))
			if err != nil {
				t.Fatalf("second SeedIfEmpty: %v", err)
			}
			if n != 0 {
				t.Fatalf("second SeedIfEmpty inserted %d", n)
			}
			if c, _ := s.Count(ctx); c != 11 {
				t.Fatalf("Count after reseed: %d", c)
			}
		})
	}
}

func TestAllReturnsIndependentSlice(t *testing.T) {
	ctx := context.Background()
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			s := seeded(t, b)
			first, _ := s.All(ctx)
			first[0], first[1] = first[1], first[0]
			second, err := s.All(ctx)
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if second[0].ID != 1 {
				t.Fatalf("store order changed by caller: first id %d", second[0].ID)
			}
		})
	}
}

func TestEmptyStore(t *testing.T) {
	ctx := context.Background()
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			all, err := s.All(ctx)
			if err != nil {
				t.Fatalf("All: %v", err)
			}
			if all == nil || len(all) != 0 {
				t.Fatalf("All: want empty non-nil, got %#v", all)
			}
		})
	}
}

func TestMemoryStoreRefusesSecondSeed(t *testing.T) {
	s := NewMemoryStore(testutil.Logger(t))
	if err := s.Seed(testutil.SeedRecords(t)); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := s.Seed(testutil.SeedRecords(t)); err == nil {
		t.Fatalf("second Seed: expected error")
	}
}

func TestMemoryStoreCopiesInput(t *testing.T) {
	records := testutil.SeedRecords(t)
	s := NewMemoryStore(testutil.Logger(t))
	if err := s.Seed(records); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	records[0].Name = "mutated"
	got, err := s.ByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Name != "Tyrannosaurus Rex" {
		t.Fatalf("store shares caller's record: %s", got.Name)
	}
	if records[0].ID != 0 {
		t.Fatalf("Seed mutated caller's id: %d", records[0].ID)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, b := range backings() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			s := seeded(t, b)
			all, err := s.All(ctx)
			if !errors.Is(err, domain.ErrStoreUnavailable) {
				t.Fatalf("All: err=%v, want ErrStoreUnavailable", err)
			}
			if all != nil {
				t.Fatalf("All: returned records alongside error")
			}
		})
	}
}
