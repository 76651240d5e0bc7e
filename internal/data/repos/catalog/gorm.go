package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/domain/taxa"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

const DefaultQueryTimeout = 5 * time.Second

const (
	seedAttempts = 10
	seedBackoff  = 20 * time.Millisecond
)

// dinosaurRow is the persisted layout: one column per attribute, labels as
// text and list fields as JSON arrays so the table is portable between
// Postgres and SQLite.
type dinosaurRow struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name;not null;index"`
	Species string `gorm:"column:species;not null"`
	Genus   string `gorm:"column:genus;not null"`

	Period      string   `gorm:"column:period;not null;index"`
	AgeStartMya *float64 `gorm:"column:age_start_mya"`
	AgeEndMya   *float64 `gorm:"column:age_end_mya"`

	Clade string `gorm:"column:clade;not null"`
	Group string `gorm:"column:group_name;not null"`

	Diet          string   `gorm:"column:diet;not null;index"`
	Size          string   `gorm:"column:size;not null"`
	LengthMeters  *float64 `gorm:"column:length_meters"`
	HeightMeters  *float64 `gorm:"column:height_meters"`
	WeightKg      *float64 `gorm:"column:weight_kg"`
	SkullLengthCm *float64 `gorm:"column:skull_length_cm"`

	Locomotion      string         `gorm:"column:locomotion;not null"`
	Habitat         string         `gorm:"column:habitat;not null"`
	SpecialFeatures datatypes.JSON `gorm:"column:special_features;not null"`

	DiscoveredYear *int    `gorm:"column:discovered_year"`
	Discoverer     *string `gorm:"column:discoverer"`
	LocationFound  *string `gorm:"column:location_found"`
	Formation      *string `gorm:"column:formation"`
	FossilQuality  *string `gorm:"column:fossil_quality"`

	Description      string         `gorm:"column:description;type:text;not null"`
	InterestingFacts datatypes.JSON `gorm:"column:interesting_facts;not null"`

	IsValidSpecies bool           `gorm:"column:is_valid_species;not null"`
	Synonyms       datatypes.JSON `gorm:"column:synonyms;not null"`
}

func (dinosaurRow) TableName() string { return "dinosaurs" }

// GormStore is the durable backing. Every call is bounded by QueryTimeout.
type GormStore struct {
	db           *gorm.DB
	log          *logger.Logger
	queryTimeout time.Duration
}

var _ SeededStore = (*GormStore)(nil)

type GormOption func(*GormStore)

func WithQueryTimeout(d time.Duration) GormOption {
	return func(s *GormStore) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

func NewGormStore(db *gorm.DB, baseLog *logger.Logger, opts ...GormOption) *GormStore {
	s := &GormStore{
		db:           db,
		log:          baseLog.With("repo", "GormDinosaurStore"),
		queryTimeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Migrate creates or updates the dinosaurs table.
func (s *GormStore) Migrate(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.db.WithContext(ctx).AutoMigrate(&dinosaurRow{}); err != nil {
		return classify("gorm.Migrate", err)
	}
	return nil
}

// SeedIfEmpty inserts records with ids 1..n when the table has no rows. The
// emptiness check and the insert share one transaction; explicit ids make a
// concurrent second seeder fail on the primary key instead of duplicating,
// and the loser retries until it sees the populated table.
func (s *GormStore) SeedIfEmpty(ctx context.Context, records []*domain.Dinosaur) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	for attempt := 1; ; attempt++ {
		inserted, err := s.seedOnce(ctx, records)
		if err == nil {
			return inserted, nil
		}
		if !isSeedConflict(err) || attempt == seedAttempts {
			return 0, classify("gorm.SeedIfEmpty", err)
		}
		// Another seeder holds the rows or the write lock. Once it commits the
		// recount sees a populated table and this call becomes a no-op.
		s.log.Debug("seed conflict, retrying", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return 0, classify("gorm.SeedIfEmpty", ctx.Err())
		case <-time.After(time.Duration(attempt) * seedBackoff):
		}
	}
}

func (s *GormStore) seedOnce(ctx context.Context, records []*domain.Dinosaur) (int, error) {
	inserted := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&dinosaurRow{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		rows := make([]*dinosaurRow, 0, len(records))
		for i, rec := range records {
			row, err := toRow(uint(i+1), rec)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		s.log.Info("catalog seeded", "records", inserted)
	} else {
		s.log.Debug("catalog already seeded, skipping")
	}
	return inserted, nil
}

func (s *GormStore) All(ctx context.Context) ([]*domain.Dinosaur, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows []*dinosaurRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		s.logFailure("All", err)
		return nil, classify("gorm.All", err)
	}
	out := make([]*domain.Dinosaur, 0, len(rows))
	for _, row := range rows {
		d, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *GormStore) ByID(ctx context.Context, id uint) (*domain.Dinosaur, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var row dinosaurRow
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, notFound("gorm.ByID", id)
	case err != nil:
		s.logFailure("ByID", err)
		return nil, classify("gorm.ByID", err)
	}
	return fromRow(&row)
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var n int64
	if err := s.db.WithContext(ctx).Model(&dinosaurRow{}).Count(&n).Error; err != nil {
		s.logFailure("Count", err)
		return 0, classify("gorm.Count", err)
	}
	return n, nil
}

func (s *GormStore) logFailure(op string, err error) {
	s.log.Warn("store query failed", "op", op, "connection_error", isPgConnectionError(err), "error", err)
}

func toRow(id uint, d *domain.Dinosaur) (*dinosaurRow, error) {
	if d == nil {
		return nil, domain.ValidationError("gorm.toRow", fmt.Sprintf("record %d is nil", id))
	}
	features, err := encodeList(d.SpecialFeatures)
	if err != nil {
		return nil, err
	}
	facts, err := encodeList(d.InterestingFacts)
	if err != nil {
		return nil, err
	}
	synonyms, err := encodeList(d.Synonyms)
	if err != nil {
		return nil, err
	}
	var quality *string
	if d.FossilQuality != nil {
		q := string(*d.FossilQuality)
		quality = &q
	}
	return &dinosaurRow{
		ID:               id,
		Name:             d.Name,
		Species:          d.Species,
		Genus:            d.Genus,
		Period:           string(d.Period),
		AgeStartMya:      d.AgeStartMya,
		AgeEndMya:        d.AgeEndMya,
		Clade:            string(d.Clade),
		Group:            string(d.Group),
		Diet:             string(d.Diet),
		Size:             string(d.Size),
		LengthMeters:     d.LengthMeters,
		HeightMeters:     d.HeightMeters,
		WeightKg:         d.WeightKg,
		SkullLengthCm:    d.SkullLengthCm,
		Locomotion:       string(d.Locomotion),
		Habitat:          string(d.Habitat),
		SpecialFeatures:  features,
		DiscoveredYear:   d.DiscoveredYear,
		Discoverer:       d.Discoverer,
		LocationFound:    d.LocationFound,
		Formation:        d.Formation,
		FossilQuality:    quality,
		Description:      d.Description,
		InterestingFacts: facts,
		IsValidSpecies:   d.IsValidSpecies,
		Synonyms:         synonyms,
	}, nil
}

// fromRow rebuilds a record, parsing every stored label. A label outside its
// enumeration is corruption, reported with row id, column and value.
func fromRow(r *dinosaurRow) (*domain.Dinosaur, error) {
	var errs []error
	label := func(column, value string, parse func(string) error) {
		if err := parse(value); err != nil {
			errs = append(errs, domain.IntegrityError("gorm.decode",
				fmt.Sprintf("row %d: column %s: unknown label %q", r.ID, column, value)))
		}
	}
	list := func(column string, raw datatypes.JSON) []string {
		out, err := decodeList(raw)
		if err != nil {
			errs = append(errs, domain.IntegrityError("gorm.decode",
				fmt.Sprintf("row %d: column %s: %v", r.ID, column, err)))
		}
		return out
	}

	d := &domain.Dinosaur{
		ID:             r.ID,
		Name:           r.Name,
		Species:        r.Species,
		Genus:          r.Genus,
		AgeStartMya:    r.AgeStartMya,
		AgeEndMya:      r.AgeEndMya,
		LengthMeters:   r.LengthMeters,
		HeightMeters:   r.HeightMeters,
		WeightKg:       r.WeightKg,
		SkullLengthCm:  r.SkullLengthCm,
		DiscoveredYear: r.DiscoveredYear,
		Discoverer:     r.Discoverer,
		LocationFound:  r.LocationFound,
		Formation:      r.Formation,
		Description:    r.Description,
		IsValidSpecies: r.IsValidSpecies,
	}
	label("period", r.Period, func(v string) (err error) { d.Period, err = taxa.ParsePeriod(v); return })
	label("clade", r.Clade, func(v string) (err error) { d.Clade, err = taxa.ParseClade(v); return })
	label("group_name", r.Group, func(v string) (err error) { d.Group, err = taxa.ParseGroup(v); return })
	label("diet", r.Diet, func(v string) (err error) { d.Diet, err = taxa.ParseDiet(v); return })
	label("size", r.Size, func(v string) (err error) { d.Size, err = taxa.ParseSize(v); return })
	label("locomotion", r.Locomotion, func(v string) (err error) { d.Locomotion, err = taxa.ParseLocomotion(v); return })
	label("habitat", r.Habitat, func(v string) (err error) { d.Habitat, err = taxa.ParseHabitat(v); return })
	if r.FossilQuality != nil {
		label("fossil_quality", *r.FossilQuality, func(v string) error {
			q, err := taxa.ParseFossilQuality(v)
			if err == nil {
				d.FossilQuality = &q
			}
			return err
		})
	}
	d.SpecialFeatures = list("special_features", r.SpecialFeatures)
	d.InterestingFacts = list("interesting_facts", r.InterestingFacts)
	d.Synonyms = list("synonyms", r.Synonyms)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return d, nil
}

func encodeList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decodeList(raw datatypes.JSON) ([]string, error) {
	out := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}, fmt.Errorf("not a JSON string array: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
