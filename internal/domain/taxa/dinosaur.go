package taxa

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinDiscoveryYear = 1800
	MaxDiscoveryYear = 2025
)

// Dinosaur is one catalog entry. Records are immutable once loaded; values
// handed out by a store are shared and must be treated as read-only.
type Dinosaur struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Genus   string `json:"genus"`

	// Temporal range, millions of years before present. Start is the older bound.
	Period      Period   `json:"period"`
	AgeStartMya *float64 `json:"age_start_mya"`
	AgeEndMya   *float64 `json:"age_end_mya"`

	Clade Clade `json:"clade"`
	Group Group `json:"group"`

	Diet          Diet     `json:"diet"`
	Size          Size     `json:"size"`
	LengthMeters  *float64 `json:"length_meters"`
	HeightMeters  *float64 `json:"height_meters"`
	WeightKg      *float64 `json:"weight_kg"`
	SkullLengthCm *float64 `json:"skull_length_cm"`

	Locomotion      Locomotion `json:"locomotion"`
	Habitat         Habitat    `json:"habitat"`
	SpecialFeatures []string   `json:"special_features"`

	DiscoveredYear *int           `json:"discovered_year"`
	Discoverer     *string        `json:"discoverer"`
	LocationFound  *string        `json:"location_found"`
	Formation      *string        `json:"formation"`
	FossilQuality  *FossilQuality `json:"fossil_quality"`

	Description      string   `json:"description"`
	InterestingFacts []string `json:"interesting_facts"`

	IsValidSpecies bool     `json:"is_valid_species"`
	Synonyms       []string `json:"synonyms"`
}

// Validate checks the ingestion invariants: required fields present, closed
// enumerations respected, numerics non-negative and the discovery year in
// range. All violations are reported, joined.
func (d *Dinosaur) Validate() error {
	if d == nil {
		return ValidationError("dinosaur", "record is nil")
	}
	var errs []error
	required := func(field, v string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, ValidationError(field, "is required"))
		}
	}
	required("name", d.Name)
	required("species", d.Species)
	required("genus", d.Genus)
	required("description", d.Description)

	enum := func(field string, ok bool, v string) {
		if !ok {
			errs = append(errs, ValidationError(field, fmt.Sprintf("%q is not an allowed value", v)))
		}
	}
	enum("period", d.Period.Valid(), string(d.Period))
	enum("clade", d.Clade.Valid(), string(d.Clade))
	enum("group", d.Group.Valid(), string(d.Group))
	enum("diet", d.Diet.Valid(), string(d.Diet))
	enum("size", d.Size.Valid(), string(d.Size))
	enum("locomotion", d.Locomotion.Valid(), string(d.Locomotion))
	enum("habitat", d.Habitat.Valid(), string(d.Habitat))
	if d.FossilQuality != nil {
		enum("fossil_quality", d.FossilQuality.Valid(), string(*d.FossilQuality))
	}

	nonNegative := func(field string, v *float64) {
		if v != nil && *v < 0 {
			errs = append(errs, ValidationError(field, fmt.Sprintf("must be >= 0, got %v", *v)))
		}
	}
	nonNegative("age_start_mya", d.AgeStartMya)
	nonNegative("age_end_mya", d.AgeEndMya)
	nonNegative("length_meters", d.LengthMeters)
	nonNegative("height_meters", d.HeightMeters)
	nonNegative("weight_kg", d.WeightKg)
	nonNegative("skull_length_cm", d.SkullLengthCm)

	if y := d.DiscoveredYear; y != nil && (*y < MinDiscoveryYear || *y > MaxDiscoveryYear) {
		errs = append(errs, ValidationError("discovered_year",
			fmt.Sprintf("must be within %d..%d, got %d", MinDiscoveryYear, MaxDiscoveryYear, *y)))
	}

	return errors.Join(errs...)
}
