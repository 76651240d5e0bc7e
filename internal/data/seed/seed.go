// Package seed holds the catalog's initial dataset and decodes it into
// validated domain records.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/domain/taxa"
)

//go:embed catalog.yaml
var catalogYAML []byte

// record mirrors one YAML entry. Categorical fields stay raw strings so an
// unknown label fails here, at the ingestion boundary, with the field name.
type record struct {
	Name             string   `yaml:"name"`
	Species          string   `yaml:"species"`
	Genus            string   `yaml:"genus"`
	Period           string   `yaml:"period"`
	AgeStartMya      *float64 `yaml:"age_start_mya"`
	AgeEndMya        *float64 `yaml:"age_end_mya"`
	Clade            string   `yaml:"clade"`
	Group            string   `yaml:"group"`
	Diet             string   `yaml:"diet"`
	Size             string   `yaml:"size"`
	LengthMeters     *float64 `yaml:"length_meters"`
	HeightMeters     *float64 `yaml:"height_meters"`
	WeightKg         *float64 `yaml:"weight_kg"`
	SkullLengthCm    *float64 `yaml:"skull_length_cm"`
	Locomotion       string   `yaml:"locomotion"`
	Habitat          string   `yaml:"habitat"`
	SpecialFeatures  []string `yaml:"special_features"`
	DiscoveredYear   *int     `yaml:"discovered_year"`
	Discoverer       *string  `yaml:"discoverer"`
	LocationFound    *string  `yaml:"location_found"`
	Formation        *string  `yaml:"formation"`
	FossilQuality    *string  `yaml:"fossil_quality"`
	Description      string   `yaml:"description"`
	InterestingFacts []string `yaml:"interesting_facts"`
	IsValidSpecies   *bool    `yaml:"is_valid_species"`
	Synonyms         []string `yaml:"synonyms"`
}

// Load decodes the embedded catalog.
func Load() ([]*domain.Dinosaur, error) {
	return Parse(bytes.NewReader(catalogYAML))
}

// Parse decodes a YAML sequence of records. Unknown keys, unknown labels and
// records failing Validate are rejected; errors match domain.ErrValidation
// and name the zero-based record index. Returned records carry no ids.
func Parse(r io.Reader) ([]*domain.Dinosaur, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw []record
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []*domain.Dinosaur{}, nil
		}
		return nil, errors.Join(domain.ErrValidation, fmt.Errorf("seed: decode: %w", err))
	}

	out := make([]*domain.Dinosaur, 0, len(raw))
	for i, rec := range raw {
		d, err := rec.toDomain()
		if err == nil {
			err = d.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("seed: record %d (%q): %w", i, rec.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (r record) toDomain() (*domain.Dinosaur, error) {
	var errs []error
	parse := func(fn func() error) {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}

	d := &domain.Dinosaur{
		Name:             r.Name,
		Species:          r.Species,
		Genus:            r.Genus,
		AgeStartMya:      r.AgeStartMya,
		AgeEndMya:        r.AgeEndMya,
		LengthMeters:     r.LengthMeters,
		HeightMeters:     r.HeightMeters,
		WeightKg:         r.WeightKg,
		SkullLengthCm:    r.SkullLengthCm,
		SpecialFeatures:  orEmpty(r.SpecialFeatures),
		DiscoveredYear:   r.DiscoveredYear,
		Discoverer:       r.Discoverer,
		LocationFound:    r.LocationFound,
		Formation:        r.Formation,
		Description:      r.Description,
		InterestingFacts: orEmpty(r.InterestingFacts),
		IsValidSpecies:   true,
		Synonyms:         orEmpty(r.Synonyms),
	}
	if r.IsValidSpecies != nil {
		d.IsValidSpecies = *r.IsValidSpecies
	}

	parse(func() (err error) { d.Period, err = taxa.ParsePeriod(r.Period); return })
	parse(func() (err error) { d.Clade, err = taxa.ParseClade(r.Clade); return })
	parse(func() (err error) { d.Group, err = taxa.ParseGroup(r.Group); return })
	parse(func() (err error) { d.Diet, err = taxa.ParseDiet(r.Diet); return })
	parse(func() (err error) { d.Size, err = taxa.ParseSize(r.Size); return })
	parse(func() (err error) { d.Locomotion, err = taxa.ParseLocomotion(r.Locomotion); return })
	parse(func() (err error) { d.Habitat, err = taxa.ParseHabitat(r.Habitat); return })
	if r.FossilQuality != nil {
		parse(func() error {
			q, err := taxa.ParseFossilQuality(*r.FossilQuality)
			if err == nil {
				d.FossilQuality = &q
			}
			return err
		})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return d, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
