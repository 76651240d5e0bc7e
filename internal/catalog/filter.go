package catalog

import "github.com/yungbote/dinocatalog-backend/internal/domain"

// Criteria is a conjunctive filter. Nil fields impose no constraint; the zero
// value matches every record.
type Criteria struct {
	Period        *domain.Period
	Diet          *domain.Diet
	Size          *domain.Size
	Clade         *domain.Clade
	Group         *domain.Group
	Locomotion    *domain.Locomotion
	Habitat       *domain.Habitat
	FossilQuality *domain.FossilQuality

	MinLength *float64
	MaxLength *float64
	MinAge    *float64
	MaxAge    *float64
}

// Predicate reports whether a record passes one criterion.
type Predicate func(d *domain.Dinosaur) bool

// Predicates returns one predicate per present criterion, in a fixed order.
func (c Criteria) Predicates() []Predicate {
	var out []Predicate
	if c.Period != nil {
		want := *c.Period
		out = append(out, func(d *domain.Dinosaur) bool { return d.Period == want })
	}
	if c.Diet != nil {
		want := *c.Diet
		out = append(out, func(d *domain.Dinosaur) bool { return d.Diet == want })
	}
	if c.Size != nil {
		want := *c.Size
		out = append(out, func(d *domain.Dinosaur) bool { return d.Size == want })
	}
	if c.Clade != nil {
		want := *c.Clade
		out = append(out, func(d *domain.Dinosaur) bool { return d.Clade == want })
	}
	if c.Group != nil {
		want := *c.Group
		out = append(out, func(d *domain.Dinosaur) bool { return d.Group == want })
	}
	if c.Locomotion != nil {
		want := *c.Locomotion
		out = append(out, func(d *domain.Dinosaur) bool { return d.Locomotion == want })
	}
	if c.Habitat != nil {
		want := *c.Habitat
		out = append(out, func(d *domain.Dinosaur) bool { return d.Habitat == want })
	}
	if c.FossilQuality != nil {
		want := *c.FossilQuality
		out = append(out, func(d *domain.Dinosaur) bool {
			return d.FossilQuality != nil && *d.FossilQuality == want
		})
	}
	if c.MinLength != nil {
		out = append(out, atLeast(*c.MinLength, func(d *domain.Dinosaur) *float64 { return d.LengthMeters }))
	}
	if c.MaxLength != nil {
		out = append(out, atMost(*c.MaxLength, func(d *domain.Dinosaur) *float64 { return d.LengthMeters }))
	}
	if c.MinAge != nil {
		out = append(out, atLeast(*c.MinAge, func(d *domain.Dinosaur) *float64 { return d.AgeEndMya }))
	}
	if c.MaxAge != nil {
		out = append(out, atMost(*c.MaxAge, func(d *domain.Dinosaur) *float64 { return d.AgeStartMya }))
	}
	return out
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool { return c == Criteria{} }

// Matches reports whether d satisfies every present criterion.
func (c Criteria) Matches(d *domain.Dinosaur) bool {
	return all(c.Predicates())(d)
}

// Filter returns the records satisfying every present criterion, in input
// order. The result never aliases the input slice.
func Filter(records []*domain.Dinosaur, c Criteria) []*domain.Dinosaur {
	keep := all(c.Predicates())
	out := make([]*domain.Dinosaur, 0, len(records))
	for _, d := range records {
		if d != nil && keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func all(preds []Predicate) Predicate {
	return func(d *domain.Dinosaur) bool {
		for _, p := range preds {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

// Unknown values never satisfy a bound.
func atLeast(bound float64, field func(*domain.Dinosaur) *float64) Predicate {
	return func(d *domain.Dinosaur) bool {
		v := field(d)
		return v != nil && *v >= bound
	}
}

func atMost(bound float64, field func(*domain.Dinosaur) *float64) Predicate {
	return func(d *domain.Dinosaur) bool {
		v := field(d)
		return v != nil && *v <= bound
	}
}
