package catalog

import "github.com/yungbote/dinocatalog-backend/internal/domain"

// Summary aggregates a record set. Means are taken over records where the
// field is known; with no known values the mean is 0.
type Summary struct {
	Total         int            `json:"total_dinosaurs"`
	Periods       map[string]int `json:"periods"`
	Diets         map[string]int `json:"diets"`
	Sizes         map[string]int `json:"sizes"`
	AverageLength float64        `json:"average_length"`
	AverageWeight float64        `json:"average_weight"`
}

// Summarize counts records per period, diet and size and averages length
// and weight over the records that carry them.
func Summarize(records []*domain.Dinosaur) Summary {
	s := Summary{
		Periods: map[string]int{},
		Diets:   map[string]int{},
		Sizes:   map[string]int{},
	}
	var length, weight mean
	for _, d := range records {
		if d == nil {
			continue
		}
		s.Total++
		s.Periods[string(d.Period)]++
		s.Diets[string(d.Diet)]++
		s.Sizes[string(d.Size)]++
		length.add(d.LengthMeters)
		weight.add(d.WeightKg)
	}
	s.AverageLength = length.value()
	s.AverageWeight = weight.value()
	return s
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}
