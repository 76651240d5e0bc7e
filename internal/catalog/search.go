package catalog

import (
	"strings"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

// Search returns records where query occurs, case-insensitively, in the
// name, species, genus, description or any interesting fact. Order is
// preserved and no pagination is applied. An empty query matches everything;
// minimum query length is enforced by callers.
func Search(records []*domain.Dinosaur, query string) []*domain.Dinosaur {
	q := strings.ToLower(query)
	out := make([]*domain.Dinosaur, 0, len(records))
	for _, d := range records {
		if d != nil && matches(d, q) {
			out = append(out, d)
		}
	}
	return out
}

func matches(d *domain.Dinosaur, q string) bool {
	for _, field := range []string{d.Name, d.Species, d.Genus, d.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, fact := range d.InterestingFacts {
		if strings.Contains(strings.ToLower(fact), q) {
			return true
		}
	}
	return false
}
