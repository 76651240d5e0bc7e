package catalog

import "github.com/yungbote/dinocatalog-backend/internal/domain"

// Paginate returns the window [skip, skip+limit) of records, clipped to the
// available length. A skip past the end or a limit below one yields an empty
// window; a negative skip counts as zero.
func Paginate(records []*domain.Dinosaur, skip, limit int) []*domain.Dinosaur {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || skip >= len(records) {
		return []*domain.Dinosaur{}
	}
	end := len(records)
	if limit < end-skip {
		end = skip + limit
	}
	out := make([]*domain.Dinosaur, end-skip)
	copy(out, records[skip:end])
	return out
}

// PageNumber is the 1-based page reported alongside a window. It is only
// meaningful when skip is a multiple of limit; callers own that convention.
func PageNumber(skip, limit int) int {
	if limit < 1 {
		return 1
	}
	if skip < 0 {
		skip = 0
	}
	return skip/limit + 1
}
