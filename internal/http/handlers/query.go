package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/catalog"
	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/domain/taxa"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// queryReader collects every bad parameter instead of stopping at the first.
type queryReader struct {
	c        *gin.Context
	problems []string
}

func (q *queryReader) fail(param, msg string) {
	q.problems = append(q.problems, param+": "+msg)
}

func (q *queryReader) err() error {
	if len(q.problems) == 0 {
		return nil
	}
	return domain.ValidationError("query", strings.Join(q.problems, "; "))
}

func (q *queryReader) intIn(param string, def, min, max int) int {
	raw, ok := q.c.GetQuery(param)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.fail(param, fmt.Sprintf("%q is not a valid integer", raw))
		return def
	}
	if n < min || n > max {
		q.fail(param, fmt.Sprintf("must be within %d..%d, got %d", min, max, n))
		return def
	}
	return n
}

func (q *queryReader) nonNegative(param string) *float64 {
	raw, ok := q.c.GetQuery(param)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		q.fail(param, fmt.Sprintf("%q is not a valid number", raw))
		return nil
	}
	if f < 0 {
		q.fail(param, fmt.Sprintf("must be >= 0, got %v", f))
		return nil
	}
	return &f
}

// label parses an optional enumeration parameter with parse.
func label[T ~string](q *queryReader, param string, parse func(string) (T, error)) *T {
	raw, ok := q.c.GetQuery(param)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		q.fail(param, domain.MessageOf(err))
		return nil
	}
	return &v
}

func parseListParams(c *gin.Context) (services.ListParams, error) {
	q := &queryReader{c: c}
	p := services.ListParams{
		Skip:  q.intIn("skip", 0, 0, math.MaxInt32),
		Limit: q.intIn("limit", DefaultLimit, 1, MaxLimit),
		Criteria: catalog.Criteria{
			Period:        label(q, "period", taxa.ParsePeriod),
			Diet:          label(q, "diet", taxa.ParseDiet),
			Size:          label(q, "size", taxa.ParseSize),
			Clade:         label(q, "clade", taxa.ParseClade),
			Group:         label(q, "group", taxa.ParseGroup),
			Locomotion:    label(q, "locomotion", taxa.ParseLocomotion),
			Habitat:       label(q, "habitat", taxa.ParseHabitat),
			FossilQuality: label(q, "fossil_quality", taxa.ParseFossilQuality),
			MinLength:     q.nonNegative("min_length"),
			MaxLength:     q.nonNegative("max_length"),
			MinAge:        q.nonNegative("min_age"),
			MaxAge:        q.nonNegative("max_age"),
		},
	}
	return p, q.err()
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ValidationError("path", fmt.Sprintf("id: %q is not a valid integer", raw))
	}
	if n == 0 {
		return 0, domain.ValidationError("path", "id: must be greater than 0")
	}
	return uint(n), nil
}
