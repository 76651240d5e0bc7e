package services

import (
	"context"
	"fmt"

	"github.com/yungbote/dinocatalog-backend/internal/catalog"
	catalogrepo "github.com/yungbote/dinocatalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/domain/taxa"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

type ListParams struct {
	Skip     int
	Limit    int
	Criteria catalog.Criteria
}

type ListResult struct {
	Dinosaurs []*domain.Dinosaur `json:"dinosaurs"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"per_page"`
}

// References are the closed enumerations, in declaration order.
type References struct {
	Periods         []string `json:"periods"`
	Clades          []string `json:"clades"`
	Groups          []string `json:"groups"`
	Diets           []string `json:"diets"`
	Sizes           []string `json:"sizes"`
	Locomotion      []string `json:"locomotion"`
	Habitats        []string `json:"habitats"`
	FossilQualities []string `json:"fossil_qualities"`
}

type CatalogService interface {
	// List filters the whole catalog, then windows it. Total counts the
	// filtered set before windowing.
	List(ctx context.Context, p ListParams) (ListResult, error)
	Get(ctx context.Context, id uint) (*domain.Dinosaur, error)
	Search(ctx context.Context, query string) ([]*domain.Dinosaur, error)
	Stats(ctx context.Context) (catalog.Summary, error)
	Count(ctx context.Context) (int64, error)
	References() References
}

type catalogService struct {
	store catalogrepo.Store
	log   *logger.Logger
}

func NewCatalogService(baseLog *logger.Logger, store catalogrepo.Store) CatalogService {
	serviceLog := baseLog.With("service", "CatalogService")
	return &catalogService{store: store, log: serviceLog}
}

func (s *catalogService) List(ctx context.Context, p ListParams) (ListResult, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("list dinosaurs: %w", err)
	}
	filtered := catalog.Filter(all, p.Criteria)
	window := catalog.Paginate(filtered, p.Skip, p.Limit)
	s.log.Debug("list", "total", len(all), "matched", len(filtered), "returned", len(window))
	return ListResult{
		Dinosaurs: window,
		Total:     len(filtered),
		Page:      catalog.PageNumber(p.Skip, p.Limit),
		PerPage:   p.Limit,
	}, nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*domain.Dinosaur, error) {
	d, err := s.store.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dinosaur: %w", err)
	}
	return d, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]*domain.Dinosaur, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search dinosaurs: %w", err)
	}
	hits := catalog.Search(all, query)
	s.log.Debug("search", "query", query, "hits", len(hits))
	return hits, nil
}

func (s *catalogService) Stats(ctx context.Context) (catalog.Summary, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return catalog.Summary{}, fmt.Errorf("catalog stats: %w", err)
	}
	return catalog.Summarize(all), nil
}

func (s *catalogService) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count dinosaurs: %w", err)
	}
	return n, nil
}

func (s *catalogService) References() References {
	return References{
		Periods:         taxa.Labels(taxa.Periods()),
		Clades:          taxa.Labels(taxa.Clades()),
		Groups:          taxa.Labels(taxa.Groups()),
		Diets:           taxa.Labels(taxa.Diets()),
		Sizes:           taxa.Labels(taxa.Sizes()),
		Locomotion:      taxa.Labels(taxa.Locomotions()),
		Habitats:        taxa.Labels(taxa.Habitats()),
		FossilQualities: taxa.Labels(taxa.FossilQualities()),
	}
}
