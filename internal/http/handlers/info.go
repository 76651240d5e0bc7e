package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/catalog"
	"github.com/yungbote/dinocatalog-backend/internal/http/response"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

type APIInfo struct {
	Version     string
	LastUpdated string
}

type rootResponse struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Features    []string          `json:"features"`
	Endpoints   map[string]string `json:"endpoints"`
}

type statsResponse struct {
	DatabaseStats catalog.Summary `json:"database_stats"`
	APIInfo       statsAPIInfo    `json:"api_info"`
}

type statsAPIInfo struct {
	TotalEndpoints int    `json:"total_endpoints"`
	Version        string `json:"version"`
	Type           string `json:"type"`
	LastUpdated    string `json:"last_updated"`
}

var endpoints = map[string]string{
	"get_all_dinosaurs":    "/dinosaurs",
	"get_dinosaur_by_id":   "/dinosaurs/{id}",
	"search_dinosaurs":     "/dinosaurs/search",
	"get_statistics":       "/stats",
	"get_periods":          "/periods",
	"get_clades":           "/clades",
	"get_groups":           "/groups",
	"get_diets":            "/diets",
	"get_sizes":            "/sizes",
	"get_locomotion_types": "/locomotion",
	"get_habitats":         "/habitats",
	"get_fossil_qualities": "/fossil-qualities",
	"health":               "/health",
}

type InfoHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
	info    APIInfo
}

func NewInfoHandler(log *logger.Logger, catalog services.CatalogService, info APIInfo) *InfoHandler {
	return &InfoHandler{log: log.With("handler", "InfoHandler"), catalog: catalog, info: info}
}

// GET /
func (h *InfoHandler) Root(c *gin.Context) {
	response.RespondOK(c, rootResponse{
		Message:     "Welcome to the Comprehensive Dinosaur API!",
		Description: "A scientific read-only API for dinosaur data with detailed taxonomic and paleontological information",
		Version:     h.info.Version,
		Features: []string{
			"Comprehensive taxonomic classification",
			"Detailed physical characteristics",
			"Geological time periods",
			"Discovery and fossil information",
			"Advanced filtering capabilities",
		},
		Endpoints: endpoints,
	})
}

// GET /stats
func (h *InfoHandler) Stats(c *gin.Context) {
	sum, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		h.log.Warn("stats failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, statsResponse{
		DatabaseStats: sum,
		APIInfo: statsAPIInfo{
			TotalEndpoints: len(endpoints),
			Version:        h.info.Version,
			Type:           "Read-only scientific database",
			LastUpdated:    h.info.LastUpdated,
		},
	})
}
