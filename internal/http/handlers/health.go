package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/http/response"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

type HealthHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
	now     func() time.Time
}

func NewHealthHandler(log *logger.Logger, catalog services.CatalogService) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), catalog: catalog, now: time.Now}
}

type healthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	DatabaseStatus string `json:"database_status"`
	TotalDinosaurs int64  `json:"total_dinosaurs"`
}

// HealthCheck is the liveness probe; it never touches the store.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Health reports store reachability and size.
func (h *HealthHandler) Health(c *gin.Context) {
	res := healthResponse{
		Status:         "healthy",
		Timestamp:      h.now().UTC().Format(time.DateOnly),
		DatabaseStatus: "connected",
	}
	n, err := h.catalog.Count(c.Request.Context())
	if err != nil {
		h.log.Warn("health check failed", "error", err)
		res.Status = "unhealthy"
		res.DatabaseStatus = "disconnected"
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			res.DatabaseStatus = "error"
		}
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}
	res.TotalDinosaurs = n
	response.RespondOK(c, res)
}
