package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/http/response"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

type DinosaurHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewDinosaurHandler(log *logger.Logger, catalog services.CatalogService) *DinosaurHandler {
	return &DinosaurHandler{log: log.With("handler", "DinosaurHandler"), catalog: catalog}
}

// GET /dinosaurs
func (h *DinosaurHandler) List(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	res, err := h.catalog.List(c.Request.Context(), params)
	if err != nil {
		h.log.Warn("list failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /dinosaurs/:id
func (h *DinosaurHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	d, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, d)
}

// GET /dinosaurs/search
func (h *DinosaurHandler) Search(c *gin.Context) {
	q, ok := c.GetQuery("q")
	switch {
	case !ok:
		response.RespondError(c, http.StatusUnprocessableEntity, string(domain.CodeValidation),
			domain.ValidationError("query", "q: field required"))
		return
	case len(q) < 1:
		response.RespondError(c, http.StatusUnprocessableEntity, string(domain.CodeValidation),
			domain.ValidationError("query", "q: must be at least 1 character"))
		return
	}
	hits, err := h.catalog.Search(c.Request.Context(), q)
	if err != nil {
		h.log.Warn("search failed", "error", err)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, hits)
}
