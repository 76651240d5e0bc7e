package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/http/response"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

// ReferenceHandler serves the closed enumerations as plain string arrays.
type ReferenceHandler struct {
	refs services.References
}

func NewReferenceHandler(catalog services.CatalogService) *ReferenceHandler {
	return &ReferenceHandler{refs: catalog.References()}
}

func (h *ReferenceHandler) Periods(c *gin.Context)         { response.RespondOK(c, h.refs.Periods) }
func (h *ReferenceHandler) Clades(c *gin.Context)          { response.RespondOK(c, h.refs.Clades) }
func (h *ReferenceHandler) Groups(c *gin.Context)          { response.RespondOK(c, h.refs.Groups) }
func (h *ReferenceHandler) Diets(c *gin.Context)           { response.RespondOK(c, h.refs.Diets) }
func (h *ReferenceHandler) Sizes(c *gin.Context)           { response.RespondOK(c, h.refs.Sizes) }
func (h *ReferenceHandler) Locomotion(c *gin.Context)      { response.RespondOK(c, h.refs.Locomotion) }
func (h *ReferenceHandler) Habitats(c *gin.Context)        { response.RespondOK(c, h.refs.Habitats) }
func (h *ReferenceHandler) FossilQualities(c *gin.Context) { response.RespondOK(c, h.refs.FossilQualities) }
