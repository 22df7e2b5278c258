package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pfdlens/pfdlens/internal/pkg/response"
	"github.com/pfdlens/pfdlens/internal/service"
)

type SampleHandler struct {
	catalog *service.CatalogService
}

func NewSampleHandler(catalog *service.CatalogService) *SampleHandler {
	return &SampleHandler{catalog: catalog}
}

func (h *SampleHandler) List(c *gin.Context) {
	response.Success(c, gin.H{"items": h.catalog.List()})
}

func (h *SampleHandler) Image(c *gin.Context) {
	name := c.Param("name")
	data, mime, err := h.catalog.ReadImage(name)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(200, mime, data)
}
