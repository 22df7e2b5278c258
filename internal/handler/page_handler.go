package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pfdlens/pfdlens/web"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.Data(200, "text/html; charset=utf-8", web.IndexHTML)
}
