package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pfdlens/pfdlens/internal/middleware"
)

type RouterDeps struct {
	Page      *PageHandler
	Samples   *SampleHandler
	Analyze   *AnalyzeHandler
	Artifacts *ArtifactHandler
	// AnalyzeCooldown is the minimum spacing between analyze calls from one
	// client; zero disables the guard.
	AnalyzeCooldown time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/", deps.Page.Index)
	api.GET("/ui", deps.Page.Index)
	api.GET("/samples", deps.Samples.List)
	api.GET("/samples/:name/image", deps.Samples.Image)
	api.GET("/artifacts/:key", deps.Artifacts.Get)

	analyzeGroup := api.Group("")
	analyzeGroup.Use(middleware.RateLimit(deps.AnalyzeCooldown))
	analyzeGroup.POST("/analyze", deps.Analyze.Analyze)
}
