package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/pfdlens/pfdlens/internal/graph"
	"github.com/pfdlens/pfdlens/internal/pkg/errcode"
	"github.com/pfdlens/pfdlens/internal/pkg/response"
	"github.com/pfdlens/pfdlens/internal/service"
)

type AnalyzeHandler struct {
	catalog    *service.CatalogService
	extraction *service.ExtractionService
	artifacts  *service.ArtifactService
}

func NewAnalyzeHandler(catalog *service.CatalogService, extraction *service.ExtractionService, artifacts *service.ArtifactService) *AnalyzeHandler {
	return &AnalyzeHandler{catalog: catalog, extraction: extraction, artifacts: artifacts}
}

type analyzeRequest struct {
	Sample string `json:"sample"`
}

// Analyze runs the whole per-click flow: resolve the sample, extract, build
// the graph, persist the artifacts. Every failure between encoding and
// rendering maps to one extraction-failed envelope carrying the cause text;
// no partial output accompanies a failure.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Sample == "" {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	path, err := h.catalog.Resolve(req.Sample)
	if err != nil {
		handleError(c, err)
		return
	}
	result, err := h.extraction.AnalyzeImage(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, service.ErrAIUnavailable) {
			response.Error(c, errcode.ErrAIUnavailable, "ai not configured")
			return
		}
		response.Error(c, errcode.ErrExtractFailed, "extraction failed: "+err.Error())
		return
	}
	net := graph.Build(result)
	html, err := graph.RenderHTML(net)
	if err != nil {
		response.Error(c, errcode.ErrExtractFailed, "extraction failed: "+err.Error())
		return
	}
	payload := gin.H{"result": result, "graph": net}
	// Artifact persistence is a side effect; a storage fault does not void
	// the rendered result.
	artifact, err := h.artifacts.SaveExtraction(c.Request.Context(), result, html)
	if err != nil {
		logutil.GetLogger(c.Request.Context()).Warn("save artifacts failed", zap.Error(err))
	} else {
		base := requestBaseURL(c)
		payload["artifacts"] = gin.H{
			"json_url":  h.artifacts.URL(artifact.JSONKey, base),
			"graph_url": h.artifacts.URL(artifact.GraphKey, base),
		}
	}
	response.Success(c, payload)
}
