package controller

import (
	"context"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/embed"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/smartclass-ai/content-gen/appconfig"
	"github.com/smartclass-ai/content-gen/db"
	"github.com/smartclass-ai/content-gen/llm"
	"github.com/smartclass-ai/content-gen/middleware"
	"github.com/smartclass-ai/content-gen/search"
	"go.uber.org/zap"
)

// modelChecker reports whether the local model server is reachable.
type modelChecker interface {
	Available(ctx context.Context) bool
}

// sourceLister lists distinct syllabus sources in the knowledge base.
type sourceLister interface {
	Sources(ctx context.Context) ([]string, error)
}

// StatusController serves the informational health and status surfaces.
type StatusController struct {
	modelName  string
	generator  modelChecker
	curriculum sourceLister
}

func NewStatusController(modelName string, generator modelChecker, curriculum sourceLister) *StatusController {
	return &StatusController{modelName: modelName, generator: generator, curriculum: curriculum}
}

func ProvideStatusController(mongo odm.MongoClient, embedder embed.Embedder) *StatusController {
	cfg := appconfig.Load()

	chunkRepository := odm.CollectionOf[db.CurriculumChunkModel](mongo, cfg.MongoDatabase)
	vectorRepository := odm.CollectionOf[db.CurriculumAnnModel](mongo, cfg.MongoDatabase)
	curriculum := search.NewCurriculumSearch(chunkRepository, vectorRepository, embedder)

	generator, err := llm.NewOllama(cfg.OllamaHost, cfg.OllamaModel)
	if err != nil {
		logger.Fatal("Failed to create model client", zap.Error(err))
	}

	return NewStatusController(cfg.OllamaModel, generator, curriculum)
}

// HandleRoot handles GET /.
func (c *StatusController) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"message": "SmartClass Content Generation Service",
		"status":  "running",
		"model":   c.modelName,
		"version": "1.0.0",
	})
}

// HandleHealth handles GET /health.
func (c *StatusController) HandleHealth(w http.ResponseWriter, r *http.Request) {
	modelLoaded := c.generator != nil && c.generator.Available(r.Context())
	status := "healthy"
	if !modelLoaded {
		status = "degraded"
	}
	writeJSON(w, map[string]any{
		"status":       status,
		"model_loaded": modelLoaded,
		"model":        c.modelName,
	})
}

// HandleSystemStatus handles GET /system-status.
func (c *StatusController) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	modelLoaded := c.generator != nil && c.generator.Available(ctx)
	aiStatus := map[string]any{
		"status":       statusWord(modelLoaded),
		"model_loaded": modelLoaded,
		"model":        c.modelName,
	}

	kbStatus := map[string]any{"available": false, "source_count": 0}
	if c.curriculum != nil {
		if sources, err := c.curriculum.Sources(ctx); err == nil {
			kbStatus["available"] = true
			kbStatus["source_count"] = len(sources)
		} else {
			logger.Error("Failed to read knowledge base status", zap.Error(err))
		}
	}

	writeJSON(w, map[string]any{
		"ai_service":     aiStatus,
		"knowledge_base": kbStatus,
	})
}

// HandleListSources handles GET /metadata/sources.
func (c *StatusController) HandleListSources(w http.ResponseWriter, r *http.Request) {
	if c.curriculum == nil {
		http.Error(w, "Knowledge base not available", http.StatusServiceUnavailable)
		return
	}
	sources, err := c.curriculum.Sources(r.Context())
	if err != nil {
		logger.Error("Failed to fetch sources", zap.Error(err))
		http.Error(w, "Failed to fetch sources", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string][]string{"sources": sources})
}

func statusWord(ok bool) string {
	if ok {
		return "healthy"
	}
	return "unavailable"
}

func (c *StatusController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/",
			Method:  http.MethodGet,
			Handler: c.HandleRoot,
		},
		{
			Pattern: "/health",
			Method:  http.MethodGet,
			Handler: c.HandleHealth,
		},
		{
			Pattern: "/system-status",
			Method:  http.MethodGet,
			Handler: c.HandleSystemStatus,
		},
		{
			Pattern: "/metadata/sources",
			Method:  http.MethodGet,
			Handler: middleware.APIKeyAuthMiddleware(c.HandleListSources),
		},
	}
}
