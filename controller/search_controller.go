package controller

import (
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/embed"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/smartclass-ai/content-gen/appconfig"
	"github.com/smartclass-ai/content-gen/db"
	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/rag"
	"github.com/smartclass-ai/content-gen/search"
	"go.uber.org/zap"
)

// SearchController exposes the knowledge base for direct curriculum queries.
type SearchController struct {
	curriculum rag.Searcher
}

func NewSearchController(curriculum rag.Searcher) *SearchController {
	return &SearchController{curriculum: curriculum}
}

func ProvideSearchController(mongo odm.MongoClient, embedder embed.Embedder) *SearchController {
	cfg := appconfig.Load()

	chunkRepository := odm.CollectionOf[db.CurriculumChunkModel](mongo, cfg.MongoDatabase)
	vectorRepository := odm.CollectionOf[db.CurriculumAnnModel](mongo, cfg.MongoDatabase)

	return NewSearchController(search.NewCurriculumSearch(chunkRepository, vectorRepository, embedder))
}

// HandleSearch handles POST /search-curriculum.
func (c *SearchController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode search request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, "Query is required", http.StatusBadRequest)
		return
	}
	if req.NResults <= 0 {
		req.NResults = 5
	}

	if c.curriculum == nil {
		http.Error(w, "Knowledge base not available", http.StatusServiceUnavailable)
		return
	}

	docs, err := c.curriculum.Search(r.Context(), req.Query, req.NResults)
	if err != nil {
		logger.Error("Curriculum search failed", zap.String("query", req.Query), zap.Error(err))
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}

	documents := make([]model.CurriculumDocument, 0, len(docs))
	for _, doc := range docs {
		documents = append(documents, model.CurriculumDocument{
			ID:       doc.ID,
			Text:     doc.Text,
			Metadata: doc.Metadata,
			Distance: doc.Score,
		})
	}

	writeJSON(w, model.SearchResponse{
		Success:      true,
		Documents:    documents,
		TotalResults: len(documents),
	})
	logger.Info("Curriculum search processed", zap.String("query", req.Query), zap.Int("results", len(documents)))
}

func (c *SearchController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/search-curriculum",
			Method:  http.MethodPost,
			Handler: c.HandleSearch,
		},
	}
}
