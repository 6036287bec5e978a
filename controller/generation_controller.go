package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/embed"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/smartclass-ai/content-gen/appconfig"
	"github.com/smartclass-ai/content-gen/db"
	"github.com/smartclass-ai/content-gen/gen"
	"github.com/smartclass-ai/content-gen/llm"
	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/rag"
	"github.com/smartclass-ai/content-gen/search"
	"go.uber.org/zap"
)

// GenerationController handles the content, quiz and topic generation endpoints.
type GenerationController struct {
	service *gen.Service
}

func NewGenerationController(service *gen.Service) *GenerationController {
	return &GenerationController{service: service}
}

// ProvideGenerationController wires the full synthesis pipeline: Mongo-backed
// hybrid curriculum search feeding the aggregator, and the local Ollama model
// as the generator.
func ProvideGenerationController(mongo odm.MongoClient, embedder embed.Embedder) *GenerationController {
	cfg := appconfig.Load()

	chunkRepository := odm.CollectionOf[db.CurriculumChunkModel](mongo, cfg.MongoDatabase)
	vectorRepository := odm.CollectionOf[db.CurriculumAnnModel](mongo, cfg.MongoDatabase)
	curriculum := search.NewCurriculumSearch(chunkRepository, vectorRepository, embedder)

	generator, err := llm.NewOllama(cfg.OllamaHost, cfg.OllamaModel)
	if err != nil {
		logger.Fatal("Failed to create model client", zap.Error(err))
	}

	return NewGenerationController(gen.NewService(rag.NewAggregator(curriculum), generator))
}

// HandleGenerateContent handles POST /generate-content.
func (c *GenerationController) HandleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req model.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode content request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.TopicID == "" || req.SubtopicID == "" || req.SubjectID == "" || req.GradeID == "" {
		http.Error(w, "topic_id, subtopic_id, subject_id and grade_id are required", http.StatusBadRequest)
		return
	}
	if req.UserLevel <= 0 {
		req.UserLevel = 1
	}
	if req.NumCards <= 0 {
		req.NumCards = 5
	}

	response, err := c.service.Content(r.Context(), req)
	if err != nil {
		writeGenerationError(w, "Content generation failed", err)
		return
	}
	writeJSON(w, response)
}

// HandleGenerateQuiz handles POST /generate-quiz.
func (c *GenerationController) HandleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req model.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode quiz request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.TopicID == "" || req.SubtopicID == "" || req.SubjectID == "" || req.GradeID == "" {
		http.Error(w, "topic_id, subtopic_id, subject_id and grade_id are required", http.StatusBadRequest)
		return
	}
	if req.QuizType != "mid" && req.QuizType != "final" {
		http.Error(w, `quiz_type must be "mid" or "final"`, http.StatusBadRequest)
		return
	}
	if req.Difficulty <= 0 {
		req.Difficulty = 1
	}

	response, err := c.service.Quiz(r.Context(), req)
	if err != nil {
		writeGenerationError(w, "Quiz generation failed", err)
		return
	}
	writeJSON(w, response)
}

// HandleGenerateTopics handles POST /generate-topics.
func (c *GenerationController) HandleGenerateTopics(w http.ResponseWriter, r *http.Request) {
	var req model.TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("Failed to decode topics request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.SubjectID == "" || req.GradeID == "" {
		http.Error(w, "subject_id and grade_id are required", http.StatusBadRequest)
		return
	}
	if req.NumTopics <= 0 {
		req.NumTopics = 5
	}

	response, err := c.service.Topics(r.Context(), req)
	if err != nil {
		writeGenerationError(w, "Topic generation failed", err)
		return
	}
	writeJSON(w, response)
}

// Only model unavailability reaches here; extraction absorbs everything else.
func writeGenerationError(w http.ResponseWriter, msg string, err error) {
	logger.Error(msg, zap.Error(err))
	if errors.Is(err, llm.ErrUnavailable) {
		http.Error(w, "Model not loaded", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, msg, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
		// Can't call http.Error here as headers are already written
	}
}

func (c *GenerationController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/generate-content",
			Method:  http.MethodPost,
			Handler: c.HandleGenerateContent,
		},
		{
			Pattern: "/generate-quiz",
			Method:  http.MethodPost,
			Handler: c.HandleGenerateQuiz,
		},
		{
			Pattern: "/generate-topics",
			Method:  http.MethodPost,
			Handler: c.HandleGenerateTopics,
		},
	}
}
