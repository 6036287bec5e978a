// Package gen orchestrates one generation request end to end:
// retrieve → compose → invoke → extract → envelope.
package gen

import (
	"context"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/smartclass-ai/content-gen/extract"
	"github.com/smartclass-ai/content-gen/llm"
	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/prompt"
	"github.com/smartclass-ai/content-gen/rag"
	"go.uber.org/zap"
)

// Service is the only component aware of request semantics. Each call is
// request-scoped; the generator and knowledge-base handles are the only
// process-wide resources it touches.
type Service struct {
	aggregator *rag.Aggregator
	generator  llm.Generator
}

func NewService(aggregator *rag.Aggregator, generator llm.Generator) *Service {
	return &Service{aggregator: aggregator, generator: generator}
}

// Content generates content cards for one subtopic. The returned envelope
// always carries at least one card; only model unavailability is an error.
func (s *Service) Content(ctx context.Context, req model.ContentRequest) (model.ContentResponse, error) {
	logger.Info("Generating content",
		zap.String("topic", req.TopicID), zap.String("subtopic", req.SubtopicID))

	curriculum := s.aggregator.Aggregate(ctx, rag.ContentQueries(req))
	raw, err := s.generator.Generate(ctx, prompt.Content(req, curriculum), llm.ContentConfig())
	if err != nil {
		return model.ContentResponse{}, err
	}

	cards := extract.Cards(raw, seedFor(req.SubjectID, req.GradeID, req.TopicID, req.SubtopicID, ""))
	if req.NumCards > 0 && len(cards) > req.NumCards {
		cards = cards[:req.NumCards]
	}

	return model.ContentResponse{
		Success: true,
		Content: cards,
		Metadata: map[string]any{
			"topic_id":    req.TopicID,
			"subtopic_id": req.SubtopicID,
			"grade_id":    req.GradeID,
			"num_cards":   len(cards),
		},
	}, nil
}

// Quiz generates quiz questions for one subtopic.
func (s *Service) Quiz(ctx context.Context, req model.QuizRequest) (model.QuizResponse, error) {
	logger.Info("Generating quiz", zap.String("quizType", req.QuizType),
		zap.String("topic", req.TopicID), zap.String("subtopic", req.SubtopicID))

	curriculum := s.aggregator.Aggregate(ctx, rag.QuizQueries(req))
	raw, err := s.generator.Generate(ctx, prompt.Quiz(req, curriculum), llm.QuizConfig())
	if err != nil {
		return model.QuizResponse{}, err
	}

	questions := extract.Questions(raw, seedFor(req.SubjectID, req.GradeID, req.TopicID, req.SubtopicID, req.QuizType))

	return model.QuizResponse{
		Success:   true,
		Questions: questions,
		QuizType:  req.QuizType,
		Metadata: map[string]any{
			"topic_id":      req.TopicID,
			"subtopic_id":   req.SubtopicID,
			"grade_id":      req.GradeID,
			"num_questions": len(questions),
		},
	}, nil
}

// Topics generates the topic listing for a subject and grade.
func (s *Service) Topics(ctx context.Context, req model.TopicRequest) (model.TopicResponse, error) {
	logger.Info("Generating topics",
		zap.String("subject", req.SubjectID), zap.String("grade", req.GradeID))

	curriculum := s.aggregator.Aggregate(ctx, rag.TopicQueries(req))
	raw, err := s.generator.Generate(ctx, prompt.Topics(req, curriculum), llm.TopicConfig())
	if err != nil {
		return model.TopicResponse{}, err
	}

	topics := extract.Topics(raw, seedFor(req.SubjectID, req.GradeID, "", "", ""))
	if req.NumTopics > 0 && len(topics) > req.NumTopics {
		topics = topics[:req.NumTopics]
	}

	return model.TopicResponse{
		Success: true,
		Topics:  topics,
		Metadata: map[string]any{
			"subject_id": req.SubjectID,
			"grade_id":   req.GradeID,
			"num_topics": len(topics),
		},
	}, nil
}

func seedFor(subject, grade, topic, subtopic, quizType string) extract.Seed {
	return extract.Seed{
		SubjectID:  subject,
		GradeID:    grade,
		TopicID:    topic,
		SubtopicID: subtopic,
		QuizType:   quizType,
	}
}
