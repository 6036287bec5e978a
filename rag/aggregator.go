package rag

import (
	"context"
	"fmt"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/smartclass-ai/content-gen/model"
	"go.uber.org/zap"
)

// resultsPerQuery is how many hits each diversified query requests.
const resultsPerQuery = 3

// Aggregator widens recall by issuing several phrasings of one request
// against the knowledge base and merging the hits into a single Context.
type Aggregator struct {
	searcher Searcher
}

func NewAggregator(searcher Searcher) *Aggregator {
	return &Aggregator{searcher: searcher}
}

// Aggregate runs every query concurrently, joins all of them, and returns
// the deduplicated curriculum context. Retrieval is an optimization: a nil
// searcher or a failing knowledge base yields an empty context, never an error.
func (a *Aggregator) Aggregate(ctx context.Context, queries []string) *Context {
	out := NewContext()
	if a == nil || a.searcher == nil {
		logger.Log.Warn("Knowledge base not available, skipping retrieval")
		return out
	}

	tasks := make([]<-chan async.Result[[]Document], 0, len(queries))
	for _, query := range queries {
		q := query
		tasks = append(tasks, async.Go(func() ([]Document, error) {
			return a.searcher.Search(ctx, q, resultsPerQuery)
		}))
	}

	retrieved := 0
	for i, task := range tasks {
		docs, err := async.Await(task)
		if err != nil {
			logger.Log.Warn("Curriculum search failed", zap.String("query", queries[i]), zap.Error(err))
			continue
		}
		retrieved += len(docs)
		for _, doc := range docs {
			out.Add(doc.Text)
		}
	}

	if out.Empty() {
		logger.Log.Warn("No curriculum content found", zap.Int("queries", len(queries)))
	} else {
		logger.Info("Retrieved curriculum documents",
			zap.Int("hits", retrieved), zap.Int("distinct", out.Size()))
	}
	return out
}

// ContentQueries builds the diversified phrasings for content generation.
func ContentQueries(req model.ContentRequest) []string {
	return []string{
		fmt.Sprintf("%s %s %s", req.SubjectID, req.TopicID, req.SubtopicID),
		fmt.Sprintf("%s grade %s %s", req.SubjectID, req.GradeID, req.SubtopicID),
		fmt.Sprintf("%s %s curriculum", req.SubtopicID, req.SubjectID),
		fmt.Sprintf("%s %s learning content", req.TopicID, req.SubtopicID),
	}
}

// QuizQueries uses assessment-oriented phrasings to surface testable material.
func QuizQueries(req model.QuizRequest) []string {
	return []string{
		fmt.Sprintf("%s %s %s quiz questions", req.SubjectID, req.TopicID, req.SubtopicID),
		fmt.Sprintf("%s grade %s %s assessment", req.SubjectID, req.GradeID, req.SubtopicID),
		fmt.Sprintf("%s %s learning objectives", req.SubtopicID, req.SubjectID),
	}
}

// TopicQueries uses curriculum-oriented phrasings for topic listing.
func TopicQueries(req model.TopicRequest) []string {
	return []string{
		fmt.Sprintf("%s grade %s topics curriculum", req.SubjectID, req.GradeID),
		fmt.Sprintf("%s %s syllabus content", req.SubjectID, req.GradeID),
		fmt.Sprintf("%s learning objectives %s", req.SubjectID, req.GradeID),
	}
}
