package rag

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]Document
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string, k int) ([]Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func TestAggregate_DeduplicatesByText(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]Document{
		"q1": {{ID: "a", Text: "counting basics"}, {ID: "b", Text: "number line"}},
		"q2": {{ID: "c", Text: "counting basics"}, {ID: "d", Text: "skip counting"}},
	}}

	ctx := NewAggregator(searcher).Aggregate(context.Background(), []string{"q1", "q2"})

	assert.Equal(t, 3, ctx.Size())
	joined := ctx.Joined(0)
	assert.Equal(t, 1, strings.Count(joined, "counting basics"))
}

func TestAggregate_AllQueriesIssued(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]Document{}}
	queries := []string{"q1", "q2", "q3"}

	NewAggregator(searcher).Aggregate(context.Background(), queries)

	assert.ElementsMatch(t, queries, searcher.queries)
}

func TestAggregate_SearchFailureYieldsEmptyContext(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("knowledge base down")}

	ctx := NewAggregator(searcher).Aggregate(context.Background(), []string{"q1", "q2"})

	assert.True(t, ctx.Empty())
}

func TestAggregate_NilSearcherYieldsEmptyContext(t *testing.T) {
	ctx := NewAggregator(nil).Aggregate(context.Background(), []string{"q1"})

	assert.True(t, ctx.Empty())
}

func TestContext_SkipsBlankAndDuplicateTexts(t *testing.T) {
	c := NewContext()
	c.Add("  ")
	c.Add("alpha")
	c.Add("alpha")
	c.Add("beta")

	assert.Equal(t, 2, c.Size())
}

func TestContext_JoinedTruncatesByRunes(t *testing.T) {
	c := NewContext()
	c.Add(strings.Repeat("ü", 20))

	assert.Equal(t, 10, len([]rune(c.Joined(10))))
	assert.Equal(t, 20, len([]rune(c.Joined(0))))
}

func TestQueryBuilders(t *testing.T) {
	content := ContentQueries(contentRequest())
	require.Len(t, content, 4)
	assert.Equal(t, "mathematics numbers counting", content[0])

	quiz := QuizQueries(quizRequest())
	require.Len(t, quiz, 3)
	assert.Contains(t, quiz[0], "quiz questions")
	assert.Contains(t, quiz[1], "assessment")

	topics := TopicQueries(topicRequest())
	require.Len(t, topics, 3)
	assert.Contains(t, topics[0], "topics curriculum")
}
