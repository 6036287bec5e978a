package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartclass-ai/content-gen/gen"
	"github.com/smartclass-ai/content-gen/llm"
	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	output string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, cfg llm.Config) (string, error) {
	return f.output, f.err
}

func testController(generator llm.Generator) *GenerationController {
	return NewGenerationController(gen.NewService(rag.NewAggregator(nil), generator))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleGenerateContent_Success(t *testing.T) {
	c := testController(&fakeGenerator{output: `[{"title":"Counting","body":"<p>1 2 3</p>"}]`})

	rr := postJSON(t, c.HandleGenerateContent, "/generate-content",
		`{"topic_id":"numbers","subtopic_id":"counting","subject_id":"mathematics","grade_id":"1"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp model.ContentResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Counting", resp.Content[0].Title)
}

func TestHandleGenerateContent_MissingIdentifiers(t *testing.T) {
	c := testController(&fakeGenerator{})

	rr := postJSON(t, c.HandleGenerateContent, "/generate-content",
		`{"topic_id":"numbers"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGenerateContent_BadPayload(t *testing.T) {
	c := testController(&fakeGenerator{})

	rr := postJSON(t, c.HandleGenerateContent, "/generate-content", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGenerateContent_ModelUnavailable(t *testing.T) {
	c := testController(&fakeGenerator{err: fmt.Errorf("%w: not loaded", llm.ErrUnavailable)})

	rr := postJSON(t, c.HandleGenerateContent, "/generate-content",
		`{"topic_id":"numbers","subtopic_id":"counting","subject_id":"mathematics","grade_id":"1"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHandleGenerateQuiz_InvalidQuizType(t *testing.T) {
	c := testController(&fakeGenerator{})

	rr := postJSON(t, c.HandleGenerateQuiz, "/generate-quiz",
		`{"topic_id":"numbers","subtopic_id":"counting","subject_id":"mathematics","grade_id":"1","quiz_type":"weekly"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleGenerateQuiz_SeedsOnGarbageOutput(t *testing.T) {
	c := testController(&fakeGenerator{output: "no json at all"})

	rr := postJSON(t, c.HandleGenerateQuiz, "/generate-quiz",
		`{"topic_id":"numbers","subtopic_id":"counting","subject_id":"mathematics","grade_id":"1","quiz_type":"final"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp model.QuizResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Questions)
	assert.Equal(t, "final", resp.QuizType)
}

func TestHandleGenerateTopics_DefaultsApplied(t *testing.T) {
	var topics []string
	for i := 0; i < 7; i++ {
		topics = append(topics, fmt.Sprintf(`{"topic_id":"t%d","title":"T%d","description":"d","level":%d}`, i, i, i+1))
	}
	c := testController(&fakeGenerator{output: "[" + strings.Join(topics, ",") + "]"})

	rr := postJSON(t, c.HandleGenerateTopics, "/generate-topics",
		`{"subject_id":"science","grade_id":"3"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp model.TopicResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	// num_topics defaulted to 5
	assert.Len(t, resp.Topics, 5)
}

func TestRoutes_Registered(t *testing.T) {
	c := testController(&fakeGenerator{})

	patterns := make([]string, 0)
	for _, route := range c.Routes() {
		patterns = append(patterns, route.Pattern)
	}
	assert.ElementsMatch(t, []string{"/generate-content", "/generate-quiz", "/generate-topics"}, patterns)
}
