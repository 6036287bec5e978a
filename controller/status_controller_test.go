package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartclass-ai/content-gen/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct{ up bool }

func (f *fakeModel) Available(ctx context.Context) bool { return f.up }

type fakeCurriculum struct {
	docs    []rag.Document
	sources []string
	err     error
}

func (f *fakeCurriculum) Search(ctx context.Context, query string, k int) ([]rag.Document, error) {
	return f.docs, f.err
}

func (f *fakeCurriculum) Sources(ctx context.Context) ([]string, error) {
	return f.sources, f.err
}

func getPath(handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleHealth(t *testing.T) {
	c := NewStatusController("llama3.2-1b-syllabus", &fakeModel{up: true}, &fakeCurriculum{})

	rr := getPath(c.HandleHealth, "/health")

	require.Equal(t, http.StatusOK, rr.Code)
	var out map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, "healthy", out["status"])
	assert.Equal(t, true, out["model_loaded"])
}

func TestHandleHealth_ModelDown(t *testing.T) {
	c := NewStatusController("llama3.2-1b-syllabus", &fakeModel{up: false}, &fakeCurriculum{})

	rr := getPath(c.HandleHealth, "/health")

	var out map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, "degraded", out["status"])
	assert.Equal(t, false, out["model_loaded"])
}

func TestHandleSystemStatus(t *testing.T) {
	c := NewStatusController("llama3.2-1b-syllabus", &fakeModel{up: true},
		&fakeCurriculum{sources: []string{"syllabus-v1.pdf", "syllabus-v2.pdf"}})

	rr := getPath(c.HandleSystemStatus, "/system-status")

	require.Equal(t, http.StatusOK, rr.Code)
	var out struct {
		AIService struct {
			Status string `json:"status"`
		} `json:"ai_service"`
		KnowledgeBase struct {
			Available   bool `json:"available"`
			SourceCount int  `json:"source_count"`
		} `json:"knowledge_base"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, "healthy", out.AIService.Status)
	assert.True(t, out.KnowledgeBase.Available)
	assert.Equal(t, 2, out.KnowledgeBase.SourceCount)
}

func TestHandleSystemStatus_KnowledgeBaseDown(t *testing.T) {
	c := NewStatusController("llama3.2-1b-syllabus", &fakeModel{up: true},
		&fakeCurriculum{err: errors.New("mongo down")})

	rr := getPath(c.HandleSystemStatus, "/system-status")

	var out struct {
		KnowledgeBase struct {
			Available bool `json:"available"`
		} `json:"knowledge_base"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.False(t, out.KnowledgeBase.Available)
}

func TestHandleListSources(t *testing.T) {
	c := NewStatusController("m", &fakeModel{up: true},
		&fakeCurriculum{sources: []string{"syllabus-v1.pdf"}})

	rr := getPath(c.HandleListSources, "/metadata/sources")

	require.Equal(t, http.StatusOK, rr.Code)
	var out map[string][]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	assert.Equal(t, []string{"syllabus-v1.pdf"}, out["sources"])
}
