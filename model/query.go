package model

// SearchRequest represents a direct curriculum knowledge-base query
type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	NResults int    `json:"n_results"` // Results to return, defaults to 5
}

// CurriculumDocument represents a single retrieved syllabus passage
type CurriculumDocument struct {
	ID       string            `json:"id"`                 // Chunk identifier
	Text     string            `json:"text"`               // The actual passage content
	Metadata map[string]string `json:"metadata"`           // Subject/grade/topic tags
	Distance float64           `json:"distance,omitempty"` // Fused relevance score
}

// SearchResponse represents the response for direct curriculum searches
type SearchResponse struct {
	Success      bool                 `json:"success"`
	Documents    []CurriculumDocument `json:"documents"`
	TotalResults int                  `json:"total_results"`
}
