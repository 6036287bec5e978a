package rag

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/ds"
)

// Document is a single passage returned by the knowledge-base capability.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]string
	Score    float64
}

// Searcher is the knowledge-base capability the pipeline retrieves against.
// Implementations must be safe for concurrent use.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]Document, error)
}

// Context is the deduplicated curriculum text gathered for one request.
// It is treated as a bag of passages; only exact-duplicate texts are removed.
type Context struct {
	texts []string
	seen  *ds.Set[string]
}

func NewContext() *Context {
	return &Context{seen: ds.NewSet[string]()}
}

// Add inserts a passage unless an identical text is already present.
func (c *Context) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if c.seen.Contains(text) {
		return
	}
	c.seen.Add(text)
	c.texts = append(c.texts, text)
}

func (c *Context) Empty() bool {
	return c == nil || len(c.texts) == 0
}

func (c *Context) Size() int {
	if c == nil {
		return 0
	}
	return len(c.texts)
}

// Joined returns the passages joined by newlines, truncated to at most
// limit runes. A limit of zero or less disables truncation.
func (c *Context) Joined(limit int) string {
	if c.Empty() {
		return ""
	}
	joined := strings.Join(c.texts, "\n")
	if limit <= 0 {
		return joined
	}
	runes := []rune(joined)
	if len(runes) <= limit {
		return joined
	}
	return string(runes[:limit])
}
