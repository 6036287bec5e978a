package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned when the model capability itself cannot execute.
// It is the only failure class that crosses the pipeline boundary; malformed
// output is never an invoker error.
var ErrUnavailable = errors.New("generation model unavailable")

// Config carries the decoding parameters for one generation call.
type Config struct {
	MaxNewTokens      int
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64
}

// ContentConfig favors elaboration for lesson-card generation.
func ContentConfig() Config {
	return Config{MaxNewTokens: 512, Temperature: 0.7, TopP: 0.9, RepetitionPenalty: 1.1}
}

// QuizConfig favors deterministic, JSON-shaped output.
func QuizConfig() Config {
	return Config{MaxNewTokens: 384, Temperature: 0.3, TopP: 0.8, RepetitionPenalty: 1.1}
}

// TopicConfig favors deterministic, JSON-shaped output.
func TopicConfig() Config {
	return Config{MaxNewTokens: 384, Temperature: 0.3, TopP: 0.8, RepetitionPenalty: 1.1}
}

// Generator is the generative-model capability.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg Config) (string, error)
}

// StripPromptEcho removes an echoed prompt prefix from decoded model output.
// Completion-style models echo the prompt verbatim; when sampling mangles the
// echo this is a best-effort cut and residual prompt text may remain, which the
// extractor tolerates by scanning for JSON markers.
func StripPromptEcho(output, prompt string) string {
	if rest, ok := strings.CutPrefix(output, prompt); ok {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(output)
}
