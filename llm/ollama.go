package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

// Ollama runs prompts against a locally served model. A single model instance
// is shared by every request, so calls into Generate are serialized with a
// mutex; retrieval and extraction stay parallel across requests.
type Ollama struct {
	client *api.Client
	model  string
	mu     sync.Mutex
}

func NewOllama(host, model string) (*Ollama, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host %q: %w", host, err)
	}
	return &Ollama{
		client: api.NewClient(base, http.DefaultClient),
		model:  model,
	}, nil
}

func (o *Ollama) Generate(ctx context.Context, prompt string, cfg Config) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	stream := false
	req := &api.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"num_predict":    cfg.MaxNewTokens,
			"temperature":    cfg.Temperature,
			"top_p":          cfg.TopP,
			"repeat_penalty": cfg.RepetitionPenalty,
		},
	}

	var output string
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		output += resp.Response
		return nil
	})
	if err != nil {
		logger.Error("Model generation failed", zap.String("model", o.model), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	response := StripPromptEcho(output, prompt)
	logger.Info("Raw model response", zap.String("preview", preview(response, 200)))
	return response, nil
}

// Available reports whether the local model server is reachable.
func (o *Ollama) Available(ctx context.Context) bool {
	_, err := o.client.Version(ctx)
	return err == nil
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
