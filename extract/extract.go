// Package extract converts free-form model output into schema-valid records.
//
// Extraction is a deterministic cascade; each stage runs only when the prior
// one yielded nothing usable:
//
//  1. whole-array parse between the first '[' and the last ']'
//  2. brace-matching scan for standalone JSON objects
//  3. plain-text heuristic (content cards only)
//  4. deterministic seed records built from the request identifiers
//
// Stage 4 never fails, so every Cards/Questions/Topics call returns at least
// one record. Parse failures are logged and absorbed, never raised.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/smartclass-ai/content-gen/model"
	"go.uber.org/zap"
)

// Seed identifies the request so last-resort records stay deterministic.
type Seed struct {
	SubjectID  string
	GradeID    string
	TopicID    string
	SubtopicID string
	QuizType   string
}

// Cards extracts content cards from raw model output. Never returns empty.
func Cards(raw string, seed Seed) []model.ContentCard {
	candidates := arrayCandidates(raw)
	if len(candidates) == 0 {
		candidates = objectCandidates(raw, "title", "body")
	}
	if len(candidates) == 0 {
		candidates = textCandidates(raw, seed)
	}

	cards := make([]model.ContentCard, 0, len(candidates))
	for _, m := range candidates {
		if card, ok := repairCard(m, len(cards)); ok {
			cards = append(cards, card)
		}
	}
	if len(cards) == 0 {
		cards = seedCards(seed)
	}
	return cards
}

// Questions extracts quiz questions from raw model output. Never returns empty.
func Questions(raw string, seed Seed) []model.QuizQuestion {
	candidates := arrayCandidates(raw)
	if len(candidates) == 0 {
		candidates = objectCandidates(raw, "question", "question_type")
	}

	questions := make([]model.QuizQuestion, 0, len(candidates))
	for _, m := range candidates {
		if q, ok := repairQuestion(m, seed); ok {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		logger.Log.Warn("No quiz recovered from model output, using seed questions",
			zap.String("quizType", seed.QuizType))
		questions = seedQuestions(seed)
	}
	return questions
}

// Topics extracts topic descriptions from raw model output. Never returns empty.
func Topics(raw string, seed Seed) []model.TopicDescription {
	candidates := arrayCandidates(raw)
	if len(candidates) == 0 {
		candidates = objectCandidates(raw, "title", "description")
	}

	topics := make([]model.TopicDescription, 0, len(candidates))
	for _, m := range candidates {
		if t, ok := repairTopic(m, len(topics)); ok {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		logger.Log.Warn("No topics recovered from model output, using seed topics",
			zap.String("subject", seed.SubjectID))
		topics = seedTopics(seed)
	}
	return topics
}

// arrayCandidates parses the substring between the first '[' and the last ']'
// as a JSON array and keeps its object elements.
func arrayCandidates(raw string) []map[string]any {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil
	}

	var arr []any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &arr); err != nil {
		logger.Log.Warn("Failed to parse extracted JSON array", zap.Error(err))
		return nil
	}

	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// objectCandidates scans for balanced brace-delimited substrings and keeps
// those that parse and carry the variant's discriminating fields. Candidates
// stay in left-to-right discovery order; an unparseable candidate is skipped.
func objectCandidates(raw string, requiredKeys ...string) []map[string]any {
	var out []map[string]any
	for _, fragment := range scanObjects(raw) {
		var m map[string]any
		if err := json.Unmarshal([]byte(fragment), &m); err != nil {
			continue
		}
		keep := true
		for _, key := range requiredKeys {
			if _, ok := m[key]; !ok {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	if len(out) > 0 {
		logger.Info("Extracted standalone JSON objects", zap.Int("count", len(out)))
	}
	return out
}

// scanObjects returns every top-level {...} fragment in raw. Brace depth is
// tracked to arbitrary nesting, and braces inside string literals (including
// escaped quotes) do not move the counter.
func scanObjects(raw string) []string {
	var fragments []string
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range raw {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					fragments = append(fragments, raw[start:i+1])
					start = -1
				}
			}
		}
	}
	return fragments
}

// textCandidates is the content-only heuristic for output with no recoverable
// JSON: first non-empty line becomes the title, the rest become HTML
// paragraphs. It produces exactly one candidate, or none for blank input.
func textCandidates(raw string, seed Seed) []map[string]any {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	logger.Log.Warn("No valid JSON found, structuring content from plain text")
	if len(lines) == 1 {
		return []map[string]any{{
			"title":     titleize(seed.SubtopicID) + " Content",
			"body":      "<p>" + lines[0] + "</p>",
			"card_type": "content",
		}}
	}

	title := strings.ReplaceAll(lines[0], `"`, "")
	title = strings.TrimSpace(strings.TrimPrefix(title, "Title:"))
	if title == "" {
		title = titleize(seed.SubtopicID) + " Content"
	}
	return []map[string]any{{
		"title":     title,
		"body":      "<p>" + strings.Join(lines[1:], "</p><p>") + "</p>",
		"card_type": "content",
	}}
}
