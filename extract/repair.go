package extract

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/smartclass-ai/content-gen/model"
	"go.uber.org/zap"
)

// Field-level repair: a required field absent from the parsed object gets a
// deterministic default; a field present with an incompatible type drops the
// whole record. A dropped record is never fatal to the response.

func repairCard(m map[string]any, index int) (model.ContentCard, bool) {
	title, ok := stringField(m, "title", fmt.Sprintf("Content Card %d", index+1))
	if !ok {
		return dropRecord[model.ContentCard](m, "title")
	}
	body, ok := stringField(m, "body", "<p>Content will be available soon.</p>")
	if !ok {
		return dropRecord[model.ContentCard](m, "body")
	}
	cardType, ok := stringField(m, "card_type", "content")
	if !ok {
		return dropRecord[model.ContentCard](m, "card_type")
	}
	return model.ContentCard{Title: title, Body: body, CardType: cardType}, true
}

func repairQuestion(m map[string]any, seed Seed) (model.QuizQuestion, bool) {
	question, ok := stringField(m, "question", fmt.Sprintf("Question about %s", humanize(seed.SubtopicID)))
	if !ok {
		return dropRecord[model.QuizQuestion](m, "question")
	}
	questionType, ok := stringField(m, "question_type", "multiple_choice")
	if !ok {
		return dropRecord[model.QuizQuestion](m, "question_type")
	}
	correct, ok := stringField(m, "correct_answer", "Option A")
	if !ok {
		return dropRecord[model.QuizQuestion](m, "correct_answer")
	}
	explanation, ok := stringField(m, "explanation", "This is the correct answer.")
	if !ok {
		return dropRecord[model.QuizQuestion](m, "explanation")
	}

	options, present, ok := stringSliceField(m, "options")
	if !ok {
		return dropRecord[model.QuizQuestion](m, "options")
	}
	if !present {
		switch questionType {
		case "multiple_choice":
			options = []string{"Option A", "Option B", "Option C", "Option D"}
		case "true_false":
			options = []string{"True", "False"}
		}
	}

	return model.QuizQuestion{
		Question:      question,
		QuestionType:  questionType,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   explanation,
	}, true
}

func repairTopic(m map[string]any, index int) (model.TopicDescription, bool) {
	topicID, ok := stringField(m, "topic_id", fmt.Sprintf("topic-%d", index+1))
	if !ok {
		return dropRecord[model.TopicDescription](m, "topic_id")
	}
	title, ok := stringField(m, "title", fmt.Sprintf("Topic %d", index+1))
	if !ok {
		return dropRecord[model.TopicDescription](m, "title")
	}
	description, ok := stringField(m, "description", fmt.Sprintf("Learning content for topic %d", index+1))
	if !ok {
		return dropRecord[model.TopicDescription](m, "description")
	}
	level, ok := intField(m, "level", index+1)
	if !ok {
		return dropRecord[model.TopicDescription](m, "level")
	}
	return model.TopicDescription{TopicID: topicID, Title: title, Description: description, Level: level}, true
}

func dropRecord[T any](m map[string]any, field string) (T, bool) {
	var zero T
	logger.Log.Warn("Dropping record with incompatible field type",
		zap.String("field", field), zap.Any("value", m[field]))
	return zero, false
}

func stringField(m map[string]any, key, def string) (string, bool) {
	v, present := m[key]
	if !present {
		return def, true
	}
	s, ok := v.(string)
	return s, ok
}

// stringSliceField reports (value, present, valid). A present value must be an
// array of strings; anything else (e.g. options given as a single string)
// invalidates the record.
func stringSliceField(m map[string]any, key string) ([]string, bool, bool) {
	v, present := m[key]
	if !present {
		return nil, false, true
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, true, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, true, false
		}
		out = append(out, s)
	}
	return out, true, true
}

func intField(m map[string]any, key string, def int) (int, bool) {
	v, present := m[key]
	if !present {
		return def, true
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// Seed fallbacks: canonical placeholder records guaranteeing non-empty output.

func seedCards(seed Seed) []model.ContentCard {
	subtopic := humanize(seed.SubtopicID)
	return []model.ContentCard{{
		Title:    titleize(seed.SubtopicID) + " Content",
		Body:     fmt.Sprintf("<p>Learning content for %s.</p>", subtopic),
		CardType: "content",
	}}
}

func seedQuestions(seed Seed) []model.QuizQuestion {
	subtopic := humanize(seed.SubtopicID)
	if seed.QuizType == "mid" {
		return []model.QuizQuestion{{
			Question:      fmt.Sprintf("What is the main concept in %s?", subtopic),
			QuestionType:  "multiple_choice",
			Options:       []string{"Basic understanding", "Advanced concepts", "Practical skills", "All of the above"},
			CorrectAnswer: "All of the above",
			Explanation:   fmt.Sprintf("This subtopic covers multiple important aspects of %s.", subtopic),
		}}
	}
	return []model.QuizQuestion{
		{
			Question:      fmt.Sprintf("What did you learn about %s?", subtopic),
			QuestionType:  "multiple_choice",
			Options:       []string{"Key concepts", "Important skills", "Practical applications", "All of the above"},
			CorrectAnswer: "All of the above",
			Explanation:   fmt.Sprintf("This topic covers comprehensive learning about %s.", subtopic),
		},
		{
			Question:      fmt.Sprintf("True or False: %s is important for Grade %s students.", subtopic, seed.GradeID),
			QuestionType:  "true_false",
			Options:       []string{"True", "False"},
			CorrectAnswer: "True",
			Explanation:   fmt.Sprintf("%s is indeed important for students at this grade level.", subtopic),
		},
	}
}

var subjectSeedTopics = map[string][]model.TopicDescription{
	"mathematics": {
		{TopicID: "numbers", Title: "Numbers and Operations", Description: "Learn counting, addition, subtraction and number relationships", Level: 1},
		{TopicID: "geometry", Title: "Shapes and Space", Description: "Explore shapes, patterns and spatial relationships", Level: 2},
		{TopicID: "measurement", Title: "Measurement", Description: "Understand length, time, weight and capacity", Level: 3},
	},
	"english": {
		{TopicID: "reading", Title: "Reading Skills", Description: "Build phonics, fluency and comprehension abilities", Level: 1},
		{TopicID: "writing", Title: "Writing Skills", Description: "Express ideas clearly through written communication", Level: 2},
		{TopicID: "speaking", Title: "Speaking and Listening", Description: "Develop oral communication and listening skills", Level: 3},
	},
	"science": {
		{TopicID: "living-things", Title: "Living Things", Description: "Study plants, animals and their environments", Level: 1},
		{TopicID: "materials", Title: "Materials and Matter", Description: "Explore properties and changes in materials", Level: 2},
		{TopicID: "forces", Title: "Forces and Motion", Description: "Understand how things move and forces around us", Level: 3},
	},
}

func seedTopics(seed Seed) []model.TopicDescription {
	if topics, ok := subjectSeedTopics[strings.ToLower(seed.SubjectID)]; ok {
		out := make([]model.TopicDescription, len(topics))
		copy(out, topics)
		return out
	}
	subject := titleize(seed.SubjectID)
	return []model.TopicDescription{
		{TopicID: "topic-1", Title: subject + " Basics", Description: fmt.Sprintf("Fundamental concepts in %s", humanize(seed.SubjectID)), Level: 1},
		{TopicID: "topic-2", Title: subject + " Skills", Description: fmt.Sprintf("Building skills in %s", humanize(seed.SubjectID)), Level: 2},
	}
}

// humanize turns a slug like "number-bonds" into "number bonds".
func humanize(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

// titleize turns a slug like "number-bonds" into "Number Bonds".
func titleize(id string) string {
	words := strings.Fields(humanize(id))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
