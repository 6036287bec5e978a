package prompt

import (
	"strings"
	"testing"

	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/rag"
	"github.com/stretchr/testify/assert"
)

func contentRequest() model.ContentRequest {
	return model.ContentRequest{
		TopicID:    "numbers",
		SubtopicID: "counting",
		SubjectID:  "mathematics",
		GradeID:    "1",
		NumCards:   5,
	}
}

func contextWith(texts ...string) *rag.Context {
	c := rag.NewContext()
	for _, t := range texts {
		c.Add(t)
	}
	return c
}

func TestContent_WithAndWithoutContextShareFormatInstructions(t *testing.T) {
	withCtx := Content(contentRequest(), contextWith("Pupils count to 100 by ones and tens."))
	withoutCtx := Content(contentRequest(), rag.NewContext())

	assert.Contains(t, withCtx, "CURRICULUM CONTENT FROM SYLLABUS:")
	assert.NotContains(t, withoutCtx, "CURRICULUM CONTENT")

	// identical output-shape instruction regardless of template family
	instruction := `Return ONLY valid JSON array:
[{"title":"Lesson Title","body":"<p>Detailed educational content about counting</p>","card_type":"content"}]`
	assert.Contains(t, withCtx, instruction)
	assert.Contains(t, withoutCtx, instruction)
	assert.True(t, strings.HasSuffix(withCtx, "JSON:"))
	assert.True(t, strings.HasSuffix(withoutCtx, "JSON:"))
}

func TestContent_ContextInjectedBeforeInstructionalBody(t *testing.T) {
	p := Content(contentRequest(), contextWith("Pupils count to 100."))

	curriculumAt := strings.Index(p, "CURRICULUM CONTENT")
	bodyAt := strings.Index(p, "Create comprehensive educational content")
	assert.Greater(t, bodyAt, curriculumAt)
}

func TestContent_ContextTruncatedToBudget(t *testing.T) {
	long := strings.Repeat("a", ContentContextBudget+500)
	p := Content(contentRequest(), contextWith(long))

	assert.NotContains(t, p, long)
	assert.Contains(t, p, long[:ContentContextBudget])
}

func TestQuiz_MidAndFinalFamilies(t *testing.T) {
	req := model.QuizRequest{
		TopicID: "numbers", SubtopicID: "counting",
		SubjectID: "mathematics", GradeID: "1",
	}

	req.QuizType = "mid"
	mid := Quiz(req, rag.NewContext())
	assert.Contains(t, mid, "mid-topic quiz")
	assert.Contains(t, mid, "3 multiple-choice questions")

	req.QuizType = "final"
	final := Quiz(req, rag.NewContext())
	assert.Contains(t, final, "final quiz")
	assert.Contains(t, final, "2 multiple-choice, 1 true/false")
	assert.Contains(t, final, `"question_type":"true_false"`)
}

func TestTopics_PromptShape(t *testing.T) {
	req := model.TopicRequest{SubjectID: "science", GradeID: "3", NumTopics: 4}

	p := Topics(req, contextWith("Living things and habitats."))

	assert.Contains(t, p, "List 4 main topics for science Grade 3.")
	assert.Contains(t, p, "CURRICULUM CONTENT FROM SYLLABUS:")
	assert.Contains(t, p, `"topic_id":"numbers"`)
	assert.True(t, strings.HasSuffix(p, "JSON:"))
}
