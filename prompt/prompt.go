// Package prompt builds the generation prompts for each request variant.
//
// Every template ends with the same instruction to emit only a JSON array and a
// one-example schema sketch, whether or not curriculum context was injected, so
// extraction never has to care which template produced the output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/smartclass-ai/content-gen/model"
	"github.com/smartclass-ai/content-gen/rag"
)

// Character budgets for injected curriculum context, per variant.
const (
	ContentContextBudget = 1500
	QuizContextBudget    = 800
	TopicContextBudget   = 1200
)

// curriculumSection renders the retrieved syllabus text ahead of the
// instructional body. Placing it first biases the model toward grounding.
func curriculumSection(ctx *rag.Context, budget int, goal string) string {
	if ctx.Empty() {
		return ""
	}
	return fmt.Sprintf("\n\nCURRICULUM CONTENT FROM SYLLABUS:\n%s\n\nBased on this curriculum content, %s.", ctx.Joined(budget), goal)
}

// Content builds the content-card prompt, RAG-enhanced when ctx is non-empty.
func Content(req model.ContentRequest, ctx *rag.Context) string {
	section := curriculumSection(ctx, ContentContextBudget,
		fmt.Sprintf("create educational content for %s", req.SubtopicID))

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d educational content cards for %s Grade %s.\n\n", req.NumCards, req.SubjectID, req.GradeID)
	fmt.Fprintf(&b, "Topic: %s\nSubtopic: %s%s\n\n", req.TopicID, req.SubtopicID, section)
	fmt.Fprintf(&b, "Create comprehensive educational content that teaches students about %s. Include clear explanations, examples, and engaging information.\n\n", req.SubtopicID)
	fmt.Fprintf(&b, `Return ONLY valid JSON array:
[{"title":"Lesson Title","body":"<p>Detailed educational content about %s</p>","card_type":"content"}]

JSON:`, req.SubtopicID)
	return b.String()
}

// Quiz builds the quiz prompt. The mid-topic family asks for three
// multiple-choice questions; the final family mixes in a true/false question.
func Quiz(req model.QuizRequest, ctx *rag.Context) string {
	section := curriculumSection(ctx, QuizContextBudget,
		fmt.Sprintf("create quiz questions for %s", req.SubtopicID))

	var b strings.Builder
	if req.QuizType == "mid" {
		fmt.Fprintf(&b, "Create a mid-topic quiz for %s Grade %s.\n\n", req.SubjectID, req.GradeID)
		fmt.Fprintf(&b, "Topic: %s\nSubtopic: %s%s\n\n", req.TopicID, req.SubtopicID, section)
		fmt.Fprintf(&b, "Generate 3 multiple-choice questions using simple language for Grade %s.\n\n", req.GradeID)
		fmt.Fprintf(&b, `Return ONLY valid JSON array:
[{"question":"What is %s?","question_type":"multiple_choice","options":["A","B","C","D"],"correct_answer":"A","explanation":"This is correct"}]

JSON:`, req.SubtopicID)
		return b.String()
	}

	fmt.Fprintf(&b, "Create a final quiz for %s Grade %s.\n\n", req.SubjectID, req.GradeID)
	fmt.Fprintf(&b, "Topic: %s\nSubtopic: %s%s\n\n", req.TopicID, req.SubtopicID, section)
	b.WriteString("Generate 3 questions: 2 multiple-choice, 1 true/false.\n\n")
	fmt.Fprintf(&b, `Return ONLY valid JSON array:
[{"question":"What is %s?","question_type":"multiple_choice","options":["A","B","C","D"],"correct_answer":"A","explanation":"Correct"},{"question":"True or False: %s is important","question_type":"true_false","options":["True","False"],"correct_answer":"True","explanation":"True because..."}]

JSON:`, req.SubtopicID, req.SubtopicID)
	return b.String()
}

// Topics builds the topic-listing prompt for a subject and grade.
func Topics(req model.TopicRequest, ctx *rag.Context) string {
	section := curriculumSection(ctx, TopicContextBudget,
		fmt.Sprintf("list the main topics of the %s curriculum", req.SubjectID))

	var b strings.Builder
	fmt.Fprintf(&b, "List %d main topics for %s Grade %s.%s\n\n", req.NumTopics, req.SubjectID, req.GradeID, section)
	fmt.Fprintf(&b, "Describe each topic in one sentence suitable for Grade %s students, ordered from basic to advanced.\n\n", req.GradeID)
	b.WriteString(`Return ONLY valid JSON array:
[{"topic_id":"numbers","title":"Numbers and Operations","description":"Learn counting, addition and subtraction","level":1}]

JSON:`)
	return b.String()
}
