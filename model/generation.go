package model

// ContentRequest asks for educational content cards for one subtopic.
type ContentRequest struct {
	TopicID    string `json:"topic_id"`
	SubtopicID string `json:"subtopic_id"`
	SubjectID  string `json:"subject_id"`
	GradeID    string `json:"grade_id"`
	UserLevel  int    `json:"user_level"`
	NumCards   int    `json:"num_cards"`
}

// QuizRequest asks for quiz questions. QuizType is "mid" or "final".
type QuizRequest struct {
	TopicID    string `json:"topic_id"`
	SubtopicID string `json:"subtopic_id"`
	SubjectID  string `json:"subject_id"`
	GradeID    string `json:"grade_id"`
	QuizType   string `json:"quiz_type"`
	Difficulty int    `json:"difficulty"`
}

// TopicRequest asks for topic descriptions for a subject and grade.
type TopicRequest struct {
	SubjectID string `json:"subject_id"`
	GradeID   string `json:"grade_id"`
	NumTopics int    `json:"num_topics"`
}

// ContentCard is a single lesson card. Body carries HTML paragraphs.
type ContentCard struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	CardType string `json:"card_type"`
}

// QuizQuestion is one generated question.
// QuestionType is "multiple_choice", "fill_blank" or "true_false".
type QuizQuestion struct {
	Question      string   `json:"question"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// TopicDescription is one entry of a subject's topic listing.
type TopicDescription struct {
	TopicID     string `json:"topic_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       int    `json:"level"`
}

type ContentResponse struct {
	Success  bool           `json:"success"`
	Content  []ContentCard  `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

type QuizResponse struct {
	Success   bool           `json:"success"`
	Questions []QuizQuestion `json:"questions"`
	QuizType  string         `json:"quiz_type"`
	Metadata  map[string]any `json:"metadata"`
}

type TopicResponse struct {
	Success  bool               `json:"success"`
	Topics   []TopicDescription `json:"topics"`
	Metadata map[string]any     `json:"metadata"`
}
