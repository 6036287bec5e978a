package rag

import "github.com/smartclass-ai/content-gen/model"

func contentRequest() model.ContentRequest {
	return model.ContentRequest{
		TopicID:    "numbers",
		SubtopicID: "counting",
		SubjectID:  "mathematics",
		GradeID:    "1",
		NumCards:   5,
	}
}

func quizRequest() model.QuizRequest {
	return model.QuizRequest{
		TopicID:    "numbers",
		SubtopicID: "counting",
		SubjectID:  "mathematics",
		GradeID:    "1",
		QuizType:   "mid",
	}
}

func topicRequest() model.TopicRequest {
	return model.TopicRequest{
		SubjectID: "mathematics",
		GradeID:   "1",
		NumTopics: 5,
	}
}
