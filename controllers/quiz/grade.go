package quizController

// SubmittedAnswer is one answer selection in a quiz submission
type SubmittedAnswer struct {
	QuestionID       uint `json:"question_id"`
	SelectedAnswerID uint `json:"selected_answer_id"`
}

// ResponseMark is one graded submitted answer
type ResponseMark struct {
	QuestionID       uint `json:"question_id"`
	SelectedAnswerID uint `json:"selected_answer_id"`
	IsCorrect        bool `json:"is_correct"`
}

// GradeResult is the outcome of grading one submission
type GradeResult struct {
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Responses []ResponseMark `json:"responses"`
}

// Grade scores a submission against the authoritative correct-answer map.
// totalQuestions is the number of questions in the module, not the number of
// answers submitted; a learner who skips questions is scored against the full
// set. Unknown question ids simply never match.
func Grade(totalQuestions int, correctByQuestion map[uint]uint, submitted []SubmittedAnswer) GradeResult {
	result := GradeResult{
		Total:     totalQuestions,
		Responses: make([]ResponseMark, 0, len(submitted)),
	}

	for _, ans := range submitted {
		correctID, known := correctByQuestion[ans.QuestionID]
		isCorrect := known && ans.SelectedAnswerID == correctID
		if isCorrect {
			result.Score++
		}
		result.Responses = append(result.Responses, ResponseMark{
			QuestionID:       ans.QuestionID,
			SelectedAnswerID: ans.SelectedAnswerID,
			IsCorrect:        isCorrect,
		})
	}

	return result
}
