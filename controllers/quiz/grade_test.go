package quizController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeScoresAgainstModuleTotal(t *testing.T) {
	correct := map[uint]uint{1: 11, 2: 22, 3: 33}

	// Only two of three questions answered; total still counts all three
	result := Grade(3, correct, []SubmittedAnswer{
		{QuestionID: 1, SelectedAnswerID: 11},
		{QuestionID: 2, SelectedAnswerID: 99},
	})

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Score)
	assert.Len(t, result.Responses, 2)
	assert.True(t, result.Responses[0].IsCorrect)
	assert.False(t, result.Responses[1].IsCorrect)
}

func TestGradePerfectScore(t *testing.T) {
	correct := map[uint]uint{1: 11, 2: 22}

	result := Grade(2, correct, []SubmittedAnswer{
		{QuestionID: 1, SelectedAnswerID: 11},
		{QuestionID: 2, SelectedAnswerID: 22},
	})

	assert.Equal(t, result.Total, result.Score)
}

func TestGradeUnknownQuestionNeverMatches(t *testing.T) {
	correct := map[uint]uint{1: 11}

	result := Grade(1, correct, []SubmittedAnswer{
		{QuestionID: 777, SelectedAnswerID: 11},
	})

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Responses[0].IsCorrect)
}

func TestGradeEmptySubmission(t *testing.T) {
	result := Grade(5, map[uint]uint{1: 11}, nil)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.Empty(t, result.Responses)
}
