package course

import "gorm.io/gorm"

// QuizQuestion represents a question belonging to a module's quiz
type QuizQuestion struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Question   string `json:"question"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAnswer represents one answer option of a quiz question. IsCorrect is
// never serialized; clients only learn correct answers from the verification
// response after grading.
type QuizAnswer struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"-" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt records one graded submission of a module's quiz. Attempts are
// append-only; history is preserved across retakes.
type QuizAttempt struct {
	gorm.Model
	UserID        uint `json:"user_id" gorm:"index;not null"`
	ModuleID      uint `json:"module_id" gorm:"index;not null"`
	Score         int  `json:"score"`
	Total         int  `json:"total"` // Number of questions in the module, not answers submitted
	AttemptNumber int  `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool `gorm:"default:false"`
}

// QuizResponse records one submitted answer within an attempt
type QuizResponse struct {
	gorm.Model
	AttemptID        uint `json:"attempt_id" gorm:"index;not null"`
	QuestionID       uint `json:"question_id" gorm:"not null"`
	SelectedAnswerID uint `json:"selected_answer_id"`
	IsCorrect        bool `json:"is_correct" gorm:"default:false"`
}
