package course

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultQuizDuration is applied when authoring omits or mangles the duration
const DefaultQuizDuration = 10 // minutes

// Quiz holds an ordered question set for a course
type Quiz struct {
	gorm.Model
	CourseID  uint           `json:"course_id" gorm:"index;not null"`
	Title     string         `json:"title"`
	Duration  int            `json:"duration" gorm:"default:10"` // minutes, client countdown
	Questions datatypes.JSON `json:"questions"`                  // ordered list of Question
}

// Question is one entry of a quiz's question list. CorrectIndex is zero-based
// into Options.
type Question struct {
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// QuestionList decodes the stored question set
func (q *Quiz) QuestionList() []Question {
	var questions []Question
	if len(q.Questions) == 0 {
		return questions
	}
	if err := json.Unmarshal(q.Questions, &questions); err != nil {
		return nil
	}
	return questions
}

// SetQuestions stores the question list verbatim
func (q *Quiz) SetQuestions(questions []Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	q.Questions = raw
	return nil
}
