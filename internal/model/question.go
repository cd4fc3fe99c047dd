package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnswerLabels are the option labels a question can be answered with.
var AnswerLabels = []string{"A", "B", "C", "D"}

type Question struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	TradeID       uint                        `json:"trade_id" gorm:"not null;index:idx_question_trade_year"`
	Year          int                         `json:"year" gorm:"not null;index:idx_question_trade_year"`
	Prompt        string                      `json:"prompt" gorm:"type:text;not null"`
	OptionA       string                      `json:"option_a" gorm:"type:text;not null"`
	OptionB       string                      `json:"option_b" gorm:"type:text;not null"`
	OptionC       string                      `json:"option_c" gorm:"type:text;not null"`
	OptionD       string                      `json:"option_d" gorm:"type:text;not null"`
	CorrectAnswer string                      `json:"correct_answer" gorm:"size:1;not null"` // "A".."D"
	ImageURLs     datatypes.JSONSlice[string] `json:"image_urls,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}

// IsAnswerLabel reports whether s is one of AnswerLabels.
func IsAnswerLabel(s string) bool {
	for _, l := range AnswerLabels {
		if s == l {
			return true
		}
	}
	return false
}
