package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaperQuestion is a snapshot of a Question embedded in a Paper.
// Response stays nil until the owner submits the paper.
type PaperQuestion struct {
	QuestionID    uint    `json:"question_id"`
	Prompt        string  `json:"prompt"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       string  `json:"option_c"`
	OptionD       string  `json:"option_d"`
	CorrectAnswer string  `json:"correct_answer"`
	TradeID       uint    `json:"trade_id"`
	Year          int     `json:"year"`
	Response      *string `json:"response"`
}

// Paper is one student's copy of a test. All copies of "the same" test share
// a PaperCode; the (PaperCode, UserID) pair is unique.
type Paper struct {
	ID          string                             `gorm:"type:varchar(36);primaryKey" json:"id"`
	PaperCode   string                             `json:"paper_code" gorm:"size:32;not null;uniqueIndex:idx_paper_code_user,priority:1"`
	TradeID     uint                               `json:"trade_id" gorm:"not null;index:idx_paper_trade_year"`
	TradeName   string                             `json:"trade_name" gorm:"not null"`
	Year        int                                `json:"year" gorm:"not null;index:idx_paper_trade_year"`
	UserID      string                             `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_paper_code_user,priority:2;index"`
	UserName    string                             `json:"user_name"`
	Questions   datatypes.JSONSlice[PaperQuestion] `json:"questions" gorm:"not null"`
	QuesCount   int                                `json:"ques_count" gorm:"not null"`
	Score       *int                               `json:"score"`
	Submitted   bool                               `json:"submitted" gorm:"not null;default:false"`
	SubmittedAt *time.Time                         `json:"submitted_at,omitempty"`
	CreatedAt   time.Time                          `json:"created_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}

func (p *Paper) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
