package dto

import "time"

// GeneratePaperRequest asks for a fresh randomized paper.
type GeneratePaperRequest struct {
	TradeID   uint    `json:"tradeId" binding:"required"`
	TradeName string  `json:"tradeName"`
	Year      int     `json:"year" binding:"required,min=1"`
	QuesCount FlexInt `json:"quesCount" binding:"required,min=1"`
	UserID    string  `json:"userId" binding:"required"`
	UserName  string  `json:"userName"`
}

// ClonePaperRequest asks for a personal copy of an existing paper code.
type ClonePaperRequest struct {
	PaperCode string `json:"paperId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	UserName  string `json:"userName"`
}

// PaperIssueResponse is returned by generate and clone. PaperID is the shared
// paper code; DocumentID identifies the caller's own copy.
type PaperIssueResponse struct {
	PaperID       string `json:"paperId"`
	DocumentID    string `json:"documentId"`
	Message       string `json:"message,omitempty"`
	AlreadyExists bool   `json:"-"`
}

// PaperQuestionDTO is a question as shown inside a paper. CorrectAnswer is
// only filled once the paper is submitted.
type PaperQuestionDTO struct {
	QuestionID    uint    `json:"question_id"`
	Prompt        string  `json:"prompt"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       string  `json:"option_c"`
	OptionD       string  `json:"option_d"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	Response      *string `json:"response"`
}

type PaperDetailDTO struct {
	ID          string             `json:"id"`
	PaperCode   string             `json:"paper_code"`
	TradeID     uint               `json:"trade_id"`
	TradeName   string             `json:"trade_name"`
	Year        int                `json:"year"`
	UserID      string             `json:"user_id"`
	UserName    string             `json:"user_name"`
	QuesCount   int                `json:"ques_count"`
	Score       *int               `json:"score"`
	Submitted   bool               `json:"submitted"`
	SubmittedAt *time.Time         `json:"submitted_at,omitempty"`
	Questions   []PaperQuestionDTO `json:"questions"`
	CreatedAt   time.Time          `json:"created_at"`
}

type PaperSummaryDTO struct {
	ID          string     `json:"id"`
	PaperCode   string     `json:"paper_code"`
	TradeName   string     `json:"trade_name"`
	Year        int        `json:"year"`
	QuesCount   int        `json:"ques_count"`
	Score       *int       `json:"score"`
	Submitted   bool       `json:"submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResponseDTO is one answered question in a submission.
type ResponseDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Response   string `json:"response" binding:"required,oneof=A B C D"`
}

type SubmitPaperRequest struct {
	UserID    string        `json:"userId" binding:"required"`
	Responses []ResponseDTO `json:"responses" binding:"dive"`
}

type PaperResultDTO struct {
	ID          string    `json:"id"`
	PaperCode   string    `json:"paper_code"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Answered    int       `json:"answered"`
	Percentage  float64   `json:"percentage"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// LeaderboardQuery is bound from the query string.
type LeaderboardQuery struct {
	PaperCode string `form:"paper_code"`
	TradeID   uint   `form:"trade_id"`
	Year      int    `form:"year"`
	Limit     int    `form:"limit"`
}

type LeaderboardEntryDTO struct {
	Rank        int       `json:"rank"`
	PaperID     string    `json:"paper_id"`
	PaperCode   string    `json:"paper_code"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	TradeName   string    `json:"trade_name"`
	Score       int       `json:"score"`
	QuesCount   int       `json:"ques_count"`
	Percentage  float64   `json:"percentage"`
	SubmittedAt time.Time `json:"submitted_at"`
}
