package dto

import "time"

// TradeCreateDTO is used by admins to register a trade.
type TradeCreateDTO struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty"`
}

type TradeResponseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionCreateDTO adds a multiple-choice question to a trade's bank.
type QuestionCreateDTO struct {
	TradeID       uint     `json:"trade_id" binding:"required"`
	Year          int      `json:"year" binding:"required,min=1,max=4"`
	Prompt        string   `json:"prompt" binding:"required"`
	OptionA       string   `json:"option_a" binding:"required"`
	OptionB       string   `json:"option_b" binding:"required"`
	OptionC       string   `json:"option_c" binding:"required"`
	OptionD       string   `json:"option_d" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required,oneof=A B C D"`
	ImageURLs     []string `json:"image_urls,omitempty" binding:"omitempty,dive,url"`
}

// QuestionBatchCreateDTO creates many questions in one transaction.
type QuestionBatchCreateDTO struct {
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,max=500,dive"`
}

// QuestionResponseDTO is the admin view of a question, answer included.
type QuestionResponseDTO struct {
	ID            uint      `json:"id"`
	TradeID       uint      `json:"trade_id"`
	Year          int       `json:"year"`
	Prompt        string    `json:"prompt"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer string    `json:"correct_answer"`
	ImageURLs     []string  `json:"image_urls,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionListQuery is bound from the query string of the admin listing.
type QuestionListQuery struct {
	TradeID uint `form:"trade_id"`
	Year    int  `form:"year"`
	Limit   int  `form:"limit"`
	Offset  int  `form:"offset" binding:"min=0"`
}

// QuestionDraftRequestDTO asks the AI helper for draft questions.
type QuestionDraftRequestDTO struct {
	TradeID uint   `json:"trade_id" binding:"required"`
	Year    int    `json:"year" binding:"required,min=1,max=4"`
	Topic   string `json:"topic" binding:"required"`
	Count   int    `json:"count" binding:"required,min=1,max=20"`
}
