package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultQuestionPageSize = 20
	maxQuestionPageSize     = 100
)

// QuestionBankService is the admin side of the question store.
type QuestionBankService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	CreateQuestions(ctx context.Context, req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error)
	ListQuestions(ctx context.Context, q dto.QuestionListQuery) (*dto.PageDTO[dto.QuestionResponseDTO], error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionBankService struct {
	questionRepo repository.QuestionRepository
	tradeRepo    repository.TradeRepository
}

func NewQuestionBankService(questionRepo repository.QuestionRepository, tradeRepo repository.TradeRepository) QuestionBankService {
	return &questionBankService{questionRepo: questionRepo, tradeRepo: tradeRepo}
}

func (s *questionBankService) CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.buildQuestion(ctx, req, map[uint]bool{})
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Uint("tradeID", req.TradeID).Msg("Failed to create question in database")
		return nil, storeError("create question", err)
	}
	resp, err := toQuestionResponse(question)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateQuestions validates every question before inserting any of them.
func (s *questionBankService) CreateQuestions(ctx context.Context, req dto.QuestionBatchCreateDTO) ([]dto.QuestionResponseDTO, error) {
	if len(req.Questions) == 0 {
		return nil, newValidationError("questions", "at least one question is required")
	}
	knownTrades := make(map[uint]bool)
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		q, err := s.buildQuestion(ctx, qDto, knownTrades)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				vErr.Field = fmt.Sprintf("questions[%d].%s", i, vErr.Field)
			}
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("Failed to create question batch in database")
		return nil, storeError("create questions", err)
	}

	var err error
	resp := make([]dto.QuestionResponseDTO, len(questions))
	for i, q := range questions {
		if resp[i], err = toQuestionResponse(q); err != nil {
			return nil, err
		}
	}
	log.Info().Int("count", len(questions)).Msg("Question batch created")
	return resp, nil
}

func (s *questionBankService) ListQuestions(ctx context.Context, q dto.QuestionListQuery) (*dto.PageDTO[dto.QuestionResponseDTO], error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultQuestionPageSize
	}
	if limit > maxQuestionPageSize {
		limit = maxQuestionPageSize
	}
	offset := max(q.Offset, 0)

	questions, total, err := s.questionRepo.List(ctx, repository.QuestionFilter{TradeID: q.TradeID, Year: q.Year}, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, storeError("list questions", err)
	}

	page := &dto.PageDTO[dto.QuestionResponseDTO]{
		Items:  make([]dto.QuestionResponseDTO, len(questions)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, question := range questions {
		if page.Items[i], err = toQuestionResponse(question); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// DeleteQuestion retires a question from future pools. Papers already issued
// keep their own copy.
func (s *questionBankService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return storeError("delete question", err)
	}
	return nil
}

func (s *questionBankService) buildQuestion(ctx context.Context, req dto.QuestionCreateDTO, knownTrades map[uint]bool) (model.Question, error) {
	if req.Year < 1 || req.Year > 4 {
		return model.Question{}, newValidationError("year", "must be between 1 and 4, got %d", req.Year)
	}
	answer := strings.ToUpper(strings.TrimSpace(req.CorrectAnswer))
	if !model.IsAnswerLabel(answer) {
		return model.Question{}, newValidationError("correct_answer", "must be one of A, B, C, D, got %q", req.CorrectAnswer)
	}
	fields := []struct{ name, value string }{
		{"prompt", req.Prompt},
		{"option_a", req.OptionA},
		{"option_b", req.OptionB},
		{"option_c", req.OptionC},
		{"option_d", req.OptionD},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return model.Question{}, newValidationError(f.name, "must not be blank")
		}
	}

	if !knownTrades[req.TradeID] {
		if _, err := s.tradeRepo.FindByID(ctx, req.TradeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.Question{}, ErrTradeNotFound
			}
			return model.Question{}, storeError("find trade", err)
		}
		knownTrades[req.TradeID] = true
	}

	var question model.Question
	if err := copier.Copy(&question, &req); err != nil {
		return model.Question{}, fmt.Errorf("error mapping question: %w", err)
	}
	question.CorrectAnswer = answer
	question.ImageURLs = req.ImageURLs
	return question, nil
}

func toQuestionResponse(q model.Question) (dto.QuestionResponseDTO, error) {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, &q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("Failed to copy Question model to QuestionResponseDTO")
		return dto.QuestionResponseDTO{}, fmt.Errorf("error preparing question response: %w", err)
	}
	resp.ImageURLs = q.ImageURLs
	return resp, nil
}
