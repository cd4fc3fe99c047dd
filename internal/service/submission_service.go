package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService grades a paper and records the owner's responses.
type SubmissionService interface {
	SubmitPaper(ctx context.Context, paperID string, req dto.SubmitPaperRequest) (*dto.PaperResultDTO, error)
}

type submissionService struct {
	paperRepo      repository.PaperRepository
	scoreConverter ScoreConverterService
	now            func() time.Time
}

func NewSubmissionService(paperRepo repository.PaperRepository, scoreConverter ScoreConverterService) SubmissionService {
	return &submissionService{
		paperRepo:      paperRepo,
		scoreConverter: scoreConverter,
		now:            time.Now,
	}
}

func (s *submissionService) SubmitPaper(ctx context.Context, paperID string, req dto.SubmitPaperRequest) (*dto.PaperResultDTO, error) {
	paper, err := s.paperRepo.FindByID(ctx, paperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaperNotFound
		}
		log.Error().Err(err).Str("paperID", paperID).Msg("SubmitPaper: Failed to load paper")
		return nil, storeError("find paper", err)
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, newValidationError("userId", "is required")
	}
	if paper.UserID != userID {
		log.Warn().Str("paperID", paperID).Str("userID", userID).Msg("SubmitPaper: Submission by non-owner rejected")
		return nil, ErrNotPaperOwner
	}
	if paper.Submitted {
		return nil, ErrAlreadySubmitted
	}

	graded := make([]model.PaperQuestion, len(paper.Questions))
	copy(graded, paper.Questions)
	index := make(map[uint]int, len(graded))
	for i, q := range graded {
		index[q.QuestionID] = i
	}

	for _, r := range req.Responses {
		if !model.IsAnswerLabel(r.Response) {
			return nil, newValidationError("responses", "invalid response %q for question %d", r.Response, r.QuestionID)
		}
		i, ok := index[r.QuestionID]
		if !ok {
			log.Warn().Uint("questionID", r.QuestionID).Str("paperID", paperID).Msg("SubmitPaper: Response for a question not in this paper, skipping.")
			continue
		}
		label := r.Response
		graded[i].Response = &label
	}

	score, answered := 0, 0
	for _, q := range graded {
		if q.Response == nil {
			continue
		}
		answered++
		if *q.Response == q.CorrectAnswer {
			score++
		}
	}

	at := s.now().UTC()
	ok, err := s.paperRepo.Submit(ctx, paper.ID, graded, score, at)
	if err != nil {
		log.Error().Err(err).Str("paperID", paperID).Msg("SubmitPaper: Failed to record submission")
		return nil, storeError("submit paper", err)
	}
	if !ok {
		return nil, ErrAlreadySubmitted
	}

	pct := s.scoreConverter.ToPercentage(score, len(graded))
	log.Info().Str("paperID", paperID).Str("userID", userID).Int("score", score).Int("total", len(graded)).Msg("Paper submitted")
	return &dto.PaperResultDTO{
		ID:          paper.ID,
		PaperCode:   paper.PaperCode,
		Score:       score,
		Total:       len(graded),
		Answered:    answered,
		Percentage:  pct,
		Passed:      s.scoreConverter.IsPass(pct),
		SubmittedAt: at,
	}, nil
}
