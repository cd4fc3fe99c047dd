package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/itimock/config"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DuplicatePolicy decides what a repeated clone request from the same user gets.
type DuplicatePolicy string

const (
	DuplicatePolicyIdempotent DuplicatePolicy = "idempotent"
	DuplicatePolicyReject     DuplicatePolicy = "reject"
)

const (
	alreadyGeneratedMessage = "already generated"
	maxCodeAttempts         = 3
)

type PaperService interface {
	GeneratePaper(ctx context.Context, req dto.GeneratePaperRequest) (*dto.PaperIssueResponse, error)
	ClonePaper(ctx context.Context, req dto.ClonePaperRequest) (*dto.PaperIssueResponse, error)
	GetPaper(ctx context.Context, id string) (*dto.PaperDetailDTO, error)
	ListUserPapers(ctx context.Context, userID string) ([]dto.PaperSummaryDTO, error)
}

type paperService struct {
	pager     *QuestionPager
	paperRepo repository.PaperRepository
	tradeRepo repository.TradeRepository
	policy    DuplicatePolicy
	rng       randSource
	now       func() time.Time
}

func NewPaperService(
	questionRepo repository.QuestionRepository,
	paperRepo repository.PaperRepository,
	tradeRepo repository.TradeRepository,
	cfg *config.Config,
) PaperService {
	policy := DuplicatePolicy(cfg.Paper.DuplicatePolicy)
	if policy != DuplicatePolicyReject {
		policy = DuplicatePolicyIdempotent
	}
	return &paperService{
		pager:     NewQuestionPager(questionRepo, cfg.Paper.PageSize, cfg.Paper.MaxPages),
		paperRepo: paperRepo,
		tradeRepo: tradeRepo,
		policy:    policy,
		rng:       globalRand{},
		now:       time.Now,
	}
}

// GeneratePaper samples a fresh paper for (trade, year) and stores it under a new code.
func (s *paperService) GeneratePaper(ctx context.Context, req dto.GeneratePaperRequest) (*dto.PaperIssueResponse, error) {
	if req.TradeID == 0 {
		return nil, newValidationError("tradeId", "is required")
	}
	if req.Year <= 0 {
		return nil, newValidationError("year", "must be positive, got %d", req.Year)
	}
	quesCount := int(req.QuesCount)
	if quesCount <= 0 {
		return nil, newValidationError("quesCount", "must be positive, got %d", quesCount)
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, newValidationError("userId", "is required")
	}

	tradeName := strings.TrimSpace(req.TradeName)
	if tradeName == "" {
		trade, err := s.tradeRepo.FindByID(ctx, req.TradeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTradeNotFound
			}
			return nil, storeError("find trade", err)
		}
		tradeName = trade.Name
	}

	pool, err := s.pager.FetchAll(ctx, repository.QuestionFilter{TradeID: req.TradeID, Year: req.Year})
	if err != nil {
		log.Error().Err(err).Uint("tradeID", req.TradeID).Int("year", req.Year).Msg("GeneratePaper: Failed to fetch question pool")
		return nil, err
	}
	if len(pool) == 0 {
		log.Warn().Uint("tradeID", req.TradeID).Int("year", req.Year).Msg("GeneratePaper: Question pool is empty")
		return nil, ErrPoolEmpty
	}

	shuffle(pool, s.rng)
	n := min(quesCount, len(pool))
	if n < quesCount {
		log.Warn().Int("requested", quesCount).Int("available", len(pool)).Msg("GeneratePaper: Pool smaller than requested count, issuing a shorter paper")
	}
	questions := make([]model.PaperQuestion, 0, n)
	for _, q := range pool[:n] {
		questions = append(questions, toPaperQuestion(q))
	}

	code, err := s.allocateCode(ctx, tradeName)
	if err != nil {
		return nil, err
	}

	paper := model.Paper{
		PaperCode: code,
		TradeID:   req.TradeID,
		TradeName: tradeName,
		Year:      req.Year,
		UserID:    userID,
		UserName:  strings.TrimSpace(req.UserName),
		Questions: questions,
		QuesCount: quesCount,
	}
	if err := s.paperRepo.Create(ctx, &paper); err != nil {
		log.Error().Err(err).Str("paperCode", code).Msg("GeneratePaper: Failed to create paper")
		return nil, storeError("create paper", err)
	}

	log.Info().Str("paperCode", code).Str("paperID", paper.ID).Str("userID", userID).Int("questions", n).Msg("Paper generated")
	return &dto.PaperIssueResponse{PaperID: paper.PaperCode, DocumentID: paper.ID}, nil
}

// ClonePaper gives userID a reshuffled, unanswered copy of the paper with the given code.
func (s *paperService) ClonePaper(ctx context.Context, req dto.ClonePaperRequest) (*dto.PaperIssueResponse, error) {
	code, err := normalizePaperCode(req.PaperCode)
	if err != nil {
		return nil, err
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, newValidationError("userId", "is required")
	}

	papers, _, err := s.paperRepo.List(ctx, repository.PaperFilter{PaperCode: code})
	if err != nil {
		log.Error().Err(err).Str("paperCode", code).Msg("ClonePaper: Failed to look up paper code")
		return nil, storeError("list papers", err)
	}
	if len(papers) == 0 {
		return nil, ErrPaperNotFound
	}
	for i := range papers {
		if papers[i].UserID == userID {
			return s.duplicate(&papers[i])
		}
	}

	// papers are ordered by creation, so the first one is the original
	source := papers[0]
	questions := resetResponses(source.Questions)
	shuffle(questions, s.rng)

	clone := model.Paper{
		PaperCode: code,
		TradeID:   source.TradeID,
		TradeName: source.TradeName,
		Year:      source.Year,
		UserID:    userID,
		UserName:  strings.TrimSpace(req.UserName),
		Questions: questions,
		QuesCount: source.QuesCount,
	}
	if err := s.paperRepo.Create(ctx, &clone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent request from the same user won the race
			existing, _, lookupErr := s.paperRepo.List(ctx, repository.PaperFilter{PaperCode: code, UserID: userID, Limit: 1})
			if lookupErr == nil && len(existing) > 0 {
				return s.duplicate(&existing[0])
			}
		}
		log.Error().Err(err).Str("paperCode", code).Str("userID", userID).Msg("ClonePaper: Failed to create paper copy")
		return nil, storeError("create paper", err)
	}

	log.Info().Str("paperCode", code).Str("paperID", clone.ID).Str("sourceID", source.ID).Str("userID", userID).Msg("Paper cloned")
	return &dto.PaperIssueResponse{PaperID: code, DocumentID: clone.ID}, nil
}

func (s *paperService) duplicate(existing *model.Paper) (*dto.PaperIssueResponse, error) {
	if s.policy == DuplicatePolicyReject {
		return nil, ErrDuplicateAttempt
	}
	return &dto.PaperIssueResponse{
		PaperID:       existing.PaperCode,
		DocumentID:    existing.ID,
		Message:       alreadyGeneratedMessage,
		AlreadyExists: true,
	}, nil
}

// allocateCode re-rolls the random suffix while the code is already taken.
func (s *paperService) allocateCode(ctx context.Context, tradeName string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newPaperCode(tradeName, s.now(), s.rng)
		_, total, err := s.paperRepo.List(ctx, repository.PaperFilter{PaperCode: code, Limit: 1})
		if err != nil {
			return "", storeError("check paper code", err)
		}
		if total == 0 {
			return code, nil
		}
		log.Warn().Str("paperCode", code).Int("attempt", attempt+1).Msg("Paper code already in use, retrying")
	}
	return "", ErrCodeCollision
}

func (s *paperService) GetPaper(ctx context.Context, id string) (*dto.PaperDetailDTO, error) {
	paper, err := s.paperRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaperNotFound
		}
		log.Error().Err(err).Str("paperID", id).Msg("GetPaper: Failed to load paper")
		return nil, storeError("find paper", err)
	}

	var resp dto.PaperDetailDTO
	if err := copier.Copy(&resp, paper); err != nil {
		log.Error().Err(err).Msg("GetPaper: Failed to copy Paper model to PaperDetailDTO")
		return nil, fmt.Errorf("error preparing paper response: %w", err)
	}
	resp.Questions = make([]dto.PaperQuestionDTO, len(paper.Questions))
	for i, q := range paper.Questions {
		resp.Questions[i] = dto.PaperQuestionDTO{
			QuestionID: q.QuestionID,
			Prompt:     q.Prompt,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			Response:   q.Response,
		}
		// answers stay hidden until the paper is handed in
		if paper.Submitted {
			resp.Questions[i].CorrectAnswer = q.CorrectAnswer
		}
	}
	return &resp, nil
}

func (s *paperService) ListUserPapers(ctx context.Context, userID string) ([]dto.PaperSummaryDTO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newValidationError("userId", "is required")
	}
	papers, _, err := s.paperRepo.List(ctx, repository.PaperFilter{UserID: userID, NewestFirst: true})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListUserPapers: Failed to list papers")
		return nil, storeError("list papers", err)
	}

	dtos := make([]dto.PaperSummaryDTO, 0, len(papers))
	if err := copier.Copy(&dtos, &papers); err != nil {
		log.Error().Err(err).Msg("ListUserPapers: Failed to copy papers to summaries")
		return nil, fmt.Errorf("error preparing paper list: %w", err)
	}
	return dtos, nil
}

func toPaperQuestion(q model.Question) model.PaperQuestion {
	return model.PaperQuestion{
		QuestionID:    q.ID,
		Prompt:        q.Prompt,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		TradeID:       q.TradeID,
		Year:          q.Year,
		Response:      nil,
	}
}

// resetResponses copies questions with every response cleared.
func resetResponses(src []model.PaperQuestion) []model.PaperQuestion {
	out := make([]model.PaperQuestion, len(src))
	copy(out, src)
	for i := range out {
		out[i].Response = nil
	}
	return out
}
