package service

import (
	"context"

	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, q dto.LeaderboardQuery) ([]dto.LeaderboardEntryDTO, error)
}

type leaderboardService struct {
	paperRepo      repository.PaperRepository
	scoreConverter ScoreConverterService
}

func NewLeaderboardService(paperRepo repository.PaperRepository, scoreConverter ScoreConverterService) LeaderboardService {
	return &leaderboardService{paperRepo: paperRepo, scoreConverter: scoreConverter}
}

// GetLeaderboard ranks submitted papers by score; equal scores share a rank.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, q dto.LeaderboardQuery) ([]dto.LeaderboardEntryDTO, error) {
	filter := repository.LeaderboardFilter{TradeID: q.TradeID, Year: q.Year}
	if q.PaperCode != "" {
		code, err := normalizePaperCode(q.PaperCode)
		if err != nil {
			return nil, err
		}
		filter.PaperCode = code
	} else if q.TradeID == 0 {
		return nil, newValidationError("", "paper_code or trade_id is required")
	}

	filter.Limit = q.Limit
	if filter.Limit <= 0 {
		filter.Limit = defaultLeaderboardLimit
	}
	if filter.Limit > maxLeaderboardLimit {
		filter.Limit = maxLeaderboardLimit
	}

	papers, err := s.paperRepo.Leaderboard(ctx, filter)
	if err != nil {
		log.Error().Err(err).Interface("filter", filter).Msg("GetLeaderboard: Failed to load submitted papers")
		return nil, storeError("leaderboard", err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(papers))
	rank, prev := 0, -1
	for i, p := range papers {
		score := 0
		if p.Score != nil {
			score = *p.Score
		}
		total := len(p.Questions)
		if total == 0 {
			total = p.QuesCount
		}
		if i == 0 || score != prev {
			rank = i + 1
			prev = score
		}
		entry := dto.LeaderboardEntryDTO{
			Rank:       rank,
			PaperID:    p.ID,
			PaperCode:  p.PaperCode,
			UserID:     p.UserID,
			UserName:   p.UserName,
			TradeName:  p.TradeName,
			Score:      score,
			QuesCount:  total,
			Percentage: s.scoreConverter.ToPercentage(score, total),
		}
		if p.SubmittedAt != nil {
			entry.SubmittedAt = *p.SubmittedAt
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
