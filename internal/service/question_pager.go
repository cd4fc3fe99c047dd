package service

import (
	"context"
	"fmt"

	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPageSize = 100
	DefaultMaxPages = 1000
)

// QuestionPager materializes a whole question pool from the paginated store.
type QuestionPager struct {
	repo     repository.QuestionRepository
	pageSize int
	maxPages int
}

func NewQuestionPager(repo repository.QuestionRepository, pageSize, maxPages int) *QuestionPager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &QuestionPager{repo: repo, pageSize: pageSize, maxPages: maxPages}
}

// FetchAll pages through the store until the reported total is reached or a
// page comes back empty. It fails closed after maxPages pages.
func (p *QuestionPager) FetchAll(ctx context.Context, filter repository.QuestionFilter) ([]model.Question, error) {
	var (
		all    []model.Question
		seen   = make(map[uint]struct{})
		offset int
	)
	for page := 0; ; page++ {
		if page >= p.maxPages {
			log.Error().Uint("tradeID", filter.TradeID).Int("year", filter.Year).Int("pages", page).Msg("FetchAll: page limit reached before pool was exhausted")
			return nil, fmt.Errorf("%w: stopped after %d pages", ErrPageLimitExceeded, page)
		}

		items, total, err := p.repo.List(ctx, filter, p.pageSize, offset)
		if err != nil {
			return nil, storeError("list questions", err)
		}
		for _, q := range items {
			if _, dup := seen[q.ID]; dup {
				continue
			}
			seen[q.ID] = struct{}{}
			all = append(all, q)
		}
		offset += len(items)

		if offset >= int(total) {
			return all, nil
		}
		if len(items) == 0 {
			log.Warn().Uint("tradeID", filter.TradeID).Int("year", filter.Year).Int64("reportedTotal", total).Int("fetched", len(all)).Msg("FetchAll: store returned an empty page before its reported total")
			return all, nil
		}
	}
}
