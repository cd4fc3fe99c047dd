package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"gorm.io/gorm"
)

/* ---------------- In-memory fakes that satisfy the repository interfaces ---------------- */

type fakeTradeRepo struct {
	trades map[uint]model.Trade
}

func newFakeTradeRepo(trades ...model.Trade) *fakeTradeRepo {
	r := &fakeTradeRepo{trades: map[uint]model.Trade{}}
	for _, t := range trades {
		r.trades[t.ID] = t
	}
	return r
}

func (r *fakeTradeRepo) Create(_ context.Context, trade *model.Trade) error {
	for _, t := range r.trades {
		if t.Name == trade.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	trade.ID = uint(len(r.trades) + 1)
	r.trades[trade.ID] = *trade
	return nil
}

func (r *fakeTradeRepo) FindByID(_ context.Context, id uint) (*model.Trade, error) {
	t, ok := r.trades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *fakeTradeRepo) FindAll(_ context.Context) ([]model.Trade, error) {
	out := make([]model.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
	listCalls int
	// totalOverride makes List report a wrong total, like a stale store.
	totalOverride int64
	// endless makes List return fresh items forever.
	endless bool
	listErr error
}

func newFakeQuestionRepo(tradeID uint, year, n int) *fakeQuestionRepo {
	r := &fakeQuestionRepo{}
	r.add(tradeID, year, n)
	return r
}

func (r *fakeQuestionRepo) add(tradeID uint, year, n int) {
	labels := model.AnswerLabels
	for i := 0; i < n; i++ {
		id := uint(len(r.questions) + 1)
		r.questions = append(r.questions, model.Question{
			ID:            id,
			TradeID:       tradeID,
			Year:          year,
			Prompt:        "question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: labels[int(id)%len(labels)],
		})
	}
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	q.ID = uint(len(r.questions) + 1)
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) CreateBatch(_ context.Context, qs []model.Question) error {
	for i := range qs {
		qs[i].ID = uint(len(r.questions) + 1)
		r.questions = append(r.questions, qs[i])
	}
	return nil
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) List(_ context.Context, f repository.QuestionFilter, limit, offset int) ([]model.Question, int64, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	if r.endless {
		page := make([]model.Question, limit)
		for i := range page {
			page[i] = model.Question{ID: uint(offset + i + 1)}
		}
		return page, int64(offset + 10*limit), nil
	}
	var matched []model.Question
	for _, q := range r.questions {
		if (f.TradeID == 0 || q.TradeID == f.TradeID) && (f.Year == 0 || q.Year == f.Year) {
			matched = append(matched, q)
		}
	}
	total := int64(len(matched))
	if r.totalOverride != 0 {
		total = r.totalOverride
	}
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], total, nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakePaperRepo enforces the (paper_code, user_id) unique index like the real table.
type fakePaperRepo struct {
	mu        sync.Mutex
	papers    []model.Paper
	creates   int
	createErr error
	// hideUserFromList simulates a read that happens before a concurrent write lands.
	hideUserFromList string
}

func (r *fakePaperRepo) Create(_ context.Context, p *model.Paper) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.papers {
		if existing.PaperCode == p.PaperCode && existing.UserID == p.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now().Add(time.Duration(len(r.papers)) * time.Millisecond)
	r.creates++
	r.papers = append(r.papers, *p)
	return nil
}

func (r *fakePaperRepo) FindByID(_ context.Context, id string) (*model.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.papers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePaperRepo) List(_ context.Context, f repository.PaperFilter) ([]model.Paper, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Paper
	for _, p := range r.papers {
		if f.PaperCode != "" && p.PaperCode != f.PaperCode {
			continue
		}
		if f.UserID != "" && p.UserID != f.UserID {
			continue
		}
		if f.Submitted != nil && p.Submitted != *f.Submitted {
			continue
		}
		if r.hideUserFromList != "" && p.UserID == r.hideUserFromList && f.UserID == "" {
			continue
		}
		out = append(out, p)
	}
	if f.NewestFirst {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	total := int64(len(out))
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, total, nil
}

func (r *fakePaperRepo) Submit(_ context.Context, id string, qs []model.PaperQuestion, score int, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.papers {
		if r.papers[i].ID != id {
			continue
		}
		if r.papers[i].Submitted {
			return false, nil
		}
		r.papers[i].Questions = qs
		r.papers[i].Score = &score
		r.papers[i].Submitted = true
		r.papers[i].SubmittedAt = &at
		return true, nil
	}
	return false, errors.New("no such paper")
}

func (r *fakePaperRepo) Leaderboard(_ context.Context, f repository.LeaderboardFilter) ([]model.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Paper
	for _, p := range r.papers {
		if !p.Submitted {
			continue
		}
		if f.PaperCode != "" && p.PaperCode != f.PaperCode {
			continue
		}
		if f.TradeID != 0 && p.TradeID != f.TradeID {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if *out[i].Score != *out[j].Score {
			return *out[i].Score > *out[j].Score
		}
		return out[i].SubmittedAt.Before(*out[j].SubmittedAt)
	})
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakePaperRepo) countFor(code, userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, p := range r.papers {
		if p.PaperCode == code && p.UserID == userID {
			n++
		}
	}
	return n
}
