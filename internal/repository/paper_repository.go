package repository

import (
	"context"
	"time"

	"github.com/lshigami/itimock/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaperFilter narrows a paper listing. Zero values are ignored.
type PaperFilter struct {
	PaperCode   string
	TradeID     uint
	Year        int
	UserID      string
	Submitted   *bool
	Limit       int
	Offset      int
	NewestFirst bool
}

// LeaderboardFilter selects submitted papers either by code or by trade and year.
type LeaderboardFilter struct {
	PaperCode string
	TradeID   uint
	Year      int
	Limit     int
}

type PaperRepository interface {
	Create(ctx context.Context, paper *model.Paper) error
	FindByID(ctx context.Context, id string) (*model.Paper, error)
	List(ctx context.Context, filter PaperFilter) ([]model.Paper, int64, error)
	// Submit records graded responses only if the paper is still unsubmitted.
	// It reports false when another submission got there first.
	Submit(ctx context.Context, id string, questions []model.PaperQuestion, score int, at time.Time) (bool, error)
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]model.Paper, error)
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(ctx context.Context, paper *model.Paper) error {
	return r.db.WithContext(ctx).Create(paper).Error
}

func (r *paperRepository) FindByID(ctx context.Context, id string) (*model.Paper, error) {
	var paper model.Paper
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *paperRepository) List(ctx context.Context, filter PaperFilter) ([]model.Paper, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Paper{})
	if filter.PaperCode != "" {
		query = query.Where("paper_code = ?", filter.PaperCode)
	}
	if filter.TradeID != 0 {
		query = query.Where("trade_id = ?", filter.TradeID)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Submitted != nil {
		query = query.Where("submitted = ?", *filter.Submitted)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.NewestFirst {
		query = query.Order("created_at DESC").Order("id DESC")
	} else {
		query = query.Order("created_at ASC").Order("id ASC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var papers []model.Paper
	if err := query.Find(&papers).Error; err != nil {
		return nil, 0, err
	}
	return papers, total, nil
}

func (r *paperRepository) Submit(ctx context.Context, id string, questions []model.PaperQuestion, score int, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Paper{}).
		Where("id = ? AND submitted = ?", id, false).
		Updates(map[string]interface{}{
			"questions":    datatypes.JSONSlice[model.PaperQuestion](questions),
			"score":        score,
			"submitted":    true,
			"submitted_at": at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *paperRepository) Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]model.Paper, error) {
	query := r.db.WithContext(ctx).Where("submitted = ?", true)
	if filter.PaperCode != "" {
		query = query.Where("paper_code = ?", filter.PaperCode)
	}
	if filter.TradeID != 0 {
		query = query.Where("trade_id = ?", filter.TradeID)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var papers []model.Paper
	err := query.
		Order("score DESC").
		Order("submitted_at ASC").
		Limit(filter.Limit).
		Find(&papers).Error
	return papers, err
}
