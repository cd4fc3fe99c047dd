package repository

import (
	"context"

	"github.com/lshigami/itimock/internal/model"
	"gorm.io/gorm"
)

type TradeRepository interface {
	Create(ctx context.Context, trade *model.Trade) error
	FindByID(ctx context.Context, id uint) (*model.Trade, error)
	FindAll(ctx context.Context) ([]model.Trade, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) FindByID(ctx context.Context, id uint) (*model.Trade, error) {
	var trade model.Trade
	if err := r.db.WithContext(ctx).First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) FindAll(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}
