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

type TradeService interface {
	CreateTrade(ctx context.Context, req dto.TradeCreateDTO) (*dto.TradeResponseDTO, error)
	GetTrade(ctx context.Context, id uint) (*dto.TradeResponseDTO, error)
	ListTrades(ctx context.Context) ([]dto.TradeResponseDTO, error)
}

type tradeService struct {
	tradeRepo repository.TradeRepository
}

func NewTradeService(tradeRepo repository.TradeRepository) TradeService {
	return &tradeService{tradeRepo: tradeRepo}
}

func (s *tradeService) CreateTrade(ctx context.Context, req dto.TradeCreateDTO) (*dto.TradeResponseDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, newValidationError("name", "is required")
	}
	trade := model.Trade{Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.tradeRepo.Create(ctx, &trade); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newValidationError("name", "trade %q already exists", name)
		}
		log.Error().Err(err).Str("name", name).Msg("Failed to create trade in database")
		return nil, storeError("create trade", err)
	}

	var resp dto.TradeResponseDTO
	if err := copier.Copy(&resp, &trade); err != nil {
		return nil, fmt.Errorf("error preparing trade response: %w", err)
	}
	return &resp, nil
}

func (s *tradeService) GetTrade(ctx context.Context, id uint) (*dto.TradeResponseDTO, error) {
	trade, err := s.tradeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, storeError("find trade", err)
	}
	var resp dto.TradeResponseDTO
	if err := copier.Copy(&resp, trade); err != nil {
		return nil, fmt.Errorf("error preparing trade response: %w", err)
	}
	return &resp, nil
}

func (s *tradeService) ListTrades(ctx context.Context) ([]dto.TradeResponseDTO, error) {
	trades, err := s.tradeRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list trades")
		return nil, storeError("list trades", err)
	}
	resp := make([]dto.TradeResponseDTO, 0, len(trades))
	if err := copier.Copy(&resp, &trades); err != nil {
		return nil, fmt.Errorf("error preparing trade list: %w", err)
	}
	return resp, nil
}
