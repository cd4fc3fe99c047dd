package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/itimock/config"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// QuestionDraftService asks Gemini for multiple-choice drafts that an admin
// reviews before adding them to the bank.
type QuestionDraftService interface {
	DraftQuestions(ctx context.Context, req dto.QuestionDraftRequestDTO) ([]dto.QuestionCreateDTO, error)
}

// contentGenerator is the part of *genai.GenerativeModel the service needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type questionDraftService struct {
	model     contentGenerator
	tradeRepo repository.TradeRepository
}

func NewQuestionDraftService(cfg *config.Config, tradeRepo repository.TradeRepository) (QuestionDraftService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question drafting will be unavailable.")
		return &questionDraftService{tradeRepo: tradeRepo}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel(cfg.GeminiModel)
	gm.ResponseMIMEType = "application/json"
	return &questionDraftService{model: gm, tradeRepo: tradeRepo}, nil
}

func (s *questionDraftService) DraftQuestions(ctx context.Context, req dto.QuestionDraftRequestDTO) ([]dto.QuestionCreateDTO, error) {
	if s.model == nil {
		return nil, ErrDraftingUnavailable
	}
	trade, err := s.tradeRepo.FindByID(ctx, req.TradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, storeError("find trade", err)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(draftPrompt(trade.Name, req.Year, req.Topic, req.Count)))
	if err != nil {
		log.Error().Err(err).Str("trade", trade.Name).Msg("Gemini API error while drafting questions")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	drafts, err := parseDrafts(raw.String(), req.TradeID, req.Year)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw.String()).Msg("Failed to parse question drafts from Gemini response")
		return nil, err
	}
	if len(drafts) > req.Count {
		drafts = drafts[:req.Count]
	}
	return drafts, nil
}

func draftPrompt(tradeName string, year int, topic string, count int) string {
	var b strings.Builder
	b.WriteString("You are an experienced ITI (Industrial Training Institute) instructor writing CTS trade theory mock-test questions.\n")
	fmt.Fprintf(&b, "Trade: %s\nYear: %d\nTopic: %s\n\n", tradeName, year, topic)
	fmt.Fprintf(&b, "Write %d multiple-choice questions. Each question has exactly four options and one correct option.\n", count)
	b.WriteString("Respond with a JSON array only, no prose, where every element looks like:\n")
	b.WriteString(`{"prompt": "question text", "options": ["first", "second", "third", "fourth"], "correct_answer": "A"}`)
	b.WriteString("\ncorrect_answer is the letter (A, B, C or D) of the correct option.\n")
	return b.String()
}

type draftItem struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// parseDrafts decodes the model's JSON array, tolerating a markdown code fence,
// and drops malformed items.
func parseDrafts(raw string, tradeID uint, year int) ([]dto.QuestionCreateDTO, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		if nl := strings.Index(text, "\n"); nl != -1 {
			text = text[nl+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	var items []draftItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("draft response is not a JSON array: %w", err)
	}

	drafts := make([]dto.QuestionCreateDTO, 0, len(items))
	for i, it := range items {
		answer := strings.ToUpper(strings.TrimSpace(it.CorrectAnswer))
		if len(answer) > 1 {
			answer = answer[:1]
		}
		if strings.TrimSpace(it.Prompt) == "" || len(it.Options) != 4 || !model.IsAnswerLabel(answer) {
			log.Warn().Int("index", i).Msg("Skipping malformed question draft")
			continue
		}
		drafts = append(drafts, dto.QuestionCreateDTO{
			TradeID:       tradeID,
			Year:          year,
			Prompt:        strings.TrimSpace(it.Prompt),
			OptionA:       strings.TrimSpace(it.Options[0]),
			OptionB:       strings.TrimSpace(it.Options[1]),
			OptionC:       strings.TrimSpace(it.Options[2]),
			OptionD:       strings.TrimSpace(it.Options[3]),
			CorrectAnswer: answer,
		})
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("draft response contained no usable questions")
	}
	return drafts, nil
}
