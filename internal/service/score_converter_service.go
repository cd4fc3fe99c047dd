package service

import "math"

// PassPercentage is the ITI pass mark for a mock test.
const PassPercentage float64 = 33.0

type ScoreConverterService interface {
	ToPercentage(score, total int) float64
	IsPass(percentage float64) bool
}

type scoreConverterServiceImpl struct {
	passMark float64
}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{passMark: PassPercentage}
}

// ToPercentage converts a raw score to a percentage rounded to two decimals.
// Out of range scores are clamped.
func (s *scoreConverterServiceImpl) ToPercentage(score, total int) float64 {
	if total <= 0 || score <= 0 {
		return 0
	}
	if score > total {
		score = total
	}
	pct := float64(score) / float64(total) * 100
	return math.Round(pct*100) / 100
}

func (s *scoreConverterServiceImpl) IsPass(percentage float64) bool {
	return percentage >= s.passMark
}
