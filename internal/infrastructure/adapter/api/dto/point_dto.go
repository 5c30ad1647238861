package dto

import (
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
)

// UserPointResponse represents the API response for a user's balance
type UserPointResponse struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

// NewUserPointResponse converts a domain record into its API shape
func NewUserPointResponse(p entity.UserPoint) UserPointResponse {
	return UserPointResponse{
		ID:           p.ID,
		Point:        p.Point,
		UpdateMillis: p.UpdateMillis,
	}
}

// PointHistoryResponse represents a single history entry in the API
type PointHistoryResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Amount       int64  `json:"amount"`
	Type         string `json:"type"`
	UpdateMillis int64  `json:"updateMillis"`
}

// NewPointHistoryResponses converts domain history entries into their API
// shape, preserving order. An empty history serializes as [] rather than null.
func NewPointHistoryResponses(histories []entity.PointHistory) []PointHistoryResponse {
	result := make([]PointHistoryResponse, 0, len(histories))
	for _, h := range histories {
		result = append(result, PointHistoryResponse{
			ID:           h.ID,
			UserID:       h.UserID,
			Amount:       h.Amount,
			Type:         h.Type.String(),
			UpdateMillis: h.UpdateMillis,
		})
	}
	return result
}
