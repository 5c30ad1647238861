package usecase

import (
	"context"

	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
)

// PointUseCase defines the wallet operations exposed to the API layer
type PointUseCase interface {
	// GetPoint returns the current balance for the user (zeroed if unseen)
	GetPoint(ctx context.Context, id int64) (entity.UserPoint, error)

	// GetHistories returns the user's point history in commit order
	GetHistories(ctx context.Context, id int64) ([]entity.PointHistory, error)

	// Charge credits the given amount and returns the resulting balance
	Charge(ctx context.Context, id int64, amount int64) (entity.UserPoint, error)

	// Use debits the given amount and returns the resulting balance
	Use(ctx context.Context, id int64, amount int64) (entity.UserPoint, error)
}
