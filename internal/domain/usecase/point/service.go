package point

import (
	"context"

	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/entity"
	errs "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
	coreport "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/core"
	"github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/port/persistence"
)

// Service orchestrates the point wallet: it validates inputs and combines
// the balance table and the history table under a per-user lock so that
// concurrent charges and uses for the same user are serialized.
type Service struct {
	userPoints persistence.UserPointTable
	histories  persistence.PointHistoryTable
	validator  *PointValidator
	userLocks  *KeyedMutex
	logger     coreport.Logger
}

// NewService creates the wallet service on top of the given tables
func NewService(
	userPoints persistence.UserPointTable,
	histories persistence.PointHistoryTable,
	logger coreport.Logger,
) *Service {
	return &Service{
		userPoints: userPoints,
		histories:  histories,
		validator:  NewPointValidator(),
		userLocks:  NewKeyedMutex(),
		logger:     logger,
	}
}

// GetPoint returns the current balance for the user. Unseen users get a
// zero-balance record; the read does not create any state.
func (s *Service) GetPoint(ctx context.Context, id int64) (entity.UserPoint, error) {
	if err := s.validator.ValidateUserID(id); err != nil {
		return entity.UserPoint{}, err
	}

	return s.userPoints.SelectByID(id), nil
}

// GetHistories returns the user's point history in commit order, possibly
// empty. Like GetPoint it leaves the tables untouched.
func (s *Service) GetHistories(ctx context.Context, id int64) ([]entity.PointHistory, error) {
	if err := s.validator.ValidateUserID(id); err != nil {
		return nil, err
	}

	return s.histories.SelectByUserID(id), nil
}

// Charge credits the given amount to the user's balance and records a
// CHARGE history entry stamped with the commit time of the new balance.
func (s *Service) Charge(ctx context.Context, id int64, amount int64) (entity.UserPoint, error) {
	if err := s.validator.ValidateCharge(id, amount); err != nil {
		return entity.UserPoint{}, err
	}

	s.userLocks.Lock(id)
	defer s.userLocks.Unlock(id)

	// Read, compute and commit under the user's lock so the sequence cannot
	// straddle another writer's update.
	current := s.userPoints.SelectByID(id)
	updated := s.userPoints.Upsert(id, current.Point+amount)

	// The history entry carries the committed timestamp, not a resampled clock.
	s.histories.Append(id, amount, entity.TransactionTypeCharge, updated.UpdateMillis)

	s.logger.Info("Point charged", map[string]any{
		"user_id": id,
		"amount":  amount,
		"balance": updated.Point,
	})

	return updated, nil
}

// Use debits the given amount from the user's balance and records a USE
// history entry. The balance check runs inside the critical section; on
// insufficient balance nothing is written.
func (s *Service) Use(ctx context.Context, id int64, amount int64) (entity.UserPoint, error) {
	if err := s.validator.ValidateUse(id, amount); err != nil {
		return entity.UserPoint{}, err
	}

	s.userLocks.Lock(id)
	defer s.userLocks.Unlock(id)

	current := s.userPoints.SelectByID(id)
	if !current.CanUse(amount) {
		return entity.UserPoint{}, errs.NewInsufficientBalanceError(id, amount, current.Point)
	}

	updated := s.userPoints.Upsert(id, current.Point-amount)
	s.histories.Append(id, amount, entity.TransactionTypeUse, updated.UpdateMillis)

	s.logger.Info("Point used", map[string]any{
		"user_id": id,
		"amount":  amount,
		"balance": updated.Point,
	})

	return updated, nil
}
