package point

import (
	errs "github.com/ji-0o0o0o0/hhplus-tdd/internal/domain/error"
)

// Business rule limits for point operations
const (
	// MaxChargeAmount is the maximum amount a single charge may credit
	MaxChargeAmount int64 = 1_000_000
	// MinUseAmount is the minimum amount a single use must debit
	MinUseAmount int64 = 100
	// UseAmountUnit is the unit use amounts must be a multiple of
	UseAmountUnit int64 = 10
)

// PointValidator provides validation for point operations.
// Rules are applied in a fixed order; the first violated rule wins.
type PointValidator struct{}

// NewPointValidator creates a new PointValidator
func NewPointValidator() *PointValidator {
	return &PointValidator{}
}

// ValidateUserID checks that the user ID is a positive integer
func (v *PointValidator) ValidateUserID(id int64) error {
	if id <= 0 {
		return errs.ErrInvalidUserID
	}
	return nil
}

// ValidateCharge checks the rules for crediting points: positive ID,
// positive amount, then the per-charge limit
func (v *PointValidator) ValidateCharge(id, amount int64) error {
	if err := v.ValidateUserID(id); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > MaxChargeAmount {
		return errs.ErrChargeLimitExceeded
	}
	return nil
}

// ValidateUse checks the rules for debiting points: positive ID, positive
// amount, the minimum, then the unit. The balance check is not part of
// this validator; it runs inside the per-user critical section.
func (v *PointValidator) ValidateUse(id, amount int64) error {
	if err := v.ValidateUserID(id); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount < MinUseAmount {
		return errs.ErrUseBelowMinimum
	}
	if amount%UseAmountUnit != 0 {
		return errs.ErrUseNotMultipleOfTen
	}
	return nil
}
