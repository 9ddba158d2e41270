package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is shared by students and buyers.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusPending   AccountStatus = "pending"
)

var AccountStatuses = []AccountStatus{
	AccountStatusActive,
	AccountStatusSuspended,
	AccountStatusPending,
}

type ProfileLevel string

const (
	ProfileLevelBeginner     ProfileLevel = "beginner"
	ProfileLevelIntermediate ProfileLevel = "intermediate"
	ProfileLevelExpert       ProfileLevel = "expert"
)

var ProfileLevels = []ProfileLevel{
	ProfileLevelBeginner,
	ProfileLevelIntermediate,
	ProfileLevelExpert,
}

type Student struct {
	ID               string
	Name             string
	Email            string
	RegistrationDate time.Time
	Status           AccountStatus
	GigsCount        int
	ProfileLevel     ProfileLevel
}

type SpendingTier string

const (
	SpendingTierLow    SpendingTier = "low"
	SpendingTierMedium SpendingTier = "medium"
	SpendingTierHigh   SpendingTier = "high"
)

var SpendingTiers = []SpendingTier{
	SpendingTierLow,
	SpendingTierMedium,
	SpendingTierHigh,
}

var (
	mediumSpendingFloor = decimal.NewFromInt(500)
	highSpendingFloor   = decimal.NewFromInt(2000)
)

type Buyer struct {
	ID               string
	Name             string
	Email            string
	RegistrationDate time.Time
	Status           AccountStatus
	TotalOrders      int
	LastOrderDate    *time.Time
	TotalSpent       decimal.Decimal
}

// SpendingTier buckets total spend: low below 500, medium below 2000,
// high otherwise.
func (b Buyer) SpendingTier() SpendingTier {
	switch {
	case b.TotalSpent.LessThan(mediumSpendingFloor):
		return SpendingTierLow
	case b.TotalSpent.LessThan(highSpendingFloor):
		return SpendingTierMedium
	default:
		return SpendingTierHigh
	}
}
