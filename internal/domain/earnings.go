package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeOrder  TransactionType = "order"
	TransactionTypeRefund TransactionType = "refund"
	TransactionTypeFee    TransactionType = "fee"
	TransactionTypePayout TransactionType = "payout"
)

var TransactionTypes = []TransactionType{
	TransactionTypeOrder,
	TransactionTypeRefund,
	TransactionTypeFee,
	TransactionTypePayout,
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

var TransactionStatuses = []TransactionStatus{
	TransactionStatusCompleted,
	TransactionStatusPending,
	TransactionStatusFailed,
}

// Transaction amounts are signed: refunds and payouts are negative.
type Transaction struct {
	ID          string
	Type        TransactionType
	Description string
	Party       string
	Amount      decimal.Decimal
	Fee         decimal.Decimal
	NetAmount   decimal.Decimal
	Date        time.Time
	Status      TransactionStatus
	OrderID     *string
}

type PayoutStatus string

const (
	PayoutStatusScheduled  PayoutStatus = "scheduled"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusCompleted  PayoutStatus = "completed"
	PayoutStatusFailed     PayoutStatus = "failed"
)

var PayoutStatuses = []PayoutStatus{
	PayoutStatusScheduled,
	PayoutStatusProcessing,
	PayoutStatusCompleted,
	PayoutStatusFailed,
}

type Payout struct {
	ID            string
	Seller        string
	Amount        decimal.Decimal
	Status        PayoutStatus
	ScheduledDate time.Time
	CompletedDate *time.Time
	Method        string
	Orders        int
}
