package earnings

import (
	"time"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

type TransactionQuery struct {
	Search string `query:"search" validate:"max=100"`
	Type   string `query:"type" validate:"omitempty,oneof=all order refund fee payout"`
	Status string `query:"status" validate:"omitempty,oneof=all completed pending failed"`
	Date   string `query:"date" validate:"omitempty,oneof=all today week month"`
}

type PayoutQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status" validate:"omitempty,oneof=all scheduled processing completed failed"`
}

type TransactionDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Party       string          `json:"party"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	OrderID     *string         `json:"orderId,omitempty"`
}

type PayoutDTO struct {
	ID            string          `json:"id"`
	Seller        string          `json:"seller"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ScheduledDate time.Time       `json:"scheduledDate"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	Method        string          `json:"method"`
	Orders        int             `json:"orders"`
}

func toTransactionDTO(t domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Party:       t.Party,
		Amount:      t.Amount,
		Fee:         t.Fee,
		NetAmount:   t.NetAmount,
		Date:        t.Date,
		Status:      string(t.Status),
		OrderID:     t.OrderID,
	}
}

func toPayoutDTO(p domain.Payout) PayoutDTO {
	return PayoutDTO{
		ID:            p.ID,
		Seller:        p.Seller,
		Amount:        p.Amount,
		Status:        string(p.Status),
		ScheduledDate: p.ScheduledDate,
		CompletedDate: p.CompletedDate,
		Method:        p.Method,
		Orders:        p.Orders,
	}
}
