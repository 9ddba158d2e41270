package buyer

import (
	"time"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

type ListQuery struct {
	Search   string `query:"search" validate:"max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=all active suspended pending"`
	Spending string `query:"spending" validate:"omitempty,oneof=all low medium high"`
}

type BuyerDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Status           string          `json:"status"`
	TotalOrders      int             `json:"totalOrders"`
	LastOrderDate    *time.Time      `json:"lastOrderDate"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	SpendingTier     string          `json:"spendingTier"`
}

type SummaryDTO struct {
	TotalBuyers  int             `json:"totalBuyers"`
	ActiveBuyers int             `json:"activeBuyers"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}

type ListResponse struct {
	Items   []BuyerDTO `json:"items"`
	Total   int        `json:"total"`
	Summary SummaryDTO `json:"summary"`
}

func toDTO(b domain.Buyer) BuyerDTO {
	return BuyerDTO{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		RegistrationDate: b.RegistrationDate,
		Status:           string(b.Status),
		TotalOrders:      b.TotalOrders,
		LastOrderDate:    b.LastOrderDate,
		TotalSpent:       b.TotalSpent,
		SpendingTier:     string(b.SpendingTier()),
	}
}
