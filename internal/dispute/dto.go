package dispute

import (
	"time"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

type ListQuery struct {
	Search   string `query:"search" validate:"max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=all open in_review resolved escalated"`
	Priority string `query:"priority" validate:"omitempty,oneof=all low medium high"`
}

type DisputeDTO struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"orderId"`
	GigTitle       string          `json:"gigTitle"`
	Buyer          string          `json:"buyer"`
	Seller         string          `json:"seller"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	Reason         string          `json:"reason"`
	Amount         decimal.Decimal `json:"amount"`
	OpenedDate     time.Time       `json:"openedDate"`
	LastActivityAt time.Time       `json:"lastActivityAt"`
}

type DisputeDetailsDTO struct {
	DisputeDTO
	Description   string   `json:"description"`
	EvidenceCount int      `json:"evidenceCount"`
	AdminNotes    []string `json:"adminNotes"`
}

type CountsDTO struct {
	Open      int `json:"open"`
	InReview  int `json:"inReview"`
	Resolved  int `json:"resolved"`
	Escalated int `json:"escalated"`
}

type ListResponse struct {
	Items  []DisputeDTO `json:"items"`
	Total  int          `json:"total"`
	Counts CountsDTO    `json:"counts"`
}

func toDTO(d domain.Dispute) DisputeDTO {
	return DisputeDTO{
		ID:             d.ID,
		OrderID:        d.OrderID,
		GigTitle:       d.GigTitle,
		Buyer:          d.BuyerName,
		Seller:         d.SellerName,
		Status:         string(d.Status),
		Priority:       string(d.Priority),
		Reason:         d.Reason,
		Amount:         d.Amount,
		OpenedDate:     d.OpenedDate,
		LastActivityAt: d.LastActivityAt,
	}
}

func toDetailsDTO(d domain.Dispute) DisputeDetailsDTO {
	notes := d.AdminNotes
	if notes == nil {
		notes = []string{}
	}
	return DisputeDetailsDTO{
		DisputeDTO:    toDTO(d),
		Description:   d.Description,
		EvidenceCount: d.EvidenceCount,
		AdminNotes:    notes,
	}
}
