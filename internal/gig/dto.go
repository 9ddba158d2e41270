package gig

import (
	"time"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

// ListQuery filters gigs. Category is free text matched exactly, since
// categories are managed data rather than a closed set.
type ListQuery struct {
	Search   string `query:"search" validate:"max=100"`
	Status   string `query:"status" validate:"omitempty,oneof=all pending approved rejected flagged"`
	Category string `query:"category" validate:"max=100"`
}

type SellerDTO struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type PackagesDTO struct {
	Basic    decimal.Decimal `json:"basic"`
	Standard decimal.Decimal `json:"standard"`
	Premium  decimal.Decimal `json:"premium"`
}

type GigDTO struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Category       string      `json:"category"`
	Seller         SellerDTO   `json:"seller"`
	Status         string      `json:"status"`
	SubmissionDate time.Time   `json:"submissionDate"`
	Packages       PackagesDTO `json:"packages"`
	Flags          []string    `json:"flags"`
	Reports        int         `json:"reports"`
}

func toDTO(g domain.Gig) GigDTO {
	flags := g.Flags
	if flags == nil {
		flags = []string{}
	}
	return GigDTO{
		ID:       g.ID,
		Title:    g.Title,
		Category: g.Category,
		Seller: SellerDTO{
			Name:   g.SellerName,
			Rating: g.SellerRating,
		},
		Status:         string(g.Status),
		SubmissionDate: g.SubmissionDate,
		Packages: PackagesDTO{
			Basic:    g.Packages.Basic,
			Standard: g.Packages.Standard,
			Premium:  g.Packages.Premium,
		},
		Flags:   flags,
		Reports: g.Reports,
	}
}
