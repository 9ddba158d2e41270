package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GigStatus string

const (
	GigStatusPending  GigStatus = "pending"
	GigStatusApproved GigStatus = "approved"
	GigStatusRejected GigStatus = "rejected"
	GigStatusFlagged  GigStatus = "flagged"
)

var GigStatuses = []GigStatus{
	GigStatusPending,
	GigStatusApproved,
	GigStatusRejected,
	GigStatusFlagged,
}

type GigPackages struct {
	Basic    decimal.Decimal
	Standard decimal.Decimal
	Premium  decimal.Decimal
}

type Gig struct {
	ID             string
	Title          string
	Category       string
	SellerName     string
	SellerRating   float64
	Status         GigStatus
	SubmissionDate time.Time
	Packages       GigPackages
	Flags          []string
	Reports        int
}
