package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisputeStatus string

const (
	DisputeStatusOpen      DisputeStatus = "open"
	DisputeStatusInReview  DisputeStatus = "in_review"
	DisputeStatusResolved  DisputeStatus = "resolved"
	DisputeStatusEscalated DisputeStatus = "escalated"
)

var DisputeStatuses = []DisputeStatus{
	DisputeStatusOpen,
	DisputeStatusInReview,
	DisputeStatusResolved,
	DisputeStatusEscalated,
}

type DisputePriority string

const (
	DisputePriorityLow    DisputePriority = "low"
	DisputePriorityMedium DisputePriority = "medium"
	DisputePriorityHigh   DisputePriority = "high"
)

var DisputePriorities = []DisputePriority{
	DisputePriorityLow,
	DisputePriorityMedium,
	DisputePriorityHigh,
}

type Dispute struct {
	ID             string
	OrderID        string
	GigTitle       string
	BuyerName      string
	SellerName     string
	Status         DisputeStatus
	Priority       DisputePriority
	Reason         string
	Amount         decimal.Decimal
	OpenedDate     time.Time
	LastActivityAt time.Time
	Description    string
	EvidenceCount  int
	AdminNotes     []string
}
