package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDisputed  OrderStatus = "disputed"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusActive,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusDisputed,
}

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID                  string
	GigTitle            string
	BuyerName           string
	SellerName          string
	Status              OrderStatus
	Amount              decimal.Decimal
	Package             string
	PaymentStatus       PaymentStatus
	OrderDate           time.Time
	DeliveryDate        time.Time
	HasDispute          bool
	Messages            int
	MilestonesTotal     int
	MilestonesCompleted int
}

// Progress is the share of completed milestones as a percentage.
func (o Order) Progress() float64 {
	if o.MilestonesTotal <= 0 {
		return 0
	}
	return float64(o.MilestonesCompleted) / float64(o.MilestonesTotal) * 100
}
