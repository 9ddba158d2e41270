package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListOrdersQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status" validate:"omitempty,oneof=all pending active delivered completed cancelled disputed"`
	Date   string `query:"date" validate:"omitempty,oneof=all today week month"`
}

type OrderDTO struct {
	ID            string          `json:"id"`
	GigTitle      string          `json:"gigTitle"`
	Buyer         string          `json:"buyer"`
	Seller        string          `json:"seller"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Package       string          `json:"package"`
	PaymentStatus string          `json:"paymentStatus"`
	OrderDate     time.Time       `json:"orderDate"`
	DeliveryDate  time.Time       `json:"deliveryDate"`
	HasDispute    bool            `json:"hasDispute"`
	Messages      int             `json:"messages"`
}

type MilestonesDTO struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
}

type OrderDetailsDTO struct {
	OrderDTO
	Milestones MilestonesDTO `json:"milestones"`
}
