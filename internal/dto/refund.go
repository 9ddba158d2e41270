package dto

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// RefundRequest is the issue-refund form. RefundAmount keeps the text the
// admin typed so the confirmation can echo it back.
type RefundRequest struct {
	OrderID      string `json:"orderId"`
	RefundAmount string `json:"refundAmount"`
	RefundReason string `json:"refundReason"`
}

// UnmarshalJSON accepts refundAmount as either a JSON string or a number.
// Any other literal is kept verbatim and fails the number rule later.
func (r *RefundRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		OrderID      string          `json:"orderId"`
		RefundAmount json.RawMessage `json:"refundAmount"`
		RefundReason string          `json:"refundReason"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.OrderID = raw.OrderID
	r.RefundReason = raw.RefundReason
	r.RefundAmount = ""

	amount := bytes.TrimSpace(raw.RefundAmount)
	switch {
	case len(amount) == 0, bytes.Equal(amount, []byte("null")):
	case amount[0] == '"':
		if err := json.Unmarshal(amount, &r.RefundAmount); err != nil {
			return err
		}
	default:
		r.RefundAmount = string(amount)
	}
	return nil
}

type RefundValidationResponse struct {
	Valid     bool              `json:"valid"`
	CanSubmit bool              `json:"canSubmit"`
	Errors    map[string]string `json:"errors"`
}

type RefundConfirmationResponse struct {
	TraceID     string `json:"traceId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Redirect    string `json:"redirect"`
}

type RefundableOrderDTO struct {
	ID       string          `json:"id"`
	GigTitle string          `json:"gigTitle"`
	Buyer    string          `json:"buyer"`
	Student  string          `json:"student"`
	Amount   decimal.Decimal `json:"amount"`
}
