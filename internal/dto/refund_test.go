package dto

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		amount string
	}{
		{name: "string", body: `{"refundAmount":"49.99"}`, amount: "49.99"},
		{name: "number", body: `{"refundAmount":49.99}`, amount: "49.99"},
		{name: "integer", body: `{"refundAmount":150}`, amount: "150"},
		{name: "null", body: `{"refundAmount":null}`, amount: ""},
		{name: "missing", body: `{}`, amount: ""},
		{name: "boolean kept verbatim", body: `{"refundAmount":false}`, amount: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RefundRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.amount, req.RefundAmount)
		})
	}
}

func TestRefundRequest_UnmarshalJSON_OtherFields(t *testing.T) {
	var req RefundRequest
	require.NoError(t, json.Unmarshal([]byte(`{"orderId":"ORD-001","refundAmount":"10","refundReason":"late"}`), &req))

	assert.Equal(t, RefundRequest{OrderID: "ORD-001", RefundAmount: "10", RefundReason: "late"}, req)
}

func TestRefundRequest_UnmarshalJSON_WrongFieldType(t *testing.T) {
	var req RefundRequest
	assert.Error(t, json.Unmarshal([]byte(`{"orderId":42}`), &req))
}
