package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "univadmin/internal/errors"
)

type listQuery struct {
	Search string `query:"search" validate:"max=10"`
	Status string `query:"status" validate:"omitempty,oneof=all active suspended"`
}

type feeSettings struct {
	Fixed string `json:"fixedFee" validate:"decimal"`
	Addr  string `json:"addr" validate:"notblank"`
	Skip  string `json:"-" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(listQuery{Search: "sarah", Status: "active"}))
	assert.NoError(t, Struct(listQuery{}))
}

func TestStruct_OneOfUsesQueryName(t *testing.T) {
	err := Struct(listQuery{Status: "deleted"})
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "status", ve.Details[0].Field)
	assert.Equal(t, "status must be one of: all, active, suspended", ve.Details[0].Message)
	assert.Equal(t, ve.Details[0].Message, ve.Message)
}

func TestStruct_Max(t *testing.T) {
	err := Struct(listQuery{Search: "a very long search term"})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "search", ve.Details[0].Field)
	assert.Equal(t, "search must be at most 10 characters", ve.Details[0].Message)
}

func TestStruct_CustomTags(t *testing.T) {
	err := Struct(feeSettings{Fixed: "abc", Addr: "   ", Skip: "x"})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	fields := ve.Fields()
	assert.Equal(t, "fixedFee must be a valid number", fields["fixedFee"])
	assert.Equal(t, "addr is required", fields["addr"])

	assert.NoError(t, Struct(feeSettings{Fixed: " 0.30 ", Addr: "localhost:6379", Skip: "x"}))
}

func TestStruct_DashTagFallsBackToFieldName(t *testing.T) {
	err := Struct(feeSettings{Fixed: "1", Addr: "a"})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Skip is required", ve.Details[0].Message)
}
