package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "univadmin/internal/errors"
	"univadmin/internal/testutil"
)

// Unit Tests

func TestNewMySQLBuyerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLBuyerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestBuyerRepository_ListBuyers_NullableLastOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := db.Exec(`
		INSERT INTO buyers (id, name, email, registration_date, status, total_orders, last_order_date, total_spent)
		VALUES ('1', 'John Smith', 'john.smith@university.edu', '2024-01-10', 'active', 24, '2024-08-25', 1250.00),
		       ('3', 'David Kim', 'david.kim@university.edu', '2024-08-01', 'pending', 0, NULL, 0.00)
	`)
	require.NoError(t, err)

	repo := NewMySQLBuyerRepository(db)

	buyers, err := repo.ListBuyers(context.Background())
	require.NoError(t, err)
	require.Len(t, buyers, 2)

	require.NotNil(t, buyers[0].LastOrderDate)
	assert.Equal(t, 25, buyers[0].LastOrderDate.Day())
	assert.True(t, buyers[0].TotalSpent.Equal(decimal.NewFromInt(1250)))

	assert.Nil(t, buyers[1].LastOrderDate)
	assert.True(t, buyers[1].TotalSpent.IsZero())
}

func TestBuyerRepository_FindBuyerByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLBuyerRepository(db)

	b, err := repo.FindBuyerByID(context.Background(), "404")
	assert.Nil(t, b)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
