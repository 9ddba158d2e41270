package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
	"univadmin/internal/testutil"
)

// Unit Tests

func TestNewMySQLDisputeRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLDisputeRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestDisputeRepository_FindDisputeByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := db.Exec(`
		INSERT INTO disputes (id, order_id, gig_title, buyer_name, seller_name, status, priority, reason, amount,
		                      opened_date, last_activity_at, description, evidence_count, admin_notes)
		VALUES ('DSP-002', 'ORD-018', 'Logo Design Package', 'Mike Johnson', 'Emma Chen', 'in_review', 'medium',
		        'Copyright infringement concerns', 150.00, '2024-08-12', '2024-08-14 16:00:00',
		        'Buyer claims the logo design contains copyrighted elements.', 5,
		        '["Requested additional evidence from buyer", "Contacted seller for response"]')
	`)
	require.NoError(t, err)

	repo := NewMySQLDisputeRepository(db)

	d, err := repo.FindDisputeByID(context.Background(), "DSP-002")
	require.NoError(t, err)
	assert.Equal(t, domain.DisputeStatusInReview, d.Status)
	assert.Equal(t, domain.DisputePriorityMedium, d.Priority)
	assert.Len(t, d.AdminNotes, 2)
	assert.Equal(t, 16, d.LastActivityAt.Hour())

	disputes, err := repo.ListDisputes(context.Background())
	require.NoError(t, err)
	assert.Len(t, disputes, 1)
}

func TestDisputeRepository_FindDisputeByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := NewMySQLDisputeRepository(db).FindDisputeByID(context.Background(), "DSP-404")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
