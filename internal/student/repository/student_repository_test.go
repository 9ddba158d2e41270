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

func TestNewMySQLStudentRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLStudentRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertStudents(t *testing.T, db *sql.DB) {
	_, err := db.Exec(`
		INSERT INTO students (id, name, email, registration_date, status, gigs_count, profile_level)
		VALUES ('2', 'Mike Chen', 'mike.chen@university.edu', '2024-02-20', 'active', 5, 'intermediate'),
		       ('10', 'Alex Smith', 'alex.smith@university.edu', '2023-12-10', 'suspended', 8, 'intermediate'),
		       ('1', 'Sarah Johnson', 'sarah.j@university.edu', '2024-01-15', 'active', 12, 'expert')
	`)
	require.NoError(t, err)
}

func TestStudentRepository_ListStudents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	insertStudents(t, db)
	repo := NewMySQLStudentRepository(db)

	students, err := repo.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "1", students[0].ID)
	assert.Equal(t, "2", students[1].ID)
	assert.Equal(t, "10", students[2].ID)
	assert.Equal(t, domain.ProfileLevelExpert, students[0].ProfileLevel)
}

func TestStudentRepository_FindStudentByID_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	insertStudents(t, db)
	repo := NewMySQLStudentRepository(db)

	s, err := repo.FindStudentByID(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "Alex Smith", s.Name)
	assert.Equal(t, domain.AccountStatusSuspended, s.Status)
	assert.Equal(t, 8, s.GigsCount)
	assert.Equal(t, 2023, s.RegistrationDate.Year())
}

func TestStudentRepository_FindStudentByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLStudentRepository(db)

	s, err := repo.FindStudentByID(context.Background(), "999")
	assert.Error(t, err)
	assert.Nil(t, s)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
