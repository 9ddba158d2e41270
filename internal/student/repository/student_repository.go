package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

const studentColumns = `id, name, email, registration_date, status, gigs_count, profile_level`

type MySQLStudentRepository struct {
	db *sql.DB
}

func NewMySQLStudentRepository(db *sql.DB) *MySQLStudentRepository {
	return &MySQLStudentRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (domain.Student, error) {
	var s domain.Student
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.RegistrationDate, &s.Status, &s.GigsCount, &s.ProfileLevel)
	return s, err
}

func (r *MySQLStudentRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY CAST(id AS UNSIGNED), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying students: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating student rows: %w", err)
	}

	return students, nil
}

func (r *MySQLStudentRepository) FindStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ?`

	s, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("student with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying student by id: %w", err)
	}

	return &s, nil
}
