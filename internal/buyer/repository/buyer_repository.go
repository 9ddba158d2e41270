package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

const buyerColumns = `id, name, email, registration_date, status, total_orders, last_order_date, total_spent`

type MySQLBuyerRepository struct {
	db *sql.DB
}

func NewMySQLBuyerRepository(db *sql.DB) *MySQLBuyerRepository {
	return &MySQLBuyerRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBuyer(row rowScanner) (domain.Buyer, error) {
	var (
		b         domain.Buyer
		lastOrder sql.NullTime
	)
	err := row.Scan(&b.ID, &b.Name, &b.Email, &b.RegistrationDate, &b.Status, &b.TotalOrders, &lastOrder, &b.TotalSpent)
	if err != nil {
		return b, err
	}
	if lastOrder.Valid {
		t := lastOrder.Time
		b.LastOrderDate = &t
	}
	return b, nil
}

func (r *MySQLBuyerRepository) ListBuyers(ctx context.Context) ([]domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers ORDER BY CAST(id AS UNSIGNED), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying buyers: %w", err)
	}
	defer rows.Close()

	buyers := []domain.Buyer{}
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning buyer row: %w", err)
		}
		buyers = append(buyers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buyer rows: %w", err)
	}

	return buyers, nil
}

func (r *MySQLBuyerRepository) FindBuyerByID(ctx context.Context, id string) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE id = ?`

	b, err := scanBuyer(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("buyer with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying buyer by id: %w", err)
	}

	return &b, nil
}
