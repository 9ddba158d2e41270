package repository

import (
	"context"
	"database/sql"
	"fmt"

	"univadmin/internal/domain"
)

type MySQLEarningsRepository struct {
	db *sql.DB
}

func NewMySQLEarningsRepository(db *sql.DB) *MySQLEarningsRepository {
	return &MySQLEarningsRepository{db: db}
}

func (r *MySQLEarningsRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT id, type, description, party, amount, fee, net_amount, date, status, order_id
		FROM transactions
		ORDER BY date DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var (
			t       domain.Transaction
			orderID sql.NullString
		)
		err := rows.Scan(&t.ID, &t.Type, &t.Description, &t.Party, &t.Amount, &t.Fee, &t.NetAmount, &t.Date, &t.Status, &orderID)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		if orderID.Valid {
			id := orderID.String
			t.OrderID = &id
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return transactions, nil
}

func (r *MySQLEarningsRepository) ListPayouts(ctx context.Context) ([]domain.Payout, error) {
	query := `
		SELECT id, seller, amount, status, scheduled_date, completed_date, method, orders
		FROM payouts
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying payouts: %w", err)
	}
	defer rows.Close()

	payouts := []domain.Payout{}
	for rows.Next() {
		var (
			p         domain.Payout
			completed sql.NullTime
		)
		err := rows.Scan(&p.ID, &p.Seller, &p.Amount, &p.Status, &p.ScheduledDate, &completed, &p.Method, &p.Orders)
		if err != nil {
			return nil, fmt.Errorf("scanning payout row: %w", err)
		}
		if completed.Valid {
			c := completed.Time
			p.CompletedDate = &c
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payout rows: %w", err)
	}

	return payouts, nil
}
