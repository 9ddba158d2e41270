package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

const orderColumns = `id, gig_title, buyer_name, seller_name, status, amount, package, payment_status,
	order_date, delivery_date, has_dispute, messages, milestones_total, milestones_completed`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.GigTitle, &o.BuyerName, &o.SellerName, &o.Status, &o.Amount, &o.Package, &o.PaymentStatus,
		&o.OrderDate, &o.DeliveryDate, &o.HasDispute, &o.Messages, &o.MilestonesTotal, &o.MilestonesCompleted,
	)
	return o, err
}

func (r *MySQLOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &o, nil
}
