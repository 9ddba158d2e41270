package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

const disputeColumns = `id, order_id, gig_title, buyer_name, seller_name, status, priority, reason, amount,
	opened_date, last_activity_at, description, evidence_count, admin_notes`

type MySQLDisputeRepository struct {
	db *sql.DB
}

func NewMySQLDisputeRepository(db *sql.DB) *MySQLDisputeRepository {
	return &MySQLDisputeRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDispute(row rowScanner) (domain.Dispute, error) {
	var (
		d     domain.Dispute
		notes []byte
	)
	err := row.Scan(
		&d.ID, &d.OrderID, &d.GigTitle, &d.BuyerName, &d.SellerName, &d.Status, &d.Priority, &d.Reason, &d.Amount,
		&d.OpenedDate, &d.LastActivityAt, &d.Description, &d.EvidenceCount, &notes,
	)
	if err != nil {
		return d, err
	}

	d.AdminNotes = []string{}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &d.AdminNotes); err != nil {
			return d, fmt.Errorf("decoding admin notes of dispute %s: %w", d.ID, err)
		}
	}
	return d, nil
}

func (r *MySQLDisputeRepository) ListDisputes(ctx context.Context) ([]domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying disputes: %w", err)
	}
	defer rows.Close()

	disputes := []domain.Dispute{}
	for rows.Next() {
		d, err := scanDispute(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dispute row: %w", err)
		}
		disputes = append(disputes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dispute rows: %w", err)
	}

	return disputes, nil
}

func (r *MySQLDisputeRepository) FindDisputeByID(ctx context.Context, id string) (*domain.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = ?`

	d, err := scanDispute(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("dispute with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying dispute by id: %w", err)
	}

	return &d, nil
}
