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

const gigColumns = `id, title, category, seller_name, seller_rating, status, submission_date,
	basic_price, standard_price, premium_price, flags, reports`

type MySQLGigRepository struct {
	db *sql.DB
}

func NewMySQLGigRepository(db *sql.DB) *MySQLGigRepository {
	return &MySQLGigRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGig(row rowScanner) (domain.Gig, error) {
	var (
		g     domain.Gig
		flags []byte
	)
	err := row.Scan(
		&g.ID, &g.Title, &g.Category, &g.SellerName, &g.SellerRating, &g.Status, &g.SubmissionDate,
		&g.Packages.Basic, &g.Packages.Standard, &g.Packages.Premium, &flags, &g.Reports,
	)
	if err != nil {
		return g, err
	}

	g.Flags = []string{}
	if len(flags) > 0 {
		if err := json.Unmarshal(flags, &g.Flags); err != nil {
			return g, fmt.Errorf("decoding flags of gig %s: %w", g.ID, err)
		}
	}
	return g, nil
}

func (r *MySQLGigRepository) ListGigs(ctx context.Context) ([]domain.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs ORDER BY CAST(id AS UNSIGNED), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying gigs: %w", err)
	}
	defer rows.Close()

	gigs := []domain.Gig{}
	for rows.Next() {
		g, err := scanGig(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning gig row: %w", err)
		}
		gigs = append(gigs, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gig rows: %w", err)
	}

	return gigs, nil
}

func (r *MySQLGigRepository) FindGigByID(ctx context.Context, id string) (*domain.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = ?`

	g, err := scanGig(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("gig with id %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying gig by id: %w", err)
	}

	return &g, nil
}
