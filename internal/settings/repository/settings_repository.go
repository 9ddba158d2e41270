package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"univadmin/internal/domain"
)

type MySQLSettingsRepository struct {
	db *sql.DB
}

func NewMySQLSettingsRepository(db *sql.DB) *MySQLSettingsRepository {
	return &MySQLSettingsRepository{db: db}
}

func (r *MySQLSettingsRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, subcategories, is_active
		FROM categories
		ORDER BY CAST(id AS UNSIGNED), id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var (
			c    domain.Category
			subs []byte
		)
		if err := rows.Scan(&c.ID, &c.Name, &subs, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}

		c.Subcategories = []string{}
		if len(subs) > 0 {
			if err := json.Unmarshal(subs, &c.Subcategories); err != nil {
				return nil, fmt.Errorf("decoding subcategories for category %s: %w", c.ID, err)
			}
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *MySQLSettingsRepository) ListEmailTemplates(ctx context.Context) ([]domain.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, type, last_modified
		FROM email_templates
		ORDER BY CAST(id AS UNSIGNED), id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying email templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.EmailTemplate{}
	for rows.Next() {
		var t domain.EmailTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Type, &t.LastModified); err != nil {
			return nil, fmt.Errorf("scanning email template row: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating email template rows: %w", err)
	}

	return templates, nil
}
