// Package memory serves the admin records from a YAML fixture set loaded
// once at start-up. The records never change after loading, so the store
// is safe for concurrent use without locking.
package memory

import (
	"context"
	"fmt"

	"univadmin/internal/domain"
	apperrors "univadmin/internal/errors"
)

type records struct {
	students       []domain.Student
	buyers         []domain.Buyer
	gigs           []domain.Gig
	orders         []domain.Order
	disputes       []domain.Dispute
	transactions   []domain.Transaction
	payouts        []domain.Payout
	categories     []domain.Category
	emailTemplates []domain.EmailTemplate
	profile        *domain.AdminProfile
}

type Store struct {
	recs *records
}

// NewStore loads the embedded fixture set.
func NewStore() (*Store, error) {
	return NewStoreFromYAML(defaultFixtures)
}

func NewStoreFromYAML(data []byte) (*Store, error) {
	recs, err := parseFixtures(data)
	if err != nil {
		return nil, err
	}
	return &Store{recs: recs}, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return clone(s.recs.students), nil
}

func (s *Store) FindStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	return find(s.recs.students, func(st domain.Student) bool { return st.ID == id }, "student", id)
}

func (s *Store) ListBuyers(ctx context.Context) ([]domain.Buyer, error) {
	return clone(s.recs.buyers), nil
}

func (s *Store) FindBuyerByID(ctx context.Context, id string) (*domain.Buyer, error) {
	return find(s.recs.buyers, func(b domain.Buyer) bool { return b.ID == id }, "buyer", id)
}

func (s *Store) ListGigs(ctx context.Context) ([]domain.Gig, error) {
	return clone(s.recs.gigs), nil
}

func (s *Store) FindGigByID(ctx context.Context, id string) (*domain.Gig, error) {
	return find(s.recs.gigs, func(g domain.Gig) bool { return g.ID == id }, "gig", id)
}

func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return clone(s.recs.orders), nil
}

func (s *Store) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return find(s.recs.orders, func(o domain.Order) bool { return o.ID == id }, "order", id)
}

func (s *Store) ListDisputes(ctx context.Context) ([]domain.Dispute, error) {
	return clone(s.recs.disputes), nil
}

func (s *Store) FindDisputeByID(ctx context.Context, id string) (*domain.Dispute, error) {
	return find(s.recs.disputes, func(d domain.Dispute) bool { return d.ID == id }, "dispute", id)
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return clone(s.recs.transactions), nil
}

func (s *Store) ListPayouts(ctx context.Context) ([]domain.Payout, error) {
	return clone(s.recs.payouts), nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return clone(s.recs.categories), nil
}

func (s *Store) ListEmailTemplates(ctx context.Context) ([]domain.EmailTemplate, error) {
	return clone(s.recs.emailTemplates), nil
}

// GetAdminProfile fails with a not-found error when the fixture set has no
// profile section.
func (s *Store) GetAdminProfile(ctx context.Context) (*domain.AdminProfile, error) {
	if s.recs.profile == nil {
		return nil, apperrors.NewNotFoundError("admin profile not found")
	}
	p := *s.recs.profile
	p.Sessions = clone(s.recs.profile.Sessions)
	return &p, nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func find[T any](items []T, match func(T) bool, kind, id string) (*T, error) {
	for _, item := range items {
		if match(item) {
			found := item
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", kind, id))
}
