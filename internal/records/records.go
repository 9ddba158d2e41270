// Package records opens the record store every admin page reads from.
package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	buyerrepo "univadmin/internal/buyer/repository"
	"univadmin/internal/config"
	disputerepo "univadmin/internal/dispute/repository"
	"univadmin/internal/domain"
	earningsrepo "univadmin/internal/earnings/repository"
	gigrepo "univadmin/internal/gig/repository"
	"univadmin/internal/infrastructure/memory"
	"univadmin/internal/infrastructure/mysql"
	orderrepo "univadmin/internal/order/repository"
	profilerepo "univadmin/internal/profile/repository"
	settingsrepo "univadmin/internal/settings/repository"
	studentrepo "univadmin/internal/student/repository"
)

// Repository is the read surface of the whole store. Each feature package
// depends on its own slice of it.
type Repository interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	FindStudentByID(ctx context.Context, id string) (*domain.Student, error)
	ListBuyers(ctx context.Context) ([]domain.Buyer, error)
	FindBuyerByID(ctx context.Context, id string) (*domain.Buyer, error)
	ListGigs(ctx context.Context) ([]domain.Gig, error)
	FindGigByID(ctx context.Context, id string) (*domain.Gig, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListDisputes(ctx context.Context) ([]domain.Dispute, error)
	FindDisputeByID(ctx context.Context, id string) (*domain.Dispute, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListPayouts(ctx context.Context) ([]domain.Payout, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListEmailTemplates(ctx context.Context) ([]domain.EmailTemplate, error)
	GetAdminProfile(ctx context.Context) (*domain.AdminProfile, error)
}

type mysqlRecords struct {
	*studentrepo.MySQLStudentRepository
	*buyerrepo.MySQLBuyerRepository
	*gigrepo.MySQLGigRepository
	*orderrepo.MySQLOrderRepository
	*disputerepo.MySQLDisputeRepository
	*earningsrepo.MySQLEarningsRepository
	*settingsrepo.MySQLSettingsRepository
	*profilerepo.MySQLProfileRepository
}

// Open builds the store named by cfg.Store.Driver. The returned close func
// is never nil.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Repository, func() error, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		store, err := memory.NewStore()
		if err != nil {
			return nil, nil, fmt.Errorf("loading fixture records: %w", err)
		}
		logger.Info("record store ready", zap.String("driver", config.StoreDriverMemory))
		return store, func() error { return nil }, nil

	case config.StoreDriverMySQL:
		db, err := mysql.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("record store ready",
			zap.String("driver", config.StoreDriverMySQL),
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Name),
		)
		return &mysqlRecords{
			MySQLStudentRepository:  studentrepo.NewMySQLStudentRepository(db),
			MySQLBuyerRepository:    buyerrepo.NewMySQLBuyerRepository(db),
			MySQLGigRepository:      gigrepo.NewMySQLGigRepository(db),
			MySQLOrderRepository:    orderrepo.NewMySQLOrderRepository(db),
			MySQLDisputeRepository:  disputerepo.NewMySQLDisputeRepository(db),
			MySQLEarningsRepository: earningsrepo.NewMySQLEarningsRepository(db),
			MySQLSettingsRepository: settingsrepo.NewMySQLSettingsRepository(db),
			MySQLProfileRepository:  profilerepo.NewMySQLProfileRepository(db),
		}, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

type orderOverride struct {
	Repository
	orders OrderRepository
}

// WithOrders serves order lookups from orders and everything else from repo.
func WithOrders(repo Repository, orders OrderRepository) Repository {
	return &orderOverride{Repository: repo, orders: orders}
}

func (o *orderOverride) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return o.orders.ListOrders(ctx)
}

func (o *orderOverride) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return o.orders.FindOrderByID(ctx, id)
}
