package server

import (
	"time"

	"go.uber.org/zap"

	"univadmin/internal/buyer"
	"univadmin/internal/config"
	"univadmin/internal/dashboard"
	"univadmin/internal/dispute"
	"univadmin/internal/earnings"
	"univadmin/internal/gig"
	"univadmin/internal/order"
	"univadmin/internal/profile"
	"univadmin/internal/records"
	"univadmin/internal/refund"
	"univadmin/internal/settings"
	"univadmin/internal/student"
)

// NewControllers wires every admin page over one record store. now is the
// clock used by date-range filters.
func NewControllers(repo records.Repository, cfg *config.Config, logger *zap.Logger, now func() time.Time) (Controllers, error) {
	settingsCtrl, err := settings.NewModule(repo, cfg.Fees, logger)
	if err != nil {
		return Controllers{}, err
	}

	refundCtrl, err := refund.NewModule(repo, cfg, logger)
	if err != nil {
		return Controllers{}, err
	}

	return Controllers{
		Dashboard: dashboard.NewModule(repo, logger),
		Students:  student.NewModule(repo, logger),
		Buyers:    buyer.NewModule(repo, logger),
		Gigs:      gig.NewModule(repo, logger),
		Orders:    order.NewModule(repo, logger, now),
		Disputes:  dispute.NewModule(repo, logger),
		Earnings:  earnings.NewModule(repo, logger, now),
		Settings:  settingsCtrl,
		Profile:   profile.NewModule(repo, logger),
		Refund:    refundCtrl,
	}, nil
}
