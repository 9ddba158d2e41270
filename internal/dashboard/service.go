package dashboard

import (
	"context"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

// Overview holds record counts only. Revenue figures are not computed.
type Overview struct {
	Students         int
	Buyers           int
	GigsByStatus     map[string]int
	OrdersByStatus   map[string]int
	OpenDisputes     int
	ScheduledPayouts int
	TotalGigs        int
	TotalOrders      int
}

func (o *Overview) TotalUsers() int {
	return o.Students + o.Buyers
}

type dashboardService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	buyers, err := s.repo.ListBuyers(ctx)
	if err != nil {
		return nil, err
	}
	gigs, err := s.repo.ListGigs(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	disputes, err := s.repo.ListDisputes(ctx)
	if err != nil {
		return nil, err
	}
	payouts, err := s.repo.ListPayouts(ctx)
	if err != nil {
		return nil, err
	}

	disputeCounts := filter.CountBy(disputes, func(d domain.Dispute) domain.DisputeStatus { return d.Status })
	payoutCounts := filter.CountBy(payouts, func(p domain.Payout) domain.PayoutStatus { return p.Status })

	return &Overview{
		Students:         len(students),
		Buyers:           len(buyers),
		TotalGigs:        len(gigs),
		TotalOrders:      len(orders),
		GigsByStatus:     countStatuses(gigs, domain.GigStatuses, func(g domain.Gig) domain.GigStatus { return g.Status }),
		OrdersByStatus:   countStatuses(orders, domain.OrderStatuses, func(o domain.Order) domain.OrderStatus { return o.Status }),
		OpenDisputes:     disputeCounts[domain.DisputeStatusOpen],
		ScheduledPayouts: payoutCounts[domain.PayoutStatusScheduled],
	}, nil
}

// countStatuses reports every known status, zero included.
func countStatuses[T any, S ~string](items []T, known []S, status func(T) S) map[string]int {
	counts := make(map[string]int, len(known))
	for _, k := range known {
		counts[string(k)] = 0
	}
	for k, n := range filter.CountBy(items, status) {
		counts[string(k)] = n
	}
	return counts
}
