package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

type DashboardService struct {
	store      Store
	now        Clock
	windowDays int
}

type RenewalBadge struct {
	ContractID       string            `json:"contractId"`
	DaysUntilRenewal int               `json:"daysUntilRenewal"`
	Urgency          lifecycle.Urgency `json:"urgency"`
}

type DashboardView struct {
	model.DashboardStats
	WindowDays    int            `json:"windowDays"`
	RenewalBadges []RenewalBadge `json:"renewalBadges"`
}

func NewDashboardService(store Store, now Clock, windowDays int) *DashboardService {
	if windowDays <= 0 {
		windowDays = lifecycle.DefaultWindowDays
	}
	return &DashboardService{store: store, now: now, windowDays: windowDays}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardView, error) {
	snapshot, err := loadSnapshot(ctx, s.store)
	if err != nil {
		return nil, err
	}
	resolveCustomerNames(snapshot.contracts, snapshot.customers)

	now := s.now()
	stats := lifecycle.SnapshotWindow(snapshot.customers, snapshot.contracts, snapshot.notifications, now, s.windowDays)

	badges := make([]RenewalBadge, 0, len(stats.UpcomingRenewals))
	for _, c := range stats.UpcomingRenewals {
		badges = append(badges, RenewalBadge{
			ContractID:       c.ID,
			DaysUntilRenewal: lifecycle.DaysBetween(now, c.RenewalDate),
			Urgency:          lifecycle.RenewalUrgency(c, now),
		})
	}
	return &DashboardView{DashboardStats: stats, WindowDays: s.windowDays, RenewalBadges: badges}, nil
}

type collections struct {
	customers     []model.Customer
	contracts     []model.Contract
	notifications []model.Notification
}

// loadSnapshot fetches the three collections concurrently; each store call is
// independently latent.
func loadSnapshot(ctx context.Context, store Store) (*collections, error) {
	var out collections
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.customers, err = store.ListCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.contracts, err = store.ListContracts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.notifications, err = store.ListNotifications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
