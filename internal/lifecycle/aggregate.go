package lifecycle

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/model"
)

type CustomerCounts struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ContractCounts struct {
	Active  int `json:"active"`
	Expired int `json:"expired"`
	Pending int `json:"pending"`
}

// ContractSummary is the per-customer breakdown shown on the customer page.
type ContractSummary struct {
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
}

func CountCustomers(customers []model.Customer) CustomerCounts {
	var counts CustomerCounts
	for _, c := range customers {
		switch c.Status {
		case model.CustomerStatusActive:
			counts.Active++
		case model.CustomerStatusInactive:
			counts.Inactive++
		}
	}
	return counts
}

// CountContracts partitions by stored status, not display status.
func CountContracts(contracts []model.Contract) ContractCounts {
	var counts ContractCounts
	for _, c := range contracts {
		switch c.Status {
		case model.ContractStatusActive:
			counts.Active++
		case model.ContractStatusExpired:
			counts.Expired++
		case model.ContractStatusPending:
			counts.Pending++
		}
	}
	return counts
}

// CountExpiringSoon counts stored-active contracts ending within windowDays.
// Contracts whose end date has already passed are not counted.
func CountExpiringSoon(contracts []model.Contract, now time.Time, windowDays int) int {
	count := 0
	for _, c := range contracts {
		if c.Status != model.ContractStatusActive || c.EndDate.IsZero() {
			continue
		}
		days := DaysBetween(now, c.EndDate)
		if days >= 0 && days <= windowDays {
			count++
		}
	}
	return count
}

func TotalActiveValue(contracts []model.Contract) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contracts {
		if c.Status == model.ContractStatusActive {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// UpcomingRenewals returns contracts with now < renewalDate < now+windowDays,
// ordered by renewal date and then id.
func UpcomingRenewals(contracts []model.Contract, now time.Time, windowDays int) []model.Contract {
	limit := now.AddDate(0, 0, windowDays)
	result := make([]model.Contract, 0)
	for _, c := range contracts {
		if c.RenewalDate.After(now) && c.RenewalDate.Before(limit) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].RenewalDate.Equal(result[j].RenewalDate) {
			return result[i].RenewalDate.Before(result[j].RenewalDate)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// RecentNotifications returns up to limit notifications, newest first. Equal
// dates keep their original order.
func RecentNotifications(notifications []model.Notification, limit int) []model.Notification {
	sorted := SortNotifications(notifications)
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// SortNotifications returns a copy ordered by date descending.
func SortNotifications(notifications []model.Notification) []model.Notification {
	sorted := make([]model.Notification, len(notifications))
	copy(sorted, notifications)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func CountUnread(notifications []model.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func SummarizeCustomerContracts(contracts []model.Contract, now time.Time) ContractSummary {
	var summary ContractSummary
	for _, c := range contracts {
		switch c.Status {
		case model.ContractStatusExpired:
			summary.Expired++
		case model.ContractStatusActive:
			summary.Active++
			if cls, err := Classify(c, now); err == nil && cls.Status == StatusExpiringSoon {
				summary.ExpiringSoon++
			}
		}
	}
	return summary
}

// Snapshot builds the dashboard aggregate with the default 30 day window.
func Snapshot(customers []model.Customer, contracts []model.Contract, notifications []model.Notification, now time.Time) model.DashboardStats {
	return SnapshotWindow(customers, contracts, notifications, now, DefaultWindowDays)
}

func SnapshotWindow(
	customers []model.Customer,
	contracts []model.Contract,
	notifications []model.Notification,
	now time.Time,
	windowDays int,
) model.DashboardStats {
	customerCounts := CountCustomers(customers)
	contractCounts := CountContracts(contracts)

	return model.DashboardStats{
		TotalCustomers:      len(customers),
		ActiveCustomers:     customerCounts.Active,
		InactiveCustomers:   customerCounts.Inactive,
		TotalContracts:      len(contracts),
		ActiveContracts:     contractCounts.Active,
		ExpiredContracts:    contractCounts.Expired,
		PendingContracts:    contractCounts.Pending,
		ExpiringContracts:   CountExpiringSoon(contracts, now, windowDays),
		ContractsValue:      TotalActiveValue(contracts),
		UpcomingRenewals:    UpcomingRenewals(contracts, now, windowDays),
		RecentNotifications: RecentNotifications(notifications, RecentNotificationLimit),
		UnreadNotifications: CountUnread(notifications),
	}
}
