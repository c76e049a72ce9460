package model

import "github.com/shopspring/decimal"

// DashboardStats is derived on every request and never stored.
type DashboardStats struct {
	TotalCustomers      int             `json:"totalCustomers"`
	ActiveCustomers     int             `json:"activeCustomers"`
	InactiveCustomers   int             `json:"inactiveCustomers"`
	TotalContracts      int             `json:"totalContracts"`
	ActiveContracts     int             `json:"activeContracts"`
	ExpiredContracts    int             `json:"expiredContracts"`
	PendingContracts    int             `json:"pendingContracts"`
	ExpiringContracts   int             `json:"expiringContracts"`
	ContractsValue      decimal.Decimal `json:"contractsValue"`
	UpcomingRenewals    []Contract      `json:"upcomingRenewals"`
	RecentNotifications []Notification  `json:"recentNotifications"`
	UnreadNotifications int             `json:"unreadNotifications"`
}
