package model

import "time"

type NotificationType string

const (
	NotificationContractExpiring NotificationType = "contract-expiring"
	NotificationContractExpired  NotificationType = "contract-expired"
	NotificationCustomerAdded    NotificationType = "customer-added"
	NotificationOther            NotificationType = "other"
)

type RelatedType string

const (
	RelatedCustomer RelatedType = "customer"
	RelatedContract RelatedType = "contract"
)

type RelatedRef struct {
	Type RelatedType `json:"type"`
	ID   string      `json:"id"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	RelatedTo *RelatedRef      `json:"relatedTo,omitempty"`
	Date      time.Time        `json:"date"`
	Read      bool             `json:"read"`
}
