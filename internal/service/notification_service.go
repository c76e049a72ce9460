package service

import (
	"context"
	"fmt"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

// Notification filters accepted by List besides the notification types.
const (
	FilterAll    = "all"
	FilterRead   = "read"
	FilterUnread = "unread"
)

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// List returns notifications newest first. filter is one of all, read,
// unread or a notification type.
func (s *NotificationService) List(ctx context.Context, filter string) ([]model.Notification, error) {
	match, err := notificationMatcher(filter)
	if err != nil {
		return nil, err
	}
	notifications, err := s.store.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.Notification, 0, len(notifications))
	for _, n := range lifecycle.SortNotifications(notifications) {
		if match(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	notifications, err := s.store.ListNotifications(ctx)
	if err != nil {
		return 0, err
	}
	return lifecycle.CountUnread(notifications), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return mapStoreError(s.store.MarkNotificationRead(ctx, id))
}

func notificationMatcher(filter string) (func(model.Notification) bool, error) {
	switch filter {
	case "", FilterAll:
		return func(model.Notification) bool { return true }, nil
	case FilterRead:
		return func(n model.Notification) bool { return n.Read }, nil
	case FilterUnread:
		return func(n model.Notification) bool { return !n.Read }, nil
	}

	kind := model.NotificationType(filter)
	switch kind {
	case model.NotificationContractExpiring, model.NotificationContractExpired,
		model.NotificationCustomerAdded, model.NotificationOther:
		return func(n model.Notification) bool { return n.Type == kind }, nil
	default:
		return nil, fmt.Errorf("%w: unknown notification filter %q", ErrInvalidInput, filter)
	}
}
