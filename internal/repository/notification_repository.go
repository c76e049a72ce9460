package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contracts-service/internal/model"
)

type NotificationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db, now: time.Now}
}

func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var rows []notificationRecord
	if err := r.db.WithContext(ctx).Order("notified_at DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, notificationFromRecord(row))
	}
	return result, nil
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error) {
	n.ID = uuid.NewString()
	if n.Date.IsZero() {
		n.Date = r.now().UTC()
	}

	row := notificationToRecord(n)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	created := notificationFromRecord(row)
	return &created, nil
}

func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&notificationRecord{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// postgres and sqlite report matched rows, so re-marking is not a miss.
		return ErrNotFound
	}
	return nil
}
