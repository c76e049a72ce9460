package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the gorm repositories so a single value can back every
// service store, mirroring MemoryStore.
type Repositories struct {
	*CustomerRepository
	*ContractRepository
	*NotificationRepository
	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		CustomerRepository:     NewCustomerRepository(db),
		ContractRepository:     NewContractRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		db:                     db,
	}
}

func (r *Repositories) Health(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
