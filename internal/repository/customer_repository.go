package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contracts-service/internal/model"
)

type CustomerRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db, now: time.Now}
}

func (r *CustomerRepository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var rows []customerRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]model.Customer, 0, len(rows))
	for _, row := range rows {
		result = append(result, customerFromRecord(row))
	}
	return result, nil
}

func (r *CustomerRepository) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	var row customerRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	c := customerFromRecord(row)
	return &c, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	customer.ID = uuid.NewString()
	customer.CreatedAt = r.now().UTC()

	row := customerToRecord(customer)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	created := customerFromRecord(row)
	return &created, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	var updated model.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row customerRecord
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		current := customerFromRecord(row)
		patch.Apply(&current)

		next := customerToRecord(current)
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		updated = customerFromRecord(next)
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
