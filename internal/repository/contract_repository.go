package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contracts-service/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) ListContracts(ctx context.Context) ([]model.Contract, error) {
	var rows []contractRecord
	if err := r.db.WithContext(ctx).Order("start_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsFromRecords(rows), nil
}

func (r *ContractRepository) ListContractsByCustomer(ctx context.Context, customerID string) ([]model.Contract, error) {
	var rows []contractRecord
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsFromRecords(rows), nil
}

func (r *ContractRepository) GetContract(ctx context.Context, id string) (*model.Contract, error) {
	var row contractRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	c := contractFromRecord(row)
	return &c, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	contract.ID = uuid.NewString()

	row := contractToRecord(contract)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	created := contractFromRecord(row)
	return &created, nil
}

func (r *ContractRepository) UpdateContract(ctx context.Context, id string, patch model.ContractPatch) (*model.Contract, error) {
	var updated model.Contract
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row contractRecord
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			return err
		}
		current := contractFromRecord(row)
		patch.Apply(&current)

		next := contractToRecord(current)
		if err := tx.Save(&next).Error; err != nil {
			return err
		}
		updated = contractFromRecord(next)
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

func contractsFromRecords(rows []contractRecord) []model.Contract {
	result := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		result = append(result, contractFromRecord(row))
	}
	return result
}
