package service

import (
	"context"
	"errors"
	"time"

	"github.com/nurpe/contracts-service/internal/model"
	"github.com/nurpe/contracts-service/internal/repository"
)

// Clock supplies "now". Services never call time.Now directly.
type Clock func() time.Time

type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error)
}

type ContractStore interface {
	ListContracts(ctx context.Context) ([]model.Contract, error)
	ListContractsByCustomer(ctx context.Context, customerID string) ([]model.Contract, error)
	GetContract(ctx context.Context, id string) (*model.Contract, error)
	CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error)
	UpdateContract(ctx context.Context, id string, patch model.ContractPatch) (*model.Contract, error)
}

type NotificationStore interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Store is implemented by repository.MemoryStore and repository.Repositories.
type Store interface {
	CustomerStore
	ContractStore
	NotificationStore
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// resolveCustomerNames fills CustomerName from the current customer records.
func resolveCustomerNames(contracts []model.Contract, customers []model.Customer) {
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	for i := range contracts {
		contracts[i].CustomerName = names[contracts[i].CustomerID]
	}
}
