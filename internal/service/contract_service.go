package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

type ContractService struct {
	store Store
	now   Clock
}

// ContractView pairs a stored contract with its derived display status.
type ContractView struct {
	model.Contract
	Display lifecycle.Classification `json:"display"`
}

type ContractFilter struct {
	Search string
	Status model.ContractStatus
}

type CreateContractInput struct {
	CustomerID  string
	Type        model.ContractType
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	RenewalDate time.Time
	Amount      decimal.Decimal
	Status      model.ContractStatus
	Notes       string
}

type RenewContractInput struct {
	EndDate     time.Time
	RenewalDate time.Time
	Amount      decimal.Decimal
}

func NewContractService(store Store, now Clock) *ContractService {
	return &ContractService{store: store, now: now}
}

func (s *ContractService) List(ctx context.Context, filter ContractFilter) ([]ContractView, error) {
	contracts, err := s.store.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	resolveCustomerNames(contracts, customers)

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]model.Contract, 0, len(contracts))
	for _, c := range contracts {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if search != "" && !containsAny(search, c.Name, c.CustomerName, string(c.Type)) {
			continue
		}
		matched = append(matched, c)
	}
	return describeContracts(matched, s.now())
}

// ListByCustomer returns the contracts of one customer. An unknown customer
// yields ErrNotFound.
func (s *ContractService) ListByCustomer(ctx context.Context, customerID string) ([]ContractView, error) {
	customer, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	contracts, err := s.store.ListContractsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		contracts[i].CustomerName = customer.Name
	}
	return describeContracts(contracts, s.now())
}

func (s *ContractService) Get(ctx context.Context, id string) (*ContractView, error) {
	contract, err := s.store.GetContract(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := s.resolveName(ctx, contract); err != nil {
		return nil, err
	}
	return describeContract(*contract, s.now())
}

func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (*ContractView, error) {
	contract := model.Contract{
		CustomerID:  strings.TrimSpace(input.CustomerID),
		Type:        input.Type,
		Name:        strings.TrimSpace(input.Name),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		RenewalDate: input.RenewalDate,
		Amount:      input.Amount,
		Status:      input.Status,
		Notes:       strings.TrimSpace(input.Notes),
	}
	if contract.Status == "" {
		contract.Status = model.ContractStatusActive
	}
	if err := validateContract(contract); err != nil {
		return nil, err
	}
	if err := s.requireCustomer(ctx, contract.CustomerID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateContract(ctx, contract)
	if err != nil {
		return nil, err
	}
	if err := s.resolveName(ctx, created); err != nil {
		return nil, err
	}
	return describeContract(*created, s.now())
}

// Update applies a partial update. The merged record must still satisfy every
// contract invariant.
func (s *ContractService) Update(ctx context.Context, id string, patch model.ContractPatch) (*ContractView, error) {
	current, err := s.store.GetContract(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	merged := *current
	patch.Apply(&merged)
	if err := validateContract(merged); err != nil {
		return nil, err
	}
	if merged.CustomerID != current.CustomerID {
		if err := s.requireCustomer(ctx, merged.CustomerID); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateContract(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := s.resolveName(ctx, updated); err != nil {
		return nil, err
	}
	return describeContract(*updated, s.now())
}

// Renew moves the contract period forward and marks it active.
func (s *ContractService) Renew(ctx context.Context, id string, input RenewContractInput) (*ContractView, error) {
	active := model.ContractStatusActive
	amount := input.Amount
	endDate := input.EndDate
	renewalDate := input.RenewalDate
	return s.Update(ctx, id, model.ContractPatch{
		EndDate:     &endDate,
		RenewalDate: &renewalDate,
		Amount:      &amount,
		Status:      &active,
	})
}

func (s *ContractService) requireCustomer(ctx context.Context, customerID string) error {
	if _, err := s.store.GetCustomer(ctx, customerID); err != nil {
		if errors.Is(mapStoreError(err), ErrNotFound) {
			return fmt.Errorf("%w: customer %s does not exist", ErrInvalidInput, customerID)
		}
		return err
	}
	return nil
}

func (s *ContractService) resolveName(ctx context.Context, c *model.Contract) error {
	customer, err := s.store.GetCustomer(ctx, c.CustomerID)
	if err != nil {
		if errors.Is(mapStoreError(err), ErrNotFound) {
			c.CustomerName = ""
			return nil
		}
		return err
	}
	c.CustomerName = customer.Name
	return nil
}

func describeContract(c model.Contract, now time.Time) (*ContractView, error) {
	cls, err := lifecycle.Classify(c, now)
	if err != nil {
		return nil, fmt.Errorf("classify contract %s: %w", c.ID, err)
	}
	return &ContractView{Contract: c, Display: cls}, nil
}

func describeContracts(contracts []model.Contract, now time.Time) ([]ContractView, error) {
	views := make([]ContractView, 0, len(contracts))
	for _, c := range contracts {
		view, err := describeContract(c, now)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
