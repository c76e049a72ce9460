package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

type CustomerService struct {
	store Store
	now   Clock
	log   zerolog.Logger
}

type CustomerFilter struct {
	Search string
	Status model.CustomerStatus
}

type CreateCustomerInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Status        model.CustomerStatus
}

type CustomerContracts struct {
	Customer  model.Customer            `json:"customer"`
	Contracts []ContractView            `json:"contracts"`
	Summary   lifecycle.ContractSummary `json:"summary"`
}

func NewCustomerService(store Store, now Clock, log zerolog.Logger) *CustomerService {
	return &CustomerService{store: store, now: now, log: log}
}

func (s *CustomerService) List(ctx context.Context, filter CustomerFilter) ([]model.Customer, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if search != "" && !containsAny(search, c.Name, c.Email, c.ContactPerson) {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return customer, nil
}

// Create stores a new customer and records a customer-added notification.
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*model.Customer, error) {
	customer := model.Customer{
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Address:       strings.TrimSpace(input.Address),
		Status:        input.Status,
	}
	if customer.Status == "" {
		customer.Status = model.CustomerStatusActive
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	created, err := s.store.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.CreateNotification(ctx, model.Notification{
		Type:      model.NotificationCustomerAdded,
		Message:   fmt.Sprintf("New customer %s has been added", created.Name),
		RelatedTo: &model.RelatedRef{Type: model.RelatedCustomer, ID: created.ID},
		Date:      s.now().UTC(),
	}); err != nil {
		s.log.Warn().Err(err).Str("customer_id", created.ID).Msg("customer-added notification not recorded")
	}
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	current, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	trimCustomerPatch(&patch)
	merged := *current
	patch.Apply(&merged)
	if err := validateCustomer(merged); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateCustomer(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return updated, nil
}

// Contracts returns a customer's contracts with their display status and the
// per-customer summary.
func (s *CustomerService) Contracts(ctx context.Context, id string) (*CustomerContracts, error) {
	customer, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	contracts, err := s.store.ListContractsByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		contracts[i].CustomerName = customer.Name
	}

	now := s.now()
	views, err := describeContracts(contracts, now)
	if err != nil {
		return nil, err
	}
	return &CustomerContracts{
		Customer:  *customer,
		Contracts: views,
		Summary:   lifecycle.SummarizeCustomerContracts(contracts, now),
	}, nil
}

func trimCustomerPatch(p *model.CustomerPatch) {
	for _, field := range []*string{p.Name, p.ContactPerson, p.Email, p.Phone, p.Address} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
