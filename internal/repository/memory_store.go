package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/contracts-service/internal/model"
)

// MemoryStore keeps every collection in process memory and delays each call
// to imitate a remote backend. Reads return copies.
type MemoryStore struct {
	mu            sync.RWMutex
	latency       time.Duration
	now           func() time.Time
	customers     []model.Customer
	contracts     []model.Contract
	notifications []model.Notification
}

type MemoryOption func(*MemoryStore)

func WithLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.latency = d
	}
}

func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Health(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *MemoryStore) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Customer, len(s.customers))
	copy(result, s.customers)
	return result, nil
}

func (s *MemoryStore) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	customer.ID = uuid.NewString()
	customer.CreatedAt = s.now().UTC()
	s.customers = append(s.customers, customer)
	return &customer, nil
}

func (s *MemoryStore) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			patch.Apply(&s.customers[i])
			updated := s.customers[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListContracts(ctx context.Context) ([]model.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Contract, len(s.contracts))
	copy(result, s.contracts)
	return result, nil
}

func (s *MemoryStore) ListContractsByCustomer(ctx context.Context, customerID string) ([]model.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Contract, 0)
	for _, c := range s.contracts {
		if c.CustomerID == customerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *MemoryStore) GetContract(ctx context.Context, id string) (*model.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contracts {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	contract.ID = uuid.NewString()
	contract.CustomerName = ""
	s.contracts = append(s.contracts, contract)
	return &contract, nil
}

func (s *MemoryStore) UpdateContract(ctx context.Context, id string, patch model.ContractPatch) (*model.Contract, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID == id {
			patch.Apply(&s.contracts[i])
			updated := s.contracts[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		result = append(result, copyNotification(n))
	}
	return result, nil
}

func (s *MemoryStore) CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.NewString()
	if n.Date.IsZero() {
		n.Date = s.now().UTC()
	}
	n = copyNotification(n)
	s.notifications = append(s.notifications, n)

	created := copyNotification(n)
	return &created, nil
}

func (s *MemoryStore) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func copyNotification(n model.Notification) model.Notification {
	if n.RelatedTo != nil {
		ref := *n.RelatedTo
		n.RelatedTo = &ref
	}
	return n
}
