package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nurpe/contracts-service/internal/model"
)

type store interface {
	SeedTarget
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (*model.Customer, error)
	ListContracts(ctx context.Context) ([]model.Contract, error)
	ListContractsByCustomer(ctx context.Context, customerID string) ([]model.Contract, error)
	GetContract(ctx context.Context, id string) (*model.Contract, error)
	UpdateContract(ctx context.Context, id string, patch model.ContractPatch) (*model.Contract, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	Health(ctx context.Context) error
}

var sqliteSeq atomic.Int64

func newSQLiteRepositories(t *testing.T) *Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:repo%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(Models()...))

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewRepositories(database)
}

func backends(t *testing.T) map[string]func(t *testing.T) store {
	return map[string]func(t *testing.T) store{
		"memory": func(t *testing.T) store { return NewMemoryStore() },
		"sqlite": func(t *testing.T) store { return newSQLiteRepositories(t) },
	}
}

func sampleContract(customerID string) model.Contract {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return model.Contract{
		CustomerID:  customerID,
		Type:        model.ContractTypeHosting,
		Name:        "Web Hosting Plan",
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		RenewalDate: start.AddDate(0, 11, 0),
		Amount:      decimal.RequireFromString("100.50"),
		Status:      model.ContractStatusActive,
		Notes:       "premium",
	}
}

func TestStoreCustomers(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			created, err := s.CreateCustomer(ctx, model.Customer{
				Name:          "ACME Corporation",
				ContactPerson: "John Doe",
				Email:         "info@acme.com",
				Phone:         "(555) 123-4567",
				Address:       "123 Main St",
				Status:        model.CustomerStatusActive,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())

			got, err := s.GetCustomer(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "ACME Corporation", got.Name)

			name := "ACME Corp"
			inactive := model.CustomerStatusInactive
			updated, err := s.UpdateCustomer(ctx, created.ID, model.CustomerPatch{Name: &name, Status: &inactive})
			require.NoError(t, err)
			assert.Equal(t, "ACME Corp", updated.Name)
			assert.Equal(t, model.CustomerStatusInactive, updated.Status)
			assert.Equal(t, "info@acme.com", updated.Email)
			assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

			all, err := s.ListCustomers(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)

			_, err = s.GetCustomer(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.UpdateCustomer(ctx, "missing", model.CustomerPatch{Name: &name})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreContractPartialUpdateRoundTrip(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			created, err := s.CreateContract(ctx, sampleContract("c1"))
			require.NoError(t, err)
			require.NotEmpty(t, created.ID)

			newEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
			_, err = s.UpdateContract(ctx, created.ID, model.ContractPatch{EndDate: &newEnd})
			require.NoError(t, err)

			got, err := s.GetContract(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, got.EndDate.Equal(newEnd))
			assert.True(t, got.StartDate.Equal(created.StartDate))
			assert.True(t, got.RenewalDate.Equal(created.RenewalDate))
			assert.True(t, got.Amount.Equal(decimal.RequireFromString("100.50")), "amount %s", got.Amount)
			assert.Equal(t, created.Name, got.Name)
			assert.Equal(t, created.Type, got.Type)
			assert.Equal(t, created.Status, got.Status)
			assert.Equal(t, created.Notes, got.Notes)
			assert.Equal(t, "c1", got.CustomerID)

			_, err = s.UpdateContract(ctx, "missing", model.ContractPatch{EndDate: &newEnd})
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.GetContract(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreContractsByCustomer(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			for _, customerID := range []string{"a", "b", "a"} {
				_, err := s.CreateContract(ctx, sampleContract(customerID))
				require.NoError(t, err)
			}

			forA, err := s.ListContractsByCustomer(ctx, "a")
			require.NoError(t, err)
			assert.Len(t, forA, 2)

			none, err := s.ListContractsByCustomer(ctx, "z")
			require.NoError(t, err)
			assert.Empty(t, none)

			all, err := s.ListContracts(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestStoreNotifications(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			created, err := s.CreateNotification(ctx, model.Notification{
				Type:      model.NotificationContractExpiring,
				Message:   "renewal due",
				RelatedTo: &model.RelatedRef{Type: model.RelatedContract, ID: "42"},
				Date:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)

			plain, err := s.CreateNotification(ctx, model.Notification{Type: model.NotificationOther, Message: "hello"})
			require.NoError(t, err)
			assert.False(t, plain.Date.IsZero())
			assert.Nil(t, plain.RelatedTo)

			require.NoError(t, s.MarkNotificationRead(ctx, created.ID))
			require.NoError(t, s.MarkNotificationRead(ctx, created.ID))
			assert.ErrorIs(t, s.MarkNotificationRead(ctx, "missing"), ErrNotFound)

			all, err := s.ListNotifications(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			for _, n := range all {
				if n.ID == created.ID {
					assert.True(t, n.Read)
					require.NotNil(t, n.RelatedTo)
					assert.Equal(t, model.RelatedRef{Type: model.RelatedContract, ID: "42"}, *n.RelatedTo)
				} else {
					assert.False(t, n.Read)
				}
			}
		})
	}
}

func TestSeed(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)
			now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

			require.NoError(t, Seed(ctx, s, now))
			require.NoError(t, Seed(ctx, s, now), "seeding twice is a no-op")

			customers, err := s.ListCustomers(ctx)
			require.NoError(t, err)
			assert.Len(t, customers, len(seedCustomers))

			contracts, err := s.ListContracts(ctx)
			require.NoError(t, err)
			assert.Len(t, contracts, len(seedContracts))

			notifications, err := s.ListNotifications(ctx)
			require.NoError(t, err)
			assert.Len(t, notifications, len(seedNotifications))
			for _, n := range notifications {
				require.NotNil(t, n.RelatedTo)
				assert.NotEmpty(t, n.RelatedTo.ID)
			}

			assert.NoError(t, s.Health(ctx))
		})
	}
}
