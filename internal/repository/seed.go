package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/model"
)

// SeedTarget is satisfied by MemoryStore and by the gorm repositories bundled
// in Repositories.
type SeedTarget interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error)
	CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error)
}

type seedContract struct {
	customer int
	kind     model.ContractType
	name     string
	start    int
	end      int
	renewal  int
	amount   string
	status   model.ContractStatus
	notes    string
}

type seedNotification struct {
	kind    model.NotificationType
	message string
	related model.RelatedType
	index   int
	age     int
	read    bool
}

var seedCustomers = []model.Customer{
	{Name: "ACME Corporation", Email: "info@acme.com", Phone: "(555) 123-4567", ContactPerson: "John Doe", Address: "123 Main St, Anytown, USA", Status: model.CustomerStatusActive},
	{Name: "TechCorp Solutions", Email: "contact@techcorp.com", Phone: "(555) 987-6543", ContactPerson: "Jane Smith", Address: "456 Tech Blvd, Silicon Valley, USA", Status: model.CustomerStatusActive},
	{Name: "Global Systems Inc.", Email: "support@globalsys.com", Phone: "(555) 456-7890", ContactPerson: "Michael Johnson", Address: "789 Global Ave, Metropolis, USA", Status: model.CustomerStatusActive},
	{Name: "Innovative Startups", Email: "hello@innovative.co", Phone: "(555) 234-5678", ContactPerson: "Emily Chen", Address: "321 Innovation Way, Startupville, USA", Status: model.CustomerStatusInactive},
	{Name: "Enterprise Solutions", Email: "sales@enterprise.biz", Phone: "(555) 876-5432", ContactPerson: "Robert Wilson", Address: "654 Enterprise St, Businesstown, USA", Status: model.CustomerStatusActive},
}

// Day offsets are relative to the seeding time.
var seedContracts = []seedContract{
	{0, model.ContractTypeDomain, "acme.com Domain", -330, 35, 7, "120", model.ContractStatusActive, "Annual domain renewal"},
	{0, model.ContractTypeHosting, "Web Hosting Plan", -180, 185, 160, "1200", model.ContractStatusActive, "Premium hosting plan with backup"},
	{1, model.ContractTypeSupport, "IT Support Contract", -25, -5, -20, "5000", model.ContractStatusExpired, "Renewal pending client approval"},
	{2, model.ContractTypeDomain, "globalsys.com Domain", -270, 95, 65, "150", model.ContractStatusActive, ""},
	{2, model.ContractTypeHosting, "Cloud Server", -58, 2, 1, "3600", model.ContractStatusActive, "High-performance cloud server package"},
	{4, model.ContractTypeSupport, "Managed IT Services", -120, 245, 215, "12000", model.ContractStatusActive, "Comprehensive managed IT services"},
	{3, model.ContractTypeDomain, "innovative.co Domain", -340, 25, 10, "95", model.ContractStatusActive, ""},
}

var seedNotifications = []seedNotification{
	{model.NotificationContractExpiring, "ACME Corporation domain renewal due in 7 days", model.RelatedContract, 0, 1, false},
	{model.NotificationContractExpired, "TechCorp Solutions IT Support Contract has expired", model.RelatedContract, 2, 5, true},
	{model.NotificationCustomerAdded, "New customer Global Systems Inc. has been added", model.RelatedCustomer, 2, 10, true},
	{model.NotificationContractExpiring, "Global Systems Inc. Cloud Server renewal due tomorrow", model.RelatedContract, 4, 1, false},
	{model.NotificationContractExpiring, "Innovative Startups domain renewal due in 10 days", model.RelatedContract, 6, 2, false},
}

// Seed loads demo customers, contracts and notifications with dates relative
// to now. It does nothing when customers already exist.
func Seed(ctx context.Context, target SeedTarget, now time.Time) error {
	existing, err := target.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	customerIDs := make([]string, 0, len(seedCustomers))
	for _, c := range seedCustomers {
		created, err := target.CreateCustomer(ctx, c)
		if err != nil {
			return fmt.Errorf("seed customer %q: %w", c.Name, err)
		}
		customerIDs = append(customerIDs, created.ID)
	}

	contractIDs := make([]string, 0, len(seedContracts))
	for _, sc := range seedContracts {
		created, err := target.CreateContract(ctx, model.Contract{
			CustomerID:  customerIDs[sc.customer],
			Type:        sc.kind,
			Name:        sc.name,
			StartDate:   now.AddDate(0, 0, sc.start),
			EndDate:     now.AddDate(0, 0, sc.end),
			RenewalDate: now.AddDate(0, 0, sc.renewal),
			Amount:      decimal.RequireFromString(sc.amount),
			Status:      sc.status,
			Notes:       sc.notes,
		})
		if err != nil {
			return fmt.Errorf("seed contract %q: %w", sc.name, err)
		}
		contractIDs = append(contractIDs, created.ID)
	}

	for _, sn := range seedNotifications {
		ref := &model.RelatedRef{Type: sn.related}
		if sn.related == model.RelatedContract {
			ref.ID = contractIDs[sn.index]
		} else {
			ref.ID = customerIDs[sn.index]
		}
		if _, err := target.CreateNotification(ctx, model.Notification{
			Type:      sn.kind,
			Message:   sn.message,
			RelatedTo: ref,
			Date:      now.AddDate(0, 0, -sn.age),
			Read:      sn.read,
		}); err != nil {
			return fmt.Errorf("seed notification: %w", err)
		}
	}
	return nil
}
