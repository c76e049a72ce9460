package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractTypeDomain  ContractType = "domain"
	ContractTypeHosting ContractType = "hosting"
	ContractTypeSupport ContractType = "support"
	ContractTypeOther   ContractType = "other"
)

// ContractStatus is the stored, author-set status. The status shown to users is
// derived from it by the lifecycle package and never written back.
type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "active"
	ContractStatusExpired ContractStatus = "expired"
	ContractStatusPending ContractStatus = "pending"
)

type Contract struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"` // resolved from the customer on read
	Type         ContractType    `json:"type"`
	Name         string          `json:"name"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	RenewalDate  time.Time       `json:"renewalDate"`
	Amount       decimal.Decimal `json:"amount"`
	Status       ContractStatus  `json:"status"`
	Notes        string          `json:"notes,omitempty"`
}

type ContractPatch struct {
	CustomerID  *string
	Type        *ContractType
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	RenewalDate *time.Time
	Amount      *decimal.Decimal
	Status      *ContractStatus
	Notes       *string
}

func (p ContractPatch) Apply(c *Contract) {
	if p.CustomerID != nil {
		c.CustomerID = *p.CustomerID
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.RenewalDate != nil {
		c.RenewalDate = *p.RenewalDate
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
