package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/contracts-service/internal/model"
)

type customerRecord struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Name          string    `gorm:"size:200;not null"`
	ContactPerson string    `gorm:"size:200;not null"`
	Email         string    `gorm:"size:255;not null"`
	Phone         string    `gorm:"size:64;not null"`
	Address       string    `gorm:"size:500;not null"`
	Status        string    `gorm:"size:16;not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (customerRecord) TableName() string { return "customers" }

type contractRecord struct {
	ID          string          `gorm:"primaryKey;size:36"`
	CustomerID  string          `gorm:"size:36;not null;index"`
	Type        string          `gorm:"size:16;not null"`
	Name        string          `gorm:"size:200;not null"`
	StartDate   time.Time       `gorm:"not null"`
	EndDate     time.Time       `gorm:"not null"`
	RenewalDate time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      string          `gorm:"size:16;not null;index"`
	Notes       string          `gorm:"type:text"`
}

func (contractRecord) TableName() string { return "contracts" }

type notificationRecord struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Type        string    `gorm:"size:32;not null"`
	Message     string    `gorm:"type:text;not null"`
	RelatedType *string   `gorm:"size:16"`
	RelatedID   *string   `gorm:"size:36"`
	Date        time.Time `gorm:"column:notified_at;not null;index"`
	Read        bool      `gorm:"column:is_read;not null;default:false"`
}

func (notificationRecord) TableName() string { return "notifications" }

// Models lists the gorm models owned by this package, for migrations.
func Models() []any {
	return []any{&customerRecord{}, &contractRecord{}, &notificationRecord{}}
}

func customerFromRecord(r customerRecord) model.Customer {
	return model.Customer{
		ID:            r.ID,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt.UTC(),
		Status:        model.CustomerStatus(r.Status),
	}
}

func customerToRecord(c model.Customer) customerRecord {
	return customerRecord{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

func contractFromRecord(r contractRecord) model.Contract {
	return model.Contract{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Type:        model.ContractType(r.Type),
		Name:        r.Name,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate.UTC(),
		RenewalDate: r.RenewalDate.UTC(),
		Amount:      r.Amount,
		Status:      model.ContractStatus(r.Status),
		Notes:       r.Notes,
	}
}

func contractToRecord(c model.Contract) contractRecord {
	return contractRecord{
		ID:          c.ID,
		CustomerID:  c.CustomerID,
		Type:        string(c.Type),
		Name:        c.Name,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		RenewalDate: c.RenewalDate,
		Amount:      c.Amount,
		Status:      string(c.Status),
		Notes:       c.Notes,
	}
}

func notificationFromRecord(r notificationRecord) model.Notification {
	n := model.Notification{
		ID:      r.ID,
		Type:    model.NotificationType(r.Type),
		Message: r.Message,
		Date:    r.Date.UTC(),
		Read:    r.Read,
	}
	if r.RelatedType != nil && r.RelatedID != nil {
		n.RelatedTo = &model.RelatedRef{Type: model.RelatedType(*r.RelatedType), ID: *r.RelatedID}
	}
	return n
}

func notificationToRecord(n model.Notification) notificationRecord {
	r := notificationRecord{
		ID:      n.ID,
		Type:    string(n.Type),
		Message: n.Message,
		Date:    n.Date,
		Read:    n.Read,
	}
	if n.RelatedTo != nil {
		relatedType := string(n.RelatedTo.Type)
		relatedID := n.RelatedTo.ID
		r.RelatedType = &relatedType
		r.RelatedID = &relatedID
	}
	return r
}
