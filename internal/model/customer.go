package model

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ContactPerson string         `json:"contactPerson"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	CreatedAt     time.Time      `json:"createdAt"`
	Status        CustomerStatus `json:"status"`
}

// CustomerPatch carries a partial update. Nil fields are left untouched.
type CustomerPatch struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	Status        *CustomerStatus
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ContactPerson != nil {
		c.ContactPerson = *p.ContactPerson
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
