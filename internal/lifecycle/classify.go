// Package lifecycle derives display status and summary figures from stored
// contracts. Every function takes "now" explicitly and never reads the clock.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/nurpe/contracts-service/internal/model"
)

const (
	DefaultWindowDays       = 30
	HighUrgencyDays         = 7
	MediumRenewalDays       = 15
	RecentNotificationLimit = 3
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrUnknownStatus = errors.New("unknown contract status")
)

// DisplayStatus is presentation only. It is derived from model.ContractStatus
// and the current date and must never be persisted.
type DisplayStatus string

const (
	StatusActive       DisplayStatus = "active"
	StatusExpiringSoon DisplayStatus = "expiring-soon"
	StatusExpired      DisplayStatus = "expired"
	StatusPending      DisplayStatus = "pending"
)

type Urgency string

const (
	UrgencyNone   Urgency = "none"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Classification struct {
	Status        DisplayStatus `json:"displayStatus"`
	Urgency       Urgency       `json:"urgency"`
	DaysRemaining int           `json:"daysRemaining"`
}

// Classify derives the display status of a contract.
//
// The stored status is authoritative: an active contract whose end date has
// already passed is reported as expiring soon with high urgency and a negative
// day count, not as expired.
func Classify(c model.Contract, now time.Time) (Classification, error) {
	var days int
	if !c.EndDate.IsZero() {
		days = DaysBetween(now, c.EndDate)
	}

	switch c.Status {
	case model.ContractStatusExpired:
		return Classification{Status: StatusExpired, Urgency: UrgencyNone, DaysRemaining: days}, nil
	case model.ContractStatusPending:
		return Classification{Status: StatusPending, Urgency: UrgencyNone, DaysRemaining: days}, nil
	case model.ContractStatusActive:
	default:
		return Classification{}, fmt.Errorf("%w: %q", ErrUnknownStatus, c.Status)
	}

	if c.EndDate.IsZero() {
		return Classification{}, fmt.Errorf("%w: contract %s has no end date", ErrInvalidDate, c.ID)
	}

	switch {
	case days <= HighUrgencyDays:
		return Classification{Status: StatusExpiringSoon, Urgency: UrgencyHigh, DaysRemaining: days}, nil
	case days <= DefaultWindowDays:
		return Classification{Status: StatusExpiringSoon, Urgency: UrgencyMedium, DaysRemaining: days}, nil
	default:
		return Classification{Status: StatusActive, Urgency: UrgencyNone, DaysRemaining: days}, nil
	}
}

// RenewalUrgency grades how close the renewal decision is, as shown next to
// upcoming renewals.
func RenewalUrgency(c model.Contract, now time.Time) Urgency {
	days := DaysBetween(now, c.RenewalDate)
	switch {
	case days <= HighUrgencyDays:
		return UrgencyHigh
	case days <= MediumRenewalDays:
		return UrgencyMedium
	default:
		return UrgencyNone
	}
}

// DaysBetween returns the number of calendar days (UTC) from now to t.
func DaysBetween(now, t time.Time) int {
	return int(dateOnly(t).Sub(dateOnly(now)) / (24 * time.Hour))
}

// ValidateDates checks the ordering invariant of a contract period.
func ValidateDates(start, end, renewal time.Time) error {
	if start.IsZero() || end.IsZero() || renewal.IsZero() {
		return fmt.Errorf("%w: start, end and renewal dates are required", ErrInvalidDate)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidDate)
	}
	if renewal.After(end) {
		return fmt.Errorf("%w: renewal date must be on or before end date", ErrInvalidDate)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
