package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/contracts-service/internal/model"
)

var jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return jan1.AddDate(0, 0, offset)
}

func activeContract(id string, endOffset int) model.Contract {
	return model.Contract{
		ID:          id,
		Status:      model.ContractStatusActive,
		StartDate:   day(endOffset - 365),
		EndDate:     day(endOffset),
		RenewalDate: day(endOffset - 1),
		Amount:      decimal.NewFromInt(100),
	}
}

func TestClassifyActiveTiers(t *testing.T) {
	cases := []struct {
		name    string
		offset  int
		status  DisplayStatus
		urgency Urgency
	}{
		{"ends today", 0, StatusExpiringSoon, UrgencyHigh},
		{"ends in 7 days", 7, StatusExpiringSoon, UrgencyHigh},
		{"ends in 8 days", 8, StatusExpiringSoon, UrgencyMedium},
		{"ends in 30 days", 30, StatusExpiringSoon, UrgencyMedium},
		{"ends in 31 days", 31, StatusActive, UrgencyNone},
		{"ends in a year", 365, StatusActive, UrgencyNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(activeContract("1", tc.offset), jan1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.urgency, got.Urgency)
			assert.Equal(t, tc.offset, got.DaysRemaining)
		})
	}
}

func TestClassifyStoredActivePastEndStaysExpiringSoon(t *testing.T) {
	got, err := Classify(activeContract("1", -12), jan1)

	require.NoError(t, err)
	assert.Equal(t, StatusExpiringSoon, got.Status)
	assert.Equal(t, UrgencyHigh, got.Urgency)
	assert.Equal(t, -12, got.DaysRemaining)
}

func TestClassifyExpiredIgnoresDates(t *testing.T) {
	for _, offset := range []int{-100, 0, 3, 20, 400} {
		c := activeContract("1", offset)
		c.Status = model.ContractStatusExpired

		got, err := Classify(c, jan1)
		require.NoError(t, err)
		assert.Equal(t, StatusExpired, got.Status)
	}

	noDates := model.Contract{ID: "2", Status: model.ContractStatusExpired}
	got, err := Classify(noDates, jan1)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, got.Status)
}

func TestClassifyPending(t *testing.T) {
	c := activeContract("1", 2)
	c.Status = model.ContractStatusPending

	got, err := Classify(c, jan1)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, UrgencyNone, got.Urgency)
}

func TestClassifyRejectsMissingEndDate(t *testing.T) {
	c := model.Contract{ID: "1", Status: model.ContractStatusActive}

	_, err := Classify(c, jan1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestClassifyRejectsUnknownStatus(t *testing.T) {
	c := activeContract("1", 40)
	c.Status = "archived"

	_, err := Classify(c, jan1)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestClassifyScenarioJanuary(t *testing.T) {
	c := model.Contract{
		ID:          "1",
		Status:      model.ContractStatusActive,
		StartDate:   day(-360),
		EndDate:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		RenewalDate: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
	}

	got, err := Classify(c, jan1)
	require.NoError(t, err)
	assert.Equal(t, StatusExpiringSoon, got.Status)
	assert.Equal(t, UrgencyHigh, got.Urgency)

	renewals := UpcomingRenewals([]model.Contract{c}, jan1, DefaultWindowDays)
	require.Len(t, renewals, 1)
	assert.Equal(t, "1", renewals[0].ID)
}

func TestDaysBetweenUsesCalendarDays(t *testing.T) {
	now := time.Date(2024, time.January, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(now, time.Date(2024, time.January, 2, 0, 15, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(now, time.Date(2024, time.January, 1, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(now, time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestRenewalUrgency(t *testing.T) {
	c := model.Contract{RenewalDate: day(5)}
	assert.Equal(t, UrgencyHigh, RenewalUrgency(c, jan1))

	c.RenewalDate = day(15)
	assert.Equal(t, UrgencyMedium, RenewalUrgency(c, jan1))

	c.RenewalDate = day(16)
	assert.Equal(t, UrgencyNone, RenewalUrgency(c, jan1))
}

func TestValidateDates(t *testing.T) {
	assert.NoError(t, ValidateDates(day(0), day(10), day(10)))
	assert.NoError(t, ValidateDates(day(0), day(10), day(3)))

	assert.ErrorIs(t, ValidateDates(day(0), day(0), day(0)), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDates(day(5), day(1), day(1)), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDates(day(0), day(10), day(11)), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDates(time.Time{}, day(10), day(5)), ErrInvalidDate)
}
