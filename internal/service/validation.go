package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nurpe/contracts-service/internal/lifecycle"
	"github.com/nurpe/contracts-service/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

type customerRules struct {
	Name          string `json:"name" validate:"required,min=2"`
	ContactPerson string `json:"contactPerson" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=5"`
	Address       string `json:"address" validate:"required,min=5"`
	Status        string `json:"status" validate:"required,oneof=active inactive"`
}

type contractRules struct {
	CustomerID string `json:"customerId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=domain hosting support other"`
	Name       string `json:"name" validate:"required,min=2"`
	Status     string `json:"status" validate:"required,oneof=active expired pending"`
}

func validateCustomer(c model.Customer) error {
	return structError(validate.Struct(customerRules{
		Name:          strings.TrimSpace(c.Name),
		ContactPerson: strings.TrimSpace(c.ContactPerson),
		Email:         strings.TrimSpace(c.Email),
		Phone:         strings.TrimSpace(c.Phone),
		Address:       strings.TrimSpace(c.Address),
		Status:        string(c.Status),
	}))
}

func validateContract(c model.Contract) error {
	if err := structError(validate.Struct(contractRules{
		CustomerID: strings.TrimSpace(c.CustomerID),
		Type:       string(c.Type),
		Name:       strings.TrimSpace(c.Name),
		Status:     string(c.Status),
	})); err != nil {
		return err
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidInput)
	}
	if err := lifecycle.ValidateDates(c.StartDate, c.EndDate, c.RenewalDate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return nil
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describeField(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
