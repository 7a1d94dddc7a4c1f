package service

import (
	"errors"
	"fmt"
	"math"

	"deal-analyzer/domain"
)

// ErrInvalidInput is matched by every InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError names the input field that failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// validator collects the first failure of a chain of checks so the
// analyzers can list their rules top to bottom.
type validator struct {
	err error
}

func (v *validator) money(field string, value int64) {
	if v.err != nil {
		return
	}
	if value < 0 {
		v.err = invalid(field, "must not be negative")
		return
	}
	if value > MaxMonetaryAmount {
		v.err = invalid(field, "exceeds the maximum of %d", int64(MaxMonetaryAmount))
	}
}

func (v *validator) positiveMoney(field string, value int64) {
	if v.err != nil {
		return
	}
	if value <= 0 {
		v.err = invalid(field, "must be greater than zero")
		return
	}
	v.money(field, value)
}

func (v *validator) percent(field string, value float64) {
	v.bounded(field, value, MaxPercent)
}

func (v *validator) rate(field string, value float64) {
	v.bounded(field, value, MaxInterestRate)
}

func (v *validator) bounded(field string, value, max float64) {
	if v.err != nil {
		return
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.err = invalid(field, "must be a finite number")
		return
	}
	if value < 0 || value > max {
		v.err = invalid(field, "must be between 0 and %g", max)
	}
}

func (v *validator) termYears(field string, value int) {
	if v.err != nil {
		return
	}
	if value < MinTermYears || value > MaxTermYears {
		v.err = invalid(field, "must be between %d and %d years", MinTermYears, MaxTermYears)
	}
}

func (v *validator) months(field string, value int) {
	if v.err != nil {
		return
	}
	if value < 0 || value > MaxHoldingMonths {
		v.err = invalid(field, "must be between 0 and %d months", MaxHoldingMonths)
	}
}

func (v *validator) operating(o domain.OperatingInputs) {
	v.money("monthlyRent", o.MonthlyRent)
	v.percent("vacancyRate", o.VacancyRate)
	v.percent("propertyManagementPercent", o.PropertyManagementPercent)
	v.money("monthlyInsurance", o.MonthlyInsurance)
	v.money("monthlyPropertyTax", o.MonthlyPropertyTax)
	v.money("monthlyHOA", o.MonthlyHOA)
	v.money("monthlyMaintenance", o.MonthlyMaintenance)
}
