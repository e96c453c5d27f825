package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Role is the employment tag derived from an employee's compensation.
type Role string

const (
	RoleFullTime Role = "Full-Time"
	RolePartTime Role = "Part-Time"
)

// Compensation is the variant part of an Employee. It is implemented only by FullTime and PartTime.
type Compensation interface {
	Role() Role
	evaluate(name string) string
}

// FullTime is the compensation of a salaried employee.
type FullTime struct {
	AnnualSalary decimal.Decimal `json:"annualSalary"`
}

// Role implements Compensation.
func (FullTime) Role() Role { return RoleFullTime }

func (c FullTime) evaluate(name string) string {
	return fmt.Sprintf("Performance evaluation for %s Employee %s with salary: $%s",
		RoleFullTime, name, c.AnnualSalary.String())
}

// PartTime is the compensation of an hourly employee.
type PartTime struct {
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	HoursWorked int             `json:"hoursWorked"`
}

// Role implements Compensation.
func (PartTime) Role() Role { return RolePartTime }

func (c PartTime) evaluate(name string) string {
	return fmt.Sprintf("Performance evaluation for %s Employee %s with hourly rate: $%s and hours worked: %d",
		RolePartTime, name, c.HourlyRate.String(), c.HoursWorked)
}

// Employee represents one worker of a department.
type Employee struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Department string       `json:"department"`
	Pay        Compensation `json:"pay"`
}

// NewFullTime builds a salaried employee. Amounts are not validated.
func NewFullTime(id int, name, department string, annualSalary decimal.Decimal) Employee {
	return Employee{
		ID:         id,
		Name:       name,
		Department: department,
		Pay:        FullTime{AnnualSalary: annualSalary},
	}
}

// NewPartTime builds an hourly employee. Amounts are not validated.
func NewPartTime(id int, name, department string, hourlyRate decimal.Decimal, hoursWorked int) Employee {
	return Employee{
		ID:         id,
		Name:       name,
		Department: department,
		Pay:        PartTime{HourlyRate: hourlyRate, HoursWorked: hoursWorked},
	}
}

// Role returns the tag of the employee's compensation, or an empty role if it has none.
func (e Employee) Role() Role {
	if e.Pay == nil {
		return ""
	}

	return e.Pay.Role()
}

// FullTime returns the salaried compensation if the employee has one.
func (e Employee) FullTime() (FullTime, bool) {
	c, ok := e.Pay.(FullTime)
	return c, ok
}

// PartTime returns the hourly compensation if the employee has one.
func (e Employee) PartTime() (PartTime, bool) {
	c, ok := e.Pay.(PartTime)
	return c, ok
}

// SetAnnualSalary changes the salary of a full-time employee.
// It reports false and leaves the employee untouched for any other variant.
func (e *Employee) SetAnnualSalary(salary decimal.Decimal) bool {
	c, ok := e.FullTime()
	if !ok {
		return false
	}

	c.AnnualSalary = salary
	e.Pay = c

	return true
}

// SetHourlyRate changes the rate of a part-time employee.
func (e *Employee) SetHourlyRate(rate decimal.Decimal) bool {
	c, ok := e.PartTime()
	if !ok {
		return false
	}

	c.HourlyRate = rate
	e.Pay = c

	return true
}

// SetHoursWorked changes the hours of a part-time employee.
func (e *Employee) SetHoursWorked(hours int) bool {
	c, ok := e.PartTime()
	if !ok {
		return false
	}

	c.HoursWorked = hours
	e.Pay = c

	return true
}

// EvaluatePerformance returns a human-readable summary of the employee's compensation.
func (e Employee) EvaluatePerformance() string {
	if e.Pay == nil {
		return fmt.Sprintf("Performance evaluation for %s is not implemented.", e.Name)
	}

	return e.Pay.evaluate(e.Name)
}

// Summary is the roster line of the employee.
func (e Employee) Summary() string {
	return fmt.Sprintf("ID: %d, Name: %s, Department: %s, Role: %s", e.ID, e.Name, e.Department, e.Role())
}
