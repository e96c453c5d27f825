package repository

import (
	"fmt"
	"slices"
	"time"

	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
)

// Department is an ordered collection of employees under one name.
// It owns its records: they are stored by value and never handed out by reference.
// A Department is not safe for concurrent use.
type Department struct {
	name      string
	employees []models.Employee
	metrics   *metrics.Metrics
}

// NewDepartment creates an empty department.
func NewDepartment(name string, metrics *metrics.Metrics) *Department {
	dept := &Department{name: name, metrics: metrics}
	dept.reportSize()

	return dept
}

// Name returns the department name.
func (d *Department) Name() string {
	return d.name
}

// Add appends an employee, keeping insertion order. Ids are not checked for uniqueness.
func (d *Department) Add(employee models.Employee) {
	defer d.observe("add", time.Now())

	d.employees = append(d.employees, employee)
	d.reportSize()
}

// Remove deletes the first employee with the given id and keeps the order of the others.
func (d *Department) Remove(identifier int) error {
	defer d.observe("remove", time.Now())

	idx := d.indexOf(identifier)
	if idx < 0 {
		return fmt.Errorf("failed to remove employee %d: %w", identifier, ErrEmployeeNotFound)
	}

	d.employees = slices.Delete(d.employees, idx, idx+1)
	d.reportSize()

	return nil
}

// Find returns the first employee with the given id.
func (d *Department) Find(identifier int) (models.Employee, error) {
	defer d.observe("find", time.Now())

	idx := d.indexOf(identifier)
	if idx < 0 {
		return models.Employee{}, fmt.Errorf("failed to find employee %d: %w", identifier, ErrEmployeeNotFound)
	}

	return d.employees[idx], nil
}

// List returns one roster line per employee in insertion order.
func (d *Department) List() []string {
	defer d.observe("list", time.Now())

	lines := make([]string, 0, len(d.employees))
	for _, employee := range d.employees {
		lines = append(lines, employee.Summary())
	}

	return lines
}

// Employees returns a copy of the current records.
func (d *Department) Employees() []models.Employee {
	return slices.Clone(d.employees)
}

// Len returns the number of employees.
func (d *Department) Len() int {
	return len(d.employees)
}

// Close releases every employee owned by the department.
func (d *Department) Close() {
	clear(d.employees)
	d.employees = nil
	d.reportSize()
}

func (d *Department) indexOf(identifier int) int {
	return slices.IndexFunc(d.employees, func(e models.Employee) bool {
		return e.ID == identifier
	})
}

func (d *Department) observe(operation string, startTime time.Time) {
	if d.metrics == nil {
		return
	}

	d.metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
}

func (d *Department) reportSize() {
	if d.metrics == nil {
		return
	}

	d.metrics.RosterSize.WithLabelValues(d.name).Set(float64(len(d.employees)))
}
