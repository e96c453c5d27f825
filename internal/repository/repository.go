package repository

import (
	"errors"

	"github.com/UnknownOlympus/roster/internal/models"
)

// ErrEmployeeNotFound is returned when no employee of the department has the requested id.
var ErrEmployeeNotFound = errors.New("employee not found")

// DepartmentRepoIface represents the interface for interacting with the employees of one department.
type DepartmentRepoIface interface {
	Name() string
	Add(employee models.Employee)
	Remove(identifier int) error
	Find(identifier int) (models.Employee, error)
	List() []string
	Employees() []models.Employee
	Len() int
}
