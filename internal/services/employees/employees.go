package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/repository"
)

const (
	statusSuccess  = "success"
	statusNotFound = "not_found"
)

type Staff struct {
	log     *slog.Logger
	repo    repository.DepartmentRepoIface
	metrics *metrics.Metrics
}

func NewStaff(log *slog.Logger, repo repository.DepartmentRepoIface, metrics *metrics.Metrics) *Staff {
	return &Staff{log: log, repo: repo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", s.repo.Name()),
	)
}

func (s *Staff) count(operation, status string) {
	if s.metrics == nil {
		return
	}

	s.metrics.Operations.WithLabelValues(operation, status).Inc()
}

// HireFullTime adds a salaried employee to the department and returns the stored record.
func (s *Staff) HireFullTime(ctx context.Context, identifier int, name string, salary decimal.Decimal) models.Employee {
	const opn = "Staff.HireFullTime"
	log := s.initLogger(opn)

	employee := models.NewFullTime(identifier, name, s.repo.Name(), salary)
	s.repo.Add(employee)
	s.count("hire_full_time", statusSuccess)

	log.InfoContext(ctx, "Full-time employee added", "id", identifier, "size", s.repo.Len())

	return employee
}

// HirePartTime adds an hourly employee to the department and returns the stored record.
func (s *Staff) HirePartTime(
	ctx context.Context,
	identifier int,
	name string,
	rate decimal.Decimal,
	hours int,
) models.Employee {
	const opn = "Staff.HirePartTime"
	log := s.initLogger(opn)

	employee := models.NewPartTime(identifier, name, s.repo.Name(), rate, hours)
	s.repo.Add(employee)
	s.count("hire_part_time", statusSuccess)

	log.InfoContext(ctx, "Part-time employee added", "id", identifier, "size", s.repo.Len())

	return employee
}

// Dismiss removes the first employee with the given id.
// The returned error wraps repository.ErrEmployeeNotFound when there is no such employee.
func (s *Staff) Dismiss(ctx context.Context, identifier int) error {
	const opn = "Staff.Dismiss"
	log := s.initLogger(opn)

	if err := s.repo.Remove(identifier); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			s.count("dismiss", statusNotFound)
			log.InfoContext(ctx, "Employee to dismiss was not found", "id", identifier)
		}
		return fmt.Errorf("failed to dismiss employee: %w", err)
	}

	s.count("dismiss", statusSuccess)
	log.InfoContext(ctx, "Employee dismissed", "id", identifier, "size", s.repo.Len())

	return nil
}

// Roster returns the roster lines of the department in insertion order.
func (s *Staff) Roster(ctx context.Context) []string {
	const opn = "Staff.Roster"
	log := s.initLogger(opn)

	lines := s.repo.List()
	s.count("roster", statusSuccess)
	log.DebugContext(ctx, "Roster listed", "size", len(lines))

	return lines
}

// Evaluate returns the performance evaluation of one employee.
func (s *Staff) Evaluate(ctx context.Context, identifier int) (string, error) {
	const opn = "Staff.Evaluate"
	log := s.initLogger(opn)

	employee, err := s.repo.Find(identifier)
	if err != nil {
		s.count("evaluate", statusNotFound)
		log.InfoContext(ctx, "Employee to evaluate was not found", "id", identifier, sl.Err(err))
		return "", fmt.Errorf("failed to evaluate employee: %w", err)
	}

	s.count("evaluate", statusSuccess)

	return employee.EvaluatePerformance(), nil
}

// EvaluateAll returns the performance evaluation of every employee in insertion order.
func (s *Staff) EvaluateAll(ctx context.Context) []string {
	const opn = "Staff.EvaluateAll"
	log := s.initLogger(opn)

	employees := s.repo.Employees()
	evaluations := make([]string, 0, len(employees))
	for _, employee := range employees {
		evaluations = append(evaluations, employee.EvaluatePerformance())
	}

	s.count("evaluate_all", statusSuccess)
	log.DebugContext(ctx, "Department evaluated", "size", len(evaluations))

	return evaluations
}
