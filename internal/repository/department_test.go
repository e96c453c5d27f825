package repository_test

import (
	"fmt"
	"testing"

	"github.com/UnknownOlympus/roster/internal/metrics"
	"github.com/UnknownOlympus/roster/internal/models"
	"github.com/UnknownOlympus/roster/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDepartment(t *testing.T) (*repository.Department, *metrics.Metrics) {
	t.Helper()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return repository.NewDepartment("Sales", appMetrics), appMetrics
}

func fullTime(id int, name string) models.Employee {
	return models.NewFullTime(id, name, "Sales", decimal.NewFromInt(50000))
}

func ids(dept *repository.Department) []int {
	var result []int
	for _, employee := range dept.Employees() {
		result = append(result, employee.ID)
	}

	return result
}

func TestDepartment_AddAndList(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	added := []models.Employee{
		fullTime(1, "Ann"),
		models.NewPartTime(2, "Bo", "Sales", decimal.NewFromInt(20), 10),
		fullTime(3, "Cy"),
	}

	for _, employee := range added {
		dept.Add(employee)
	}

	lines := dept.List()
	require.Len(t, lines, len(added))
	for i, employee := range added {
		assert.Equal(t,
			fmt.Sprintf("ID: %d, Name: %s, Department: Sales, Role: %s", employee.ID, employee.Name, employee.Role()),
			lines[i])
	}
	assert.Equal(t, "Sales", dept.Name())
	assert.Equal(t, 3, dept.Len())
}

func TestDepartment_ListIsIdempotent(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))
	dept.Add(fullTime(2, "Bo"))

	assert.Equal(t, dept.List(), dept.List())
}

func TestDepartment_ListEmpty(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)

	assert.Empty(t, dept.List())
}

func TestDepartment_RemoveMiddlePreservesOrder(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))
	dept.Add(fullTime(2, "Bo"))
	dept.Add(fullTime(3, "Cy"))

	require.NoError(t, dept.Remove(2))

	assert.Equal(t, []int{1, 3}, ids(dept))
	assert.Equal(t, 2, dept.Len())
}

func TestDepartment_RemoveOnlyElement(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))

	require.NoError(t, dept.Remove(1))

	assert.Empty(t, dept.List())
	assert.Zero(t, dept.Len())
}

func TestDepartment_RemoveAbsent(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))
	before := dept.List()

	err := dept.Remove(42)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.Equal(t, before, dept.List())
}

func TestDepartment_RemoveDuplicateIDRemovesFirst(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "First"))
	dept.Add(fullTime(1, "Second"))

	require.NoError(t, dept.Remove(1))

	remaining := dept.Employees()
	require.Len(t, remaining, 1)
	assert.Equal(t, "Second", remaining[0].Name)
}

func TestDepartment_Find(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))

	found, err := dept.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)

	_, err = dept.Find(2)
	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestDepartment_EmployeesReturnsCopy(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))

	snapshot := dept.Employees()
	snapshot[0].Name = "Mallory"

	found, err := dept.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.Name)
}

func TestDepartment_Unbounded(t *testing.T) {
	t.Parallel()

	dept, _ := newDepartment(t)
	for i := 1; i <= 250; i++ {
		dept.Add(fullTime(i, fmt.Sprintf("emp-%d", i)))
	}

	assert.Equal(t, 250, dept.Len())
}

func TestDepartment_Close(t *testing.T) {
	t.Parallel()

	dept, appMetrics := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))
	dept.Add(fullTime(2, "Bo"))
	assert.InDelta(t, 2, testutil.ToFloat64(appMetrics.RosterSize.WithLabelValues("Sales")), 0)

	dept.Close()

	assert.Zero(t, dept.Len())
	assert.InDelta(t, 0, testutil.ToFloat64(appMetrics.RosterSize.WithLabelValues("Sales")), 0)
}

func TestDepartment_ObservesOperations(t *testing.T) {
	t.Parallel()

	dept, appMetrics := newDepartment(t)
	dept.Add(fullTime(1, "Ann"))
	_ = dept.List()
	_ = dept.Remove(9)

	assert.Equal(t, 3, testutil.CollectAndCount(appMetrics.OperationDuration))
}

func TestDepartment_NilMetrics(t *testing.T) {
	t.Parallel()

	dept := repository.NewDepartment("Sales", nil)
	dept.Add(fullTime(1, "Ann"))

	require.NoError(t, dept.Remove(1))
	dept.Close()
}
