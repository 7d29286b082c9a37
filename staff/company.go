package staff

import (
	"fmt"
	"iter"
)

// =============================================================================
// COMPANY - Owns its employees
// =============================================================================

// Company is a named, insertion-ordered collection of employees.
// Employees are owned by exactly one company.
type Company struct {
	Name      string
	employees []*Employee
}

// NewCompany creates a company with an initial staff.
func NewCompany(name string, employees ...*Employee) *Company {
	c := &Company{Name: name}
	c.employees = append(c.employees, employees...)
	return c
}

// AddEmployee appends e to the roster. No duplicate detection.
func (c *Company) AddEmployee(e *Employee) {
	c.employees = append(c.employees, e)
}

// AllEmployees returns a read-only view of the roster.
func (c *Company) AllEmployees() Roster {
	return Roster{employees: c.employees}
}

// Employee returns the employee at position index, for callers that
// need to run pay or vacation operations on one roster entry.
func (c *Company) Employee(index int) (*Employee, error) {
	if index < 0 || index >= len(c.employees) {
		return nil, fmt.Errorf("%w: index %d (company %q has %d)",
			ErrEmployeeNotFound, index, c.Name, len(c.employees))
	}
	return c.employees[index], nil
}

// =============================================================================
// ROSTER - Read-only view
// =============================================================================

// Roster is a read-only view over a company's employees. It shares the
// company's storage, so it reflects the roster as of the call to
// AllEmployees. Entries are handed out as value snapshots.
type Roster struct {
	employees []*Employee
}

// Len returns the number of employees.
func (r Roster) Len() int { return len(r.employees) }

// At returns a snapshot of the employee at position i. It panics if i
// is out of range, like a slice index.
func (r Roster) At(i int) EmployeeSnapshot {
	return snapshotOf(r.employees[i])
}

// All yields every employee snapshot in insertion order.
func (r Roster) All() iter.Seq2[int, EmployeeSnapshot] {
	return func(yield func(int, EmployeeSnapshot) bool) {
		for i, e := range r.employees {
			if !yield(i, snapshotOf(e)) {
				return
			}
		}
	}
}

// EmployeeSnapshot is an immutable copy of an employee's state.
type EmployeeSnapshot struct {
	Person       Person
	Role         Role
	Wage         Wage
	VacationDays uint8
}

func snapshotOf(e *Employee) EmployeeSnapshot {
	return EmployeeSnapshot{
		Person:       e.person,
		Role:         e.role,
		Wage:         e.wage,
		VacationDays: e.vacationDays,
	}
}
