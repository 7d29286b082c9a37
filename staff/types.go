/*
Package staff provides the employee bookkeeping model.

PURPOSE:
  Tracks who works for a company, how they are paid and how many
  vacation days they have left. Everything lives in memory; the types
  carry no locks and assume a single owner at a time.

KEY CONCEPTS IN THIS FILE (types.go):
  - Person: immutable identity (name, age)
  - Role:   what the employee does (developer, manager, ...)

DESIGN PRINCIPLES:
  1. Immutability: Person and Wage values never change after construction
  2. Precision: finite wage amounts are exact decimals (see Amount)
  3. Narrow mutation: only TakeVacation and PayoutVacation touch the balance
  4. Injectable output: notifications go through a Notifier

USAGE:
  jane := staff.NewEmployee(
      staff.NewPerson("Jane", 25),
      staff.RoleDeveloper,
      staff.NewSalariedWage(500),
      20,
  )
  if err := jane.TakeVacation(5); err != nil {
      var shortage *staff.VacationDaysShortageError
      if errors.As(err, &shortage) { ... }
  }

SEE ALSO:
  - wage.go:     Salaried and hourly pay policies
  - employee.go: Pay and vacation operations
  - company.go:  Employee aggregation
  - errors.go:   VacationDaysShortageError
*/
package staff

import (
	"fmt"
	"strings"
)

// =============================================================================
// PERSON
// =============================================================================

// Person is the identity of an employee. The zero value is a nameless
// person aged 0.
type Person struct {
	name string
	age  uint8
}

// NewPerson creates a person.
func NewPerson(name string, age uint8) Person {
	return Person{name: name, age: age}
}

func (p Person) Name() string { return p.name }
func (p Person) Age() uint8 { return p.age }

// =============================================================================
// ROLE
// =============================================================================

// Role is the job an employee holds.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleManager   Role = "manager"
	RoleDesigner  Role = "designer"
	RoleTester    Role = "tester"
)

var roles = []Role{RoleDeveloper, RoleManager, RoleDesigner, RoleTester}

// Roles returns every known role in declaration order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole maps a case-insensitive role name to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}
