/*
Package factory provides JSON to Go employee conversion.

PURPOSE:
  Converts JSON employee and company definitions into staff.Employee and
  staff.Company values, and back. The API, the demo scenarios and the CLI
  all describe staff in this format, so validation lives in one place.

JSON SCHEMA:
  {
    "name": "Jane",
    "age": 25,
    "role": "developer",
    "vacation_days": 20,
    "wage": {
      "type": "hourly",
      "hourly_rate": 20,
      "hours_worked": 40
    }
  }

  Wage types:
    salaried: {"type": "salaried", "monthly_salary": 1000}
    hourly:   {"type": "hourly", "hourly_rate": 20, "hours_worked": 40}

VALIDATION:
  - name must be non-empty
  - role must be a known staff.Role
  - age and vacation_days must fit in 0..255
  - wage.type must be salaried or hourly
  Wage amounts are passed through unchecked; the staff model trusts the
  caller for those.

USAGE:
  f := factory.NewEmployeeFactory(staff.WithNotifier(logNotifier))
  emp, err := f.ParseEmployee(`{"name": "Jane", ...}`)

SEE ALSO:
  - staff/employee.go: Employee type
  - api/scenarios.go: Demo companies defined in this format
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/warp/staffing/staff"
)

var (
	// ErrInvalidEmployee is returned when an employee definition fails validation.
	ErrInvalidEmployee = errors.New("invalid employee definition")

	// ErrUnknownWageType is returned for a wage type other than salaried or hourly.
	ErrUnknownWageType = errors.New("unknown wage type")
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// EmployeeJSON is the JSON representation of an employee.
type EmployeeJSON struct {
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Role         string   `json:"role"`
	VacationDays int      `json:"vacation_days"`
	Wage         WageJSON `json:"wage"`
}

// WageJSON represents a wage policy. Only the fields of the chosen type
// are read.
type WageJSON struct {
	Type          string  `json:"type"` // salaried, hourly
	MonthlySalary float64 `json:"monthly_salary,omitempty"`
	HourlyRate    float64 `json:"hourly_rate,omitempty"`
	HoursWorked   float64 `json:"hours_worked,omitempty"`
}

// CompanyJSON is the JSON representation of a company and its staff.
type CompanyJSON struct {
	Name      string         `json:"name"`
	Employees []EmployeeJSON `json:"employees,omitempty"`
}

// =============================================================================
// EMPLOYEE FACTORY
// =============================================================================

// EmployeeFactory converts JSON definitions to staff values. Options are
// applied to every employee it builds.
type EmployeeFactory struct {
	opts []staff.Option
}

// NewEmployeeFactory creates a factory.
func NewEmployeeFactory(opts ...staff.Option) *EmployeeFactory {
	return &EmployeeFactory{opts: opts}
}

// ParseEmployee parses a JSON string into an Employee.
func (f *EmployeeFactory) ParseEmployee(jsonStr string) (*staff.Employee, error) {
	var ej EmployeeJSON
	if err := json.Unmarshal([]byte(jsonStr), &ej); err != nil {
		return nil, fmt.Errorf("failed to parse employee JSON: %w", err)
	}
	return f.FromJSON(ej)
}

// FromJSON validates ej and builds the Employee.
func (f *EmployeeFactory) FromJSON(ej EmployeeJSON) (*staff.Employee, error) {
	name := strings.TrimSpace(ej.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidEmployee)
	}
	age, err := toUint8("age", ej.Age)
	if err != nil {
		return nil, err
	}
	days, err := toUint8("vacation_days", ej.VacationDays)
	if err != nil {
		return nil, err
	}
	role, err := staff.ParseRole(ej.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
	}
	wage, err := parseWage(ej.Wage)
	if err != nil {
		return nil, err
	}

	return staff.NewEmployee(staff.NewPerson(name, age), role, wage, days, f.opts...), nil
}

// ParseCompany parses a JSON string into a Company.
func (f *EmployeeFactory) ParseCompany(jsonStr string) (*staff.Company, error) {
	var cj CompanyJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nil, fmt.Errorf("failed to parse company JSON: %w", err)
	}
	return f.CompanyFromJSON(cj)
}

// CompanyFromJSON builds a Company, failing on the first invalid employee.
func (f *EmployeeFactory) CompanyFromJSON(cj CompanyJSON) (*staff.Company, error) {
	name := strings.TrimSpace(cj.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrInvalidEmployee)
	}

	company := staff.NewCompany(name)
	for i, ej := range cj.Employees {
		emp, err := f.FromJSON(ej)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		company.AddEmployee(emp)
	}
	return company, nil
}

// ToJSON converts an employee snapshot back to its JSON form.
func ToJSON(e staff.EmployeeSnapshot) EmployeeJSON {
	return EmployeeJSON{
		Name:         e.Person.Name(),
		Age:          int(e.Person.Age()),
		Role:         string(e.Role),
		VacationDays: int(e.VacationDays),
		Wage:         WageToJSON(e.Wage),
	}
}

// WageToJSON converts a wage policy to its JSON form.
func WageToJSON(w staff.Wage) WageJSON {
	switch v := w.(type) {
	case staff.SalariedWage:
		return WageJSON{Type: string(staff.WageSalaried), MonthlySalary: v.MonthlySalary.Float64()}
	case staff.HourlyWage:
		return WageJSON{
			Type:        string(staff.WageHourly),
			HourlyRate:  v.HourlyRate.Float64(),
			HoursWorked: v.HoursWorked.Float64(),
		}
	default:
		return WageJSON{}
	}
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parseWage(wj WageJSON) (staff.Wage, error) {
	switch staff.WageKind(strings.ToLower(strings.TrimSpace(wj.Type))) {
	case staff.WageSalaried:
		return staff.NewSalariedWage(wj.MonthlySalary), nil
	case staff.WageHourly:
		return staff.NewHourlyWage(wj.HourlyRate, wj.HoursWorked), nil
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidEmployee, ErrUnknownWageType, wj.Type)
	}
}

func toUint8(field string, v int) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s must be between 0 and %d, got %d",
			ErrInvalidEmployee, field, math.MaxUint8, v)
	}
	return uint8(v), nil
}
