/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the staff model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Company:   CompanyDTO, CreateCompanyRequest (factory.CompanyJSON)
  Employee:  EmployeeDTO, CreateEmployeeRequest (factory.EmployeeJSON)
  Pay:       PayDTO
  Vacation:  VacationRequestDTO, VacationDTO, ShortageDTO
  Scenarios: ScenarioDTO, LoadScenarioRequest

SEE ALSO:
  - handlers.go: Uses these types
  - factory/employee.go: EmployeeJSON and CompanyJSON
*/
package api

import (
	"github.com/warp/staffing/factory"
	"github.com/warp/staffing/staff"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CompanyDTO represents a company in API responses.
type CompanyDTO struct {
	Name      string        `json:"name"`
	Headcount int           `json:"headcount"`
	Employees []EmployeeDTO `json:"employees,omitempty"`
}

// CreateCompanyRequest is the request to create a company.
type CreateCompanyRequest = factory.CompanyJSON

// EmployeeDTO represents an employee in API responses. Index is the
// employee's position in the company roster and addresses it in URLs.
type EmployeeDTO struct {
	Index        int              `json:"index"`
	Name         string           `json:"name"`
	Age          int              `json:"age"`
	Role         string           `json:"role"`
	VacationDays int              `json:"vacation_days"`
	Wage         factory.WageJSON `json:"wage"`
	Pay          float64          `json:"pay"`
}

// CreateEmployeeRequest is the request to add an employee.
type CreateEmployeeRequest = factory.EmployeeJSON

// PayDTO is the result of a pay run for one employee.
type PayDTO struct {
	Company string  `json:"company"`
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"` // exact decimal rendering
}

// VacationRequestDTO is the request to take vacation days.
type VacationRequestDTO struct {
	Days int `json:"days"`
}

// VacationDTO is the balance after a successful debit.
type VacationDTO struct {
	Company      string `json:"company"`
	Index        int    `json:"index"`
	Name         string `json:"name"`
	Debited      int    `json:"debited"`
	VacationDays int    `json:"vacation_days"`
}

// ShortageDTO carries the fields of a VacationDaysShortageError.
type ShortageDTO struct {
	RequestedDays int    `json:"requested_days"`
	RemainingDays int    `json:"remaining_days"`
	Message       string `json:"message"`
}

// ScenarioDTO represents a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest is the request to load a scenario.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toEmployeeDTO(index int, e staff.EmployeeSnapshot) EmployeeDTO {
	pay := e.Wage.CalculatePay().Float64()
	return EmployeeDTO{
		Index:        index,
		Name:         e.Person.Name(),
		Age:          int(e.Person.Age()),
		Role:         string(e.Role),
		VacationDays: int(e.VacationDays),
		Wage:         factory.WageToJSON(e.Wage),
		Pay:          pay,
	}
}

func toEmployeeDTOs(c *staff.Company) []EmployeeDTO {
	roster := c.AllEmployees()
	dtos := make([]EmployeeDTO, 0, roster.Len())
	for i, e := range roster.All() {
		dtos = append(dtos, toEmployeeDTO(i, e))
	}
	return dtos
}

func toCompanyDTO(c *staff.Company, withEmployees bool) CompanyDTO {
	dto := CompanyDTO{Name: c.Name, Headcount: c.AllEmployees().Len()}
	if withEmployees {
		dto.Employees = toEmployeeDTOs(c)
	}
	return dto
}

func toShortageDTO(e *staff.VacationDaysShortageError) ShortageDTO {
	return ShortageDTO{
		RequestedDays: int(e.RequestedDays),
		RemainingDays: int(e.RemainingDays),
		Message:       e.Message,
	}
}
