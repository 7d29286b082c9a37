/*
handlers.go - HTTP API handlers for the staffing engine

PURPOSE:
  Exposes the staff model via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the staff package.

ENDPOINTS:
  Companies:
    GET    /api/companies                      List companies
    POST   /api/companies                      Create company (optionally with staff)
    GET    /api/companies/{company}            Company with its employees

  Employees:
    GET    /api/companies/{company}/employees                  Roster, insertion order
    POST   /api/companies/{company}/employees                  Add employee
    GET    /api/companies/{company}/employees/{index}          One employee
    POST   /api/companies/{company}/employees/{index}/pay      Run pay
    POST   /api/companies/{company}/employees/{index}/vacation Take vacation days
    POST   /api/companies/{company}/employees/{index}/payout   Cash out 5 days

  Scenarios:
    GET    /api/scenarios              List demo scenarios
    POST   /api/scenarios/load         Load a demo scenario
    POST   /api/scenarios/reset        Clear all companies

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Registry: in-memory companies, the only lock in the process
  - Factory:  JSON to staff conversion, injects the log notifier
  - Logger:   structured logging

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown company or employee index
  - 409: Duplicate company, vacation days shortage
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/warp/staffing/factory"
	"github.com/warp/staffing/logging"
	"github.com/warp/staffing/staff"
	"github.com/warp/staffing/store/memory"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Registry *memory.Registry
	Factory  *factory.EmployeeFactory
	Logger   *slog.Logger

	// Track currently loaded scenario
	mu              sync.Mutex
	currentScenario string
}

// NewHandler creates a new handler. Employees it creates report their
// notifications through logger.
func NewHandler(registry *memory.Registry, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Registry: registry,
		Factory:  factory.NewEmployeeFactory(staff.WithNotifier(logging.Notifier(logger))),
		Logger:   logger.With(logging.FieldComponent, logging.ComponentHTTP),
	}
}

// =============================================================================
// COMPANY HANDLERS
// =============================================================================

// ListCompanies returns every company without its roster.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	names := h.Registry.Names(ctx)

	dtos := make([]CompanyDTO, 0, len(names))
	for _, name := range names {
		err := h.Registry.View(ctx, name, func(c *staff.Company) error {
			dtos = append(dtos, toCompanyDTO(c, false))
			return nil
		})
		if errors.Is(err, memory.ErrCompanyNotFound) {
			continue // removed by a concurrent reset
		}
		if err != nil {
			h.writeDomainError(w, "Failed to list companies", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateCompany registers a new company.
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	company, err := h.Factory.CompanyFromJSON(req)
	if err != nil {
		h.writeDomainError(w, "Invalid company", err)
		return
	}
	if err := h.Registry.Add(r.Context(), company); err != nil {
		h.writeDomainError(w, "Failed to create company", err)
		return
	}

	h.Logger.InfoContext(r.Context(), "company created", "company", company.Name,
		"headcount", company.AllEmployees().Len())
	writeJSON(w, http.StatusCreated, toCompanyDTO(company, true))
}

// GetCompany returns a company with its roster.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "company")

	var dto CompanyDTO
	err := h.Registry.View(r.Context(), name, func(c *staff.Company) error {
		dto = toCompanyDTO(c, true)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to get company", err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the roster in insertion order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "company")

	var dtos []EmployeeDTO
	err := h.Registry.View(r.Context(), name, func(c *staff.Company) error {
		dtos = toEmployeeDTOs(c)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to list employees", err)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee adds an employee to a company.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "company")

	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Factory.FromJSON(req)
	if err != nil {
		h.writeDomainError(w, "Invalid employee", err)
		return
	}

	var dto EmployeeDTO
	err = h.Registry.Update(r.Context(), name, func(c *staff.Company) error {
		c.AddEmployee(emp)
		roster := c.AllEmployees()
		dto = toEmployeeDTO(roster.Len()-1, roster.At(roster.Len()-1))
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to add employee", err)
		return
	}

	h.Logger.InfoContext(r.Context(), "employee added", "company", name, "index", dto.Index, "name", dto.Name)
	writeJSON(w, http.StatusCreated, dto)
}

// GetEmployee returns one roster entry.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "company")
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var dto EmployeeDTO
	err := h.Registry.View(r.Context(), name, func(c *staff.Company) error {
		if _, err := c.Employee(index); err != nil {
			return err
		}
		dto = toEmployeeDTO(index, c.AllEmployees().At(index))
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to get employee", err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// PAY AND VACATION HANDLERS
// =============================================================================

// PayEmployee runs a pay run for one employee.
func (h *Handler) PayEmployee(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "company")
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var dto PayDTO
	err := h.Registry.Update(r.Context(), name, func(c *staff.Company) error {
		emp, err := c.Employee(index)
		if err != nil {
			return err
		}
		emp.Pay()

		amount := emp.PayAmount()
		dto = PayDTO{
			Company: name,
			Index:   index,
			Name:    emp.Person().Name(),
			Amount:  amount.Float64(),
			Display: amount.String(),
		}
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to pay employee", err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// TakeVacation debits the requested days from one employee.
func (h *Handler) TakeVacation(w http.ResponseWriter, r *http.Request) {
	var req VacationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Days < 0 || req.Days > math.MaxUint8 {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("days must be between 0 and %d", math.MaxUint8), nil)
		return
	}

	h.debitVacation(w, r, uint8(req.Days), func(e *staff.Employee) error {
		return e.TakeVacation(uint8(req.Days))
	})
}

// PayoutVacation cashes out the fixed payout quantum for one employee.
func (h *Handler) PayoutVacation(w http.ResponseWriter, r *http.Request) {
	h.debitVacation(w, r, staff.PayoutQuantum, (*staff.Employee).PayoutVacation)
}

func (h *Handler) debitVacation(w http.ResponseWriter, r *http.Request, days uint8, op func(*staff.Employee) error) {
	name := chi.URLParam(r, "company")
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var dto VacationDTO
	err := h.Registry.Update(r.Context(), name, func(c *staff.Company) error {
		emp, err := c.Employee(index)
		if err != nil {
			return err
		}
		if err := op(emp); err != nil {
			return err
		}
		dto = VacationDTO{
			Company:      name,
			Index:        index,
			Name:         emp.Person().Name(),
			Debited:      int(days),
			VacationDays: int(emp.VacationDays()),
		}
		return nil
	})
	if err != nil {
		h.writeDomainError(w, "Failed to debit vacation days", err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// HELPERS
// =============================================================================

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid employee index: %s", raw), err)
		return 0, false
	}
	return index, true
}

// writeDomainError maps staff, factory and registry errors to a status.
func (h *Handler) writeDomainError(w http.ResponseWriter, message string, err error) {
	var shortage *staff.VacationDaysShortageError
	switch {
	case errors.As(err, &shortage):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error:   shortage.Error(),
			Code:    "vacation_days_shortage",
			Details: toShortageDTO(shortage),
		})
	case errors.Is(err, memory.ErrCompanyNotFound), staff.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, memory.ErrCompanyExists):
		writeError(w, http.StatusConflict, message, err)
	case errors.Is(err, factory.ErrInvalidEmployee), staff.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		h.Logger.Error(message, logging.FieldError, err)
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
