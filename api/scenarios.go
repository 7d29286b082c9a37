/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Provides pre-built companies that populate the registry with realistic
  staff for demos. Each scenario defines companies in factory JSON form
  and a short script of pay and vacation steps that is replayed after
  loading, so balances start out partly used.

AVAILABLE SCENARIOS:
  small-team:      One salaried manager and one hourly developer
  shortage:        Employees with too few days left for a payout
  two-companies:   Two companies with mixed wage policies

HOW SCENARIOS WORK:
  1. Build companies via factory
  2. Replace registry content atomically
  3. Replay the script; shortage errors are reported, not fatal

USAGE VIA API:
  POST /api/scenarios/load
  {"scenario_id": "small-team"}

ADDING NEW SCENARIOS:
  1. Add an entry to 'scenarios' with companies and script

NOTE:
  Loading a scenario replaces every company in the registry.

SEE ALSO:
  - handlers.go: Company and employee handlers
  - factory/employee.go: Employee JSON definitions
  - cmd/staffctl: Runs a scenario from the command line
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/warp/staffing/factory"
	"github.com/warp/staffing/staff"
	"github.com/warp/staffing/store/memory"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Action is what a script step does to an employee.
type Action string

const (
	ActionPay      Action = "pay"
	ActionVacation Action = "vacation"
	ActionPayout   Action = "payout"
)

// Step is one scripted operation on a roster entry.
type Step struct {
	Company string `json:"company"`
	Index   int    `json:"index"`
	Action  Action `json:"action"`
	Days    uint8  `json:"days,omitempty"` // vacation only
}

// StepResult records the outcome of a replayed step.
type StepResult struct {
	Step
	Error    string       `json:"error,omitempty"`
	Shortage *ShortageDTO `json:"shortage,omitempty"`
}

// Scenario is a named set of companies and a script to replay.
type Scenario struct {
	ScenarioDTO
	Companies []factory.CompanyJSON
	Script    []Step
}

func salaried(name string, age int, role staff.Role, salary float64, days int) factory.EmployeeJSON {
	return factory.EmployeeJSON{
		Name: name, Age: age, Role: string(role), VacationDays: days,
		Wage: factory.WageJSON{Type: string(staff.WageSalaried), MonthlySalary: salary},
	}
}

func hourly(name string, age int, role staff.Role, rate, hours float64, days int) factory.EmployeeJSON {
	return factory.EmployeeJSON{
		Name: name, Age: age, Role: string(role), VacationDays: days,
		Wage: factory.WageJSON{Type: string(staff.WageHourly), HourlyRate: rate, HoursWorked: hours},
	}
}

var scenarios = []Scenario{
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "small-team",
			Name:        "Small Team",
			Description: "A salaried manager and an hourly developer with 20 days each",
		},
		Companies: []factory.CompanyJSON{{
			Name: "My Company",
			Employees: []factory.EmployeeJSON{
				salaried("John", 30, staff.RoleManager, 1000, 20),
				hourly("Jane", 25, staff.RoleDeveloper, 20, 40, 20),
			},
		}},
		Script: []Step{
			{Company: "My Company", Index: 0, Action: ActionPay},
			{Company: "My Company", Index: 1, Action: ActionPay},
			{Company: "My Company", Index: 0, Action: ActionVacation, Days: 5},
			{Company: "My Company", Index: 1, Action: ActionPayout},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "shortage",
			Name:        "Vacation Shortage",
			Description: "Requests larger than the remaining balance are rejected",
		},
		Companies: []factory.CompanyJSON{{
			Name: "Thin Margins",
			Employees: []factory.EmployeeJSON{
				salaried("Bob", 41, staff.RoleTester, 1000, 2),
				hourly("Ann", 33, staff.RoleDesigner, 16.5, 25, 20),
			},
		}},
		Script: []Step{
			{Company: "Thin Margins", Index: 0, Action: ActionPayout},
			{Company: "Thin Margins", Index: 1, Action: ActionVacation, Days: 25},
			{Company: "Thin Margins", Index: 1, Action: ActionVacation, Days: 5},
		},
	},
	{
		ScenarioDTO: ScenarioDTO{
			ID:          "two-companies",
			Name:        "Two Companies",
			Description: "Separate rosters with mixed wage policies",
		},
		Companies: []factory.CompanyJSON{
			{
				Name: "Acme",
				Employees: []factory.EmployeeJSON{
					salaried("Carol", 52, staff.RoleManager, 4200, 30),
					hourly("Dan", 22, staff.RoleDeveloper, 31.25, 160, 12),
				},
			},
			{
				Name: "Globex",
				Employees: []factory.EmployeeJSON{
					hourly("Eve", 29, staff.RoleTester, 18, 120, 8),
				},
			},
		},
		Script: []Step{
			{Company: "Acme", Index: 1, Action: ActionPayout},
			{Company: "Acme", Index: 1, Action: ActionPayout},
			{Company: "Acme", Index: 1, Action: ActionPayout},
			{Company: "Globex", Index: 0, Action: ActionPay},
		},
	},
}

// Scenarios returns the catalogue of demo scenarios.
func Scenarios() []ScenarioDTO {
	out := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.ScenarioDTO
	}
	return out
}

// LookupScenario finds a scenario by ID.
func LookupScenario(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Build creates fresh companies for the scenario.
func (s Scenario) Build(f *factory.EmployeeFactory) ([]*staff.Company, error) {
	companies := make([]*staff.Company, 0, len(s.Companies))
	for _, cj := range s.Companies {
		c, err := f.CompanyFromJSON(cj)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		companies = append(companies, c)
	}
	return companies, nil
}

// Load builds the scenario into registry, replacing its content, and
// replays the script. onStep, if not nil, sees each result as it happens.
func (s Scenario) Load(ctx context.Context, registry *memory.Registry, f *factory.EmployeeFactory, onStep func(StepResult)) ([]StepResult, error) {
	companies, err := s.Build(f)
	if err != nil {
		return nil, err
	}
	if err := registry.Replace(ctx, companies...); err != nil {
		return nil, err
	}
	return RunScript(ctx, registry, s.Script, onStep)
}

// RunScript applies each step in order. Shortage errors are recorded in
// the results; any other error stops the run. onStep is called after
// every recorded step, before the next one starts.
func RunScript(ctx context.Context, registry *memory.Registry, steps []Step, onStep func(StepResult)) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		err := registry.Update(ctx, step.Company, func(c *staff.Company) error {
			emp, err := c.Employee(step.Index)
			if err != nil {
				return err
			}
			switch step.Action {
			case ActionPay:
				emp.Pay()
				return nil
			case ActionVacation:
				return emp.TakeVacation(step.Days)
			case ActionPayout:
				return emp.PayoutVacation()
			default:
				return fmt.Errorf("unknown action %q", step.Action)
			}
		})

		result := StepResult{Step: step}
		var shortage *staff.VacationDaysShortageError
		switch {
		case err == nil:
		case errors.As(err, &shortage):
			dto := toShortageDTO(shortage)
			result.Error = shortage.Error()
			result.Shortage = &dto
		default:
			return results, fmt.Errorf("step %d (%s %s/%d): %w", len(results), step.Action, step.Company, step.Index, err)
		}
		results = append(results, result)
		if onStep != nil {
			onStep(result)
		}
	}
	return results, nil
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the catalogue.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Scenarios())
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	current := h.currentScenario
	h.mu.Unlock()

	if current == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	s, _ := LookupScenario(current)
	writeJSON(w, http.StatusOK, s.ScenarioDTO)
}

// LoadScenario replaces the registry content with a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, ok := LookupScenario(req.ScenarioID); !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	ctx := r.Context()
	results, err := h.LoadScenarioByID(ctx, req.ScenarioID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load scenario: %v", err), err)
		return
	}

	h.Logger.InfoContext(ctx, "scenario loaded", "scenario", req.ScenarioID, "steps", len(results))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"scenario_id": req.ScenarioID,
		"companies":   h.Registry.Names(ctx),
		"steps":       results,
	})
}

// LoadScenarioByID loads a scenario outside of a request, e.g. on startup.
func (h *Handler) LoadScenarioByID(ctx context.Context, id string) ([]StepResult, error) {
	s, ok := LookupScenario(id)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", id)
	}
	results, err := s.Load(ctx, h.Registry, h.Factory, nil)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.currentScenario = id
	h.mu.Unlock()
	return results, nil
}

// ResetScenarios clears every company.
func (h *Handler) ResetScenarios(w http.ResponseWriter, r *http.Request) {
	h.Registry.Reset(r.Context())

	h.mu.Lock()
	h.currentScenario = ""
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
