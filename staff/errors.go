/*
errors.go - Error types for the staff model

ERROR CATEGORIES:
  1. Vacation errors - a debit larger than the remaining balance
  2. Lookup errors   - an employee index outside the company roster
  3. Input errors    - unknown role names

USAGE:
  if errors.Is(err, staff.ErrVacationDaysShortage) {
      var shortage *staff.VacationDaysShortageError
      errors.As(err, &shortage)
      fmt.Println(shortage.RemainingDays)
  }
*/
package staff

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrVacationDaysShortage is returned when a vacation debit exceeds the
	// current balance. The concrete error is *VacationDaysShortageError.
	ErrVacationDaysShortage = errors.New("vacation days shortage")

	// ErrEmployeeNotFound is returned when a roster index is out of range.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidRole is returned when a role name is not recognised.
	ErrInvalidRole = errors.New("invalid role")
)

// shortageMessage is the fixed message carried by every shortage error.
const shortageMessage = "Not enough vacation days are available."

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// VacationDaysShortageError reports a vacation debit that the balance
// cannot cover. It carries enough detail to build a user-facing message
// without asking the employee again.
type VacationDaysShortageError struct {
	RequestedDays uint8
	RemainingDays uint8
	Message       string
}

func newShortageError(requested, remaining uint8) *VacationDaysShortageError {
	return &VacationDaysShortageError{
		RequestedDays: requested,
		RemainingDays: remaining,
		Message:       shortageMessage,
	}
}

func (e *VacationDaysShortageError) Error() string {
	return fmt.Sprintf("Not enough vacation days are available. Requested: %d, Remaining: %d. Message: %s",
		e.RequestedDays, e.RemainingDays, e.Message)
}

func (e *VacationDaysShortageError) Unwrap() error {
	return ErrVacationDaysShortage
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to the caller's request.
func IsClientError(err error) bool {
	return errors.Is(err, ErrVacationDaysShortage) ||
		errors.Is(err, ErrInvalidRole)
}

// IsNotFound returns true if the error indicates a missing employee.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}
