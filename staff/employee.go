package staff

import "fmt"

// PayoutQuantum is the number of vacation days cashed out by PayoutVacation.
const PayoutQuantum uint8 = 5

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a person working for a company under a wage policy.
//
// INVARIANTS:
//   - The vacation balance never goes below zero.
//   - A failed debit leaves the balance untouched (no partial debit).
//   - Only TakeVacation and PayoutVacation change the balance.
type Employee struct {
	person       Person
	role         Role
	wage         Wage
	vacationDays uint8
	notifier     Notifier
}

// Option configures an Employee at construction.
type Option func(*Employee)

// WithNotifier routes notifications to n instead of standard output.
// A nil notifier discards them.
func WithNotifier(n Notifier) Option {
	return func(e *Employee) {
		if n == nil {
			n = Discard
		}
		e.notifier = n
	}
}

// NewEmployee creates an employee with a full initial state.
func NewEmployee(person Person, role Role, wage Wage, vacationDays uint8, opts ...Option) *Employee {
	e := &Employee{
		person:       person,
		role:         role,
		wage:         wage,
		vacationDays: vacationDays,
		notifier:     Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Employee) Person() Person { return e.person }
func (e *Employee) Role() Role { return e.role }
func (e *Employee) Wage() Wage { return e.wage }
func (e *Employee) VacationDays() uint8 { return e.vacationDays }

// PayAmount returns what the next pay run would pay, without notifying.
func (e *Employee) PayAmount() Amount {
	return e.wage.CalculatePay()
}

// Pay computes the employee's pay and announces it.
func (e *Employee) Pay() {
	e.notifier.Notify(fmt.Sprintf("Paying %s for %s.", e.PayAmount().String(), e.person.name))
}

// TakeVacation debits days from the balance.
// Returns *VacationDaysShortageError if days exceeds the balance.
func (e *Employee) TakeVacation(days uint8) error {
	if err := e.debit(days); err != nil {
		return err
	}
	e.notifier.Notify(fmt.Sprintf("Taking a vacation!. Holidays left: %d", e.vacationDays))
	return nil
}

// PayoutVacation cashes out PayoutQuantum days.
// Returns *VacationDaysShortageError if fewer days remain.
func (e *Employee) PayoutVacation() error {
	if err := e.debit(PayoutQuantum); err != nil {
		return err
	}
	e.notifier.Notify(fmt.Sprintf("Paying out a holiday. Holidays left: %d", e.vacationDays))
	return nil
}

func (e *Employee) debit(days uint8) error {
	if days > e.vacationDays {
		return newShortageError(days, e.vacationDays)
	}
	e.vacationDays -= days
	return nil
}
