package staff_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/staffing/staff"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newManager(t *testing.T, days uint8) (*staff.Employee, *staff.Recorder) {
	t.Helper()
	rec := &staff.Recorder{}
	e := staff.NewEmployee(
		staff.NewPerson("John", 30),
		staff.RoleManager,
		staff.NewSalariedWage(1000),
		days,
		staff.WithNotifier(rec),
	)
	return e, rec
}

func requireShortage(t *testing.T, err error, requested, remaining uint8) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, staff.ErrVacationDaysShortage)

	var shortage *staff.VacationDaysShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, requested, shortage.RequestedDays)
	assert.Equal(t, remaining, shortage.RemainingDays)
	assert.Equal(t, "Not enough vacation days are available.", shortage.Message)
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNewEmployee(t *testing.T) {
	e, _ := newManager(t, 20)

	assert.Equal(t, "John", e.Person().Name())
	assert.Equal(t, uint8(30), e.Person().Age())
	assert.Equal(t, staff.RoleManager, e.Role())
	assert.Equal(t, staff.WageSalaried, e.Wage().Kind())
	assert.Equal(t, "1000", e.Wage().CalculatePay().String())
	assert.Equal(t, uint8(20), e.VacationDays())
}

func TestWithNotifier_NilDiscards(t *testing.T) {
	e := staff.NewEmployee(staff.NewPerson("Quiet", 40), staff.RoleTester,
		staff.NewSalariedWage(1), 10, staff.WithNotifier(nil))

	assert.NotPanics(t, func() {
		e.Pay()
		require.NoError(t, e.TakeVacation(1))
	})
	assert.Equal(t, uint8(9), e.VacationDays())
}

// =============================================================================
// PAY
// =============================================================================

func TestEmployee_Pay_Salaried(t *testing.T) {
	e, rec := newManager(t, 20)

	e.Pay()

	assert.Equal(t, []string{"Paying 1000 for John."}, rec.Messages)
}

func TestEmployee_Pay_Hourly(t *testing.T) {
	rec := &staff.Recorder{}
	e := staff.NewEmployee(staff.NewPerson("Jane", 25), staff.RoleDeveloper,
		staff.NewHourlyWage(20, 40), 20, staff.WithNotifier(rec))

	e.Pay()
	e.Pay()

	assert.Equal(t, []string{"Paying 800 for Jane.", "Paying 800 for Jane."}, rec.Messages)
	assert.Equal(t, uint8(20), e.VacationDays(), "paying must not touch vacation days")
}

func TestEmployee_Pay_FractionalAmount(t *testing.T) {
	rec := &staff.Recorder{}
	e := staff.NewEmployee(staff.NewPerson("Ann", 33), staff.RoleDesigner,
		staff.NewHourlyWage(16.5, 25), 0, staff.WithNotifier(rec))

	e.Pay()

	assert.Equal(t, "Paying 412.5 for Ann.", rec.Last())
}

// =============================================================================
// TAKE VACATION
// =============================================================================

func TestEmployee_TakeVacation(t *testing.T) {
	// GIVEN: 20 days left
	// WHEN: Taking 5
	// THEN: 15 remain and the confirmation is emitted
	e, rec := newManager(t, 20)

	require.NoError(t, e.TakeVacation(5))

	assert.Equal(t, uint8(15), e.VacationDays())
	assert.Equal(t, "Taking a vacation!. Holidays left: 15", rec.Last())
}

func TestEmployee_TakeVacation_Overdraft(t *testing.T) {
	// GIVEN: 20 days left
	// WHEN: Asking for 25
	// THEN: Shortage error, balance untouched, nothing emitted
	e, rec := newManager(t, 20)

	err := e.TakeVacation(25)

	requireShortage(t, err, 25, 20)
	assert.Equal(t, uint8(20), e.VacationDays())
	assert.Empty(t, rec.Messages)
}

func TestEmployee_TakeVacation_ExactBalance(t *testing.T) {
	e, rec := newManager(t, 7)

	require.NoError(t, e.TakeVacation(7))

	assert.Equal(t, uint8(0), e.VacationDays())
	assert.Equal(t, "Taking a vacation!. Holidays left: 0", rec.Last())

	// Only zero-day requests succeed once the balance is exhausted
	require.NoError(t, e.TakeVacation(0))
	requireShortage(t, e.TakeVacation(1), 1, 0)
}

func TestEmployee_TakeVacation_Table(t *testing.T) {
	tests := []struct {
		name      string
		balance   uint8
		request   uint8
		wantErr   bool
		wantAfter uint8
	}{
		{"nothing requested", 10, 0, false, 10},
		{"partial", 10, 3, false, 7},
		{"all of it", 10, 10, false, 0},
		{"one too many", 10, 11, true, 10},
		{"empty balance", 0, 1, true, 0},
		{"max balance", 255, 255, false, 0},
		{"max request", 254, 255, true, 254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newManager(t, tt.balance)

			err := e.TakeVacation(tt.request)

			if tt.wantErr {
				requireShortage(t, err, tt.request, tt.balance)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAfter, e.VacationDays())
		})
	}
}

func TestEmployee_TakeVacation_RepeatedFailureKeepsBalance(t *testing.T) {
	e, _ := newManager(t, 4)

	for i := 0; i < 10; i++ {
		requireShortage(t, e.TakeVacation(200), 200, 4)
	}
	assert.Equal(t, uint8(4), e.VacationDays())
}

// =============================================================================
// PAYOUT
// =============================================================================

func TestEmployee_PayoutVacation(t *testing.T) {
	e, rec := newManager(t, 20)

	require.NoError(t, e.PayoutVacation())

	assert.Equal(t, uint8(15), e.VacationDays())
	assert.Equal(t, "Paying out a holiday. Holidays left: 15", rec.Last())
}

func TestEmployee_PayoutVacation_Overdraft(t *testing.T) {
	// GIVEN: Only 2 days left
	// WHEN: Cashing out the fixed 5
	// THEN: Shortage error {5, 2}, balance still 2
	e, rec := newManager(t, 2)

	err := e.PayoutVacation()

	requireShortage(t, err, 5, 2)
	assert.Equal(t, uint8(2), e.VacationDays())
	assert.Empty(t, rec.Messages)
}

func TestEmployee_PayoutMatchesTakeVacationOfQuantum(t *testing.T) {
	for balance := 0; balance <= 12; balance++ {
		payout, _ := newManager(t, uint8(balance))
		take, _ := newManager(t, uint8(balance))

		payoutErr := payout.PayoutVacation()
		takeErr := take.TakeVacation(staff.PayoutQuantum)

		assert.Equal(t, takeErr == nil, payoutErr == nil, "balance %d", balance)
		assert.Equal(t, take.VacationDays(), payout.VacationDays(), "balance %d", balance)
		if takeErr != nil {
			assert.Equal(t, takeErr.Error(), payoutErr.Error())
		}
	}
}

func TestEmployee_PayoutUntilExhausted(t *testing.T) {
	e, rec := newManager(t, 12)

	require.NoError(t, e.PayoutVacation())
	require.NoError(t, e.PayoutVacation())
	err := e.PayoutVacation()

	assert.True(t, errors.Is(err, staff.ErrVacationDaysShortage))
	assert.Equal(t, uint8(2), e.VacationDays())
	assert.Equal(t, []string{
		"Paying out a holiday. Holidays left: 7",
		"Paying out a holiday. Holidays left: 2",
	}, rec.Messages)
}
