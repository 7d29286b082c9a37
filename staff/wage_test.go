package staff_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/staffing/staff"
)

func TestSalariedWage_CalculatePay(t *testing.T) {
	w := staff.NewSalariedWage(1000)

	for i := 0; i < 3; i++ {
		d, ok := w.CalculatePay().Decimal()
		require.True(t, ok)
		assert.True(t, d.Equal(decimal.NewFromInt(1000)), "call %d", i)
	}
	assert.Equal(t, staff.WageSalaried, w.Kind())
}

func TestHourlyWage_CalculatePay(t *testing.T) {
	tests := []struct {
		rate, hours float64
		want        string
	}{
		{10, 40, "400"},
		{20, 40, "800"},
		{0.1, 3, "0.3"},
		{16.5, 25, "412.5"},
		{15, 0, "0"},
	}

	for _, tt := range tests {
		w := staff.NewHourlyWage(tt.rate, tt.hours)
		assert.Equal(t, tt.want, w.CalculatePay().String(), "%v * %v", tt.rate, tt.hours)
		assert.Equal(t, staff.WageHourly, w.Kind())
	}
}

func TestWage_NegativeInputsAreNotValidated(t *testing.T) {
	assert.Equal(t, "-250", staff.NewSalariedWage(-250).CalculatePay().String())
	assert.Equal(t, "-80", staff.NewHourlyWage(-2, 40).CalculatePay().String())
}

func TestWage_NonFiniteInputs(t *testing.T) {
	// GIVEN: Wages built from NaN and infinite floats
	// WHEN: Constructing and computing pay
	// THEN: Nothing panics and the result follows float rules
	tests := []struct {
		name string
		wage staff.Wage
		want string
	}{
		{"salaried NaN", staff.NewSalariedWage(math.NaN()), "NaN"},
		{"salaried +Inf", staff.NewSalariedWage(math.Inf(1)), "inf"},
		{"salaried -Inf", staff.NewSalariedWage(math.Inf(-1)), "-inf"},
		{"hourly Inf rate", staff.NewHourlyWage(math.Inf(1), 40), "inf"},
		{"hourly negative rate Inf hours", staff.NewHourlyWage(-2, math.Inf(1)), "-inf"},
		{"hourly Inf times zero", staff.NewHourlyWage(math.Inf(1), 0), "NaN"},
		{"hourly NaN hours", staff.NewHourlyWage(10, math.NaN()), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pay staff.Amount
			require.NotPanics(t, func() { pay = tt.wage.CalculatePay() })

			assert.Equal(t, tt.want, pay.String())
			assert.False(t, pay.IsFinite())
			_, ok := pay.Decimal()
			assert.False(t, ok)
		})
	}

	assert.True(t, math.IsNaN(staff.NewSalariedWage(math.NaN()).CalculatePay().Float64()))
	assert.True(t, math.IsInf(staff.NewHourlyWage(math.Inf(1), 40).CalculatePay().Float64(), 1))
}

func TestEmployee_PayWithNaNSalary(t *testing.T) {
	rec := &staff.Recorder{}
	e := staff.NewEmployee(staff.NewPerson("Kim", 40), staff.RoleTester,
		staff.NewSalariedWage(math.NaN()), 10, staff.WithNotifier(rec))

	require.NotPanics(t, e.Pay)
	assert.Equal(t, "Paying NaN for Kim.", rec.Last())
}

func TestAmount_ZeroValueIsFiniteZero(t *testing.T) {
	var a staff.Amount
	assert.True(t, a.IsFinite())
	assert.Equal(t, "0", a.String())
	assert.Equal(t, "0", a.Mul(staff.AmountFromFloat(12.5)).String())
}

func TestRole_Parse(t *testing.T) {
	r, err := staff.ParseRole("  Manager ")
	assert.NoError(t, err)
	assert.Equal(t, staff.RoleManager, r)

	_, err = staff.ParseRole("janitor")
	assert.ErrorIs(t, err, staff.ErrInvalidRole)
	assert.True(t, staff.IsClientError(err))

	assert.Len(t, staff.Roles(), 4)
	for _, r := range staff.Roles() {
		assert.True(t, r.Valid(), r.String())
	}
}
