package staff

// =============================================================================
// WAGE - How an employee is paid
// =============================================================================

// Wage computes the amount an employee is paid per pay run.
//
// The set of implementations is closed: SalariedWage and HourlyWage are
// the only wage policies. CalculatePay is pure and never fails. Inputs
// are not validated, so negative rates yield negative pay and NaN or
// infinite inputs yield a NaN or infinite Amount.
type Wage interface {
	CalculatePay() Amount
	Kind() WageKind

	sealed()
}

// WageKind names a wage policy.
type WageKind string

const (
	WageSalaried WageKind = "salaried"
	WageHourly   WageKind = "hourly"
)

// SalariedWage pays a fixed monthly salary.
type SalariedWage struct {
	MonthlySalary Amount
}

// NewSalariedWage creates a salaried wage. Any float64 is accepted,
// including negative, NaN and infinite values.
func NewSalariedWage(monthlySalary float64) SalariedWage {
	return SalariedWage{MonthlySalary: AmountFromFloat(monthlySalary)}
}

// CalculatePay returns the monthly salary unchanged.
func (w SalariedWage) CalculatePay() Amount { return w.MonthlySalary }
func (w SalariedWage) Kind() WageKind { return WageSalaried }
func (SalariedWage) sealed() {}

// HourlyWage pays a rate for every hour worked.
type HourlyWage struct {
	HourlyRate  Amount
	HoursWorked Amount
}

// NewHourlyWage creates an hourly wage. Like NewSalariedWage it accepts
// any float64; a non-finite rate or hour count makes the pay follow
// float rules (Inf * 40 is inf, Inf * 0 is NaN).
func NewHourlyWage(hourlyRate, hoursWorked float64) HourlyWage {
	return HourlyWage{
		HourlyRate:  AmountFromFloat(hourlyRate),
		HoursWorked: AmountFromFloat(hoursWorked),
	}
}

// CalculatePay returns rate * hours.
func (w HourlyWage) CalculatePay() Amount { return w.HourlyRate.Mul(w.HoursWorked) }
func (w HourlyWage) Kind() WageKind { return WageHourly }
func (HourlyWage) sealed() {}

// Compile-time checks that both policies implement Wage
var (
	_ Wage = SalariedWage{}
	_ Wage = HourlyWage{}
)
