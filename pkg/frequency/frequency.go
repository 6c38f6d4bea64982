// Package frequency defines the repayment cadences and their two distinct
// date-arithmetic families: elapsed-day frequencies (daily, weekly, biweekly)
// count literal days, while calendar frequencies (monthly through annually)
// count calendar months. The two families are intentionally different and
// must not be collapsed into a 30-day-month approximation.
package frequency

import (
	"fmt"
	"time"
)

// Frequency is the cadence of loan installments.
type Frequency string

const (
	Daily        Frequency = "DAILY"
	Weekly       Frequency = "WEEKLY"
	Biweekly     Frequency = "BIWEEKLY"
	Monthly      Frequency = "MONTHLY"
	Quarterly    Frequency = "QUARTERLY"
	SemiAnnually Frequency = "SEMI_ANNUALLY"
	Annually     Frequency = "ANNUALLY"
)

// periodsPerYear is used to convert annual rates and terms to per-period
// values.
var periodsPerYear = map[Frequency]float64{
	Daily:        365,
	Weekly:       52,
	Biweekly:     26,
	Monthly:      12,
	Quarterly:    4,
	SemiAnnually: 2,
	Annually:     1,
}

// periodDays applies to the elapsed-day family only.
var periodDays = map[Frequency]int{
	Daily:    1,
	Weekly:   7,
	Biweekly: 14,
}

// periodMonths applies to the calendar family only.
var periodMonths = map[Frequency]int{
	Monthly:      1,
	Quarterly:    3,
	SemiAnnually: 6,
	Annually:     12,
}

// Parse converts a stored frequency string into a Frequency.
func Parse(s string) (Frequency, error) {
	f := Frequency(s)
	if _, ok := periodsPerYear[f]; !ok {
		return "", fmt.Errorf("unknown repayment frequency %q", s)
	}
	return f, nil
}

// PeriodsPerYear returns the number of installment periods per year.
func (f Frequency) PeriodsPerYear() float64 {
	return periodsPerYear[f]
}

// IsCalendarBased reports whether the frequency advances by calendar months
// rather than by a fixed number of days.
func (f Frequency) IsCalendarBased() bool {
	_, ok := periodMonths[f]
	return ok
}

// PeriodDays returns the fixed day length of one period for the elapsed-day
// family. It is zero for calendar-based frequencies.
func (f Frequency) PeriodDays() int {
	return periodDays[f]
}

// PeriodMonths returns the calendar-month length of one period for the
// calendar family. It is zero for elapsed-day frequencies.
func (f Frequency) PeriodMonths() int {
	return periodMonths[f]
}

// AddPeriods returns the date offset by n periods in the frequency's own
// unit: whole days for the elapsed-day family, calendar months for the
// calendar family.
func (f Frequency) AddPeriods(t time.Time, n int) time.Time {
	if f.IsCalendarBased() {
		return t.AddDate(0, n*periodMonths[f], 0)
	}
	return t.AddDate(0, 0, n*periodDays[f])
}
