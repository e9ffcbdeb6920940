package formula

import "time"

// IsLeapYear reports whether a Gregorian year is a leap year: divisible by 4,
// except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month (1..12) of the
// given Gregorian year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// AddMonths adds n calendar months (any sign, any magnitude) to a broken-down
// date and returns the resulting date. The target year/month come from
// floored division of the zero-based month index, so negative offsets carry
// correctly across year boundaries. End of month is preserved: when the
// source day is the last day of its month, the result is the last day of the
// target month (Feb 28 2021 minus a year is Feb 29 2020). Otherwise the day
// is clamped to the last valid day of the target month; clamping never rolls
// into the next month.
func AddMonths(year, month, day, n int) (int, int, int) {
	endOfMonth := day >= DaysInMonth(year, month)
	idx := month - 1 + n
	y := year + idx/12
	m := idx % 12
	if m < 0 {
		m += 12
		y--
	}
	month = m + 1
	if last := DaysInMonth(y, month); endOfMonth || day > last {
		day = last
	}
	return y, month, day
}

// AddMonthsTo applies AddMonths to a time.Time, preserving the clock fields
// and location. Unlike time.Time.AddDate this clamps instead of normalizing:
// Dec 31 plus two months is Feb 28 (or 29), never Mar 2.
func AddMonthsTo(t time.Time, n int) time.Time {
	y, m, d := AddMonths(t.Year(), int(t.Month()), t.Day(), n)
	return time.Date(y, time.Month(m), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }

// FormatDateTime renders a timestamp as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(t time.Time) string { return t.Format("2006-01-02 15:04:05") }
