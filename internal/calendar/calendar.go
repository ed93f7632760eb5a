// Package calendar implements the month/year arithmetic shared by the
// attendance, liquidation and kilos/litros grids: days-in-month computation,
// Sunday-first day-of-week labeling and month navigation with rollover.
// Dates on the wire always use the canonical YYYY-MM-DD form.
package calendar

import (
	"fmt"
	"time"
)

// Months are the Spanish month names, indexed 1..12.
var Months = [13]string{"",
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DaysShort are the abbreviated Spanish day names, Sunday-first.
var DaysShort = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// DaysInMonth returns the number of days of the given month (28–31),
// accounting for leap years per the proleptic Gregorian calendar.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfWeek returns 0–6, Sunday-first, for the given date.
func DayOfWeek(year, month, day int) int {
	return int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday())
}

// DayName returns the abbreviated Spanish weekday name for the given date.
func DayName(year, month, day int) string {
	return DaysShort[DayOfWeek(year, month, day)]
}

// NavigateMonth steps a (year, month) pair by direction (+1 or -1 per step),
// rolling over year boundaries: (2024, 12, +1) → (2025, 1).
func NavigateMonth(year, month, direction int) (int, int) {
	month += direction
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	return year, month
}

// DateString formats a Y/M/D triple as YYYY-MM-DD.
func DateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate validates and decomposes a YYYY-MM-DD string. Input always comes
// from the application's own date pickers, so anything malformed is rejected
// outright rather than silently skipped.
func ParseDate(s string) (year, month, day int, err error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

// InMonth reports whether a YYYY-MM-DD string falls inside the given calendar
// month. Malformed dates surface as an error (see ParseDate).
func InMonth(s string, year, month int) (bool, error) {
	y, m, _, err := ParseDate(s)
	if err != nil {
		return false, err
	}
	return y == year && m == month, nil
}

// MonthDates returns every date of the month in canonical form, day 1 first.
func MonthDates(year, month int) []string {
	n := DaysInMonth(year, month)
	dates := make([]string, 0, n)
	for d := 1; d <= n; d++ {
		dates = append(dates, DateString(year, month, d))
	}
	return dates
}
