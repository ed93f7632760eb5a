package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // leap year
	assert.Equal(t, 28, DaysInMonth(2100, 2)) // century, not leap
	assert.Equal(t, 29, DaysInMonth(2000, 2)) // 400-year rule
	assert.Equal(t, 30, DaysInMonth(2025, 4))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
}

func TestDayOfWeekSundayFirst(t *testing.T) {
	// 2025-06-01 was a Sunday.
	assert.Equal(t, 0, DayOfWeek(2025, 6, 1))
	assert.Equal(t, 1, DayOfWeek(2025, 6, 2))
	assert.Equal(t, "Dom", DayName(2025, 6, 1))
	assert.Equal(t, "Sáb", DayName(2025, 6, 7))
}

func TestNavigateMonthRollover(t *testing.T) {
	y, m := NavigateMonth(2024, 12, 1)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 1, m)

	y, m = NavigateMonth(2025, 1, -1)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 12, m)

	y, m = NavigateMonth(2025, 6, 1)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 7, m)
}

func TestParseDate(t *testing.T) {
	y, m, d, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 2, m)
	assert.Equal(t, 28, d)

	_, _, _, err = ParseDate("2025-02-30")
	assert.Error(t, err)
	_, _, _, err = ParseDate("28/02/2025")
	assert.Error(t, err)
	_, _, _, err = ParseDate("")
	assert.Error(t, err)
}

func TestInMonth(t *testing.T) {
	ok, err := InMonth("2025-03-15", 2025, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = InMonth("2025-04-01", 2025, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = InMonth("not-a-date", 2025, 3)
	assert.Error(t, err)
}

func TestMonthDates(t *testing.T) {
	dates := MonthDates(2024, 2)
	require.Len(t, dates, 29)
	assert.Equal(t, "2024-02-01", dates[0])
	assert.Equal(t, "2024-02-29", dates[28])
}
