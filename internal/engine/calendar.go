package engine

import (
	"fmt"
	"time"
)

// CalendarDay is one cell of the 6-week month grid.
type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsWeekend      bool
}

// MonthGridSize is always 6 full weeks so the layout never jumps between
// months.
const MonthGridSize = 42

// MonthGrid returns the 42 cells displayed for the given month, padded with
// real dates from the previous and following months. Out-of-range month
// values wrap through date normalization (month 0 is December of the
// previous year, month 13 is January of the next).
func MonthGrid(year int, month time.Month) []CalendarDay {
	return monthGridAt(year, month, time.Now())
}

func monthGridAt(year int, month time.Month, now time.Time) []CalendarDay {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	// Anchor the grid on the Sunday on/before the 1st.
	start := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))

	days := make([]CalendarDay, 0, MonthGridSize)
	for i := 0; i < MonthGridSize; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:           date,
			IsCurrentMonth: date.Month() == firstDay.Month() && date.Year() == firstDay.Year(),
			IsToday:        SameDay(date, today),
			IsWeekend:      date.Weekday() == time.Sunday || date.Weekday() == time.Saturday,
		})
	}
	return days
}

// SameDay reports whether two timestamps fall on the same calendar date,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayStart normalizes a timestamp to 00:00:00 of its date.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd normalizes a timestamp to 23:59:59 of its date. All-day tasks span
// DayStart..DayEnd.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthName accepts the same out-of-range month values MonthGrid does,
// normalizing them through date arithmetic before the lookup.
func MonthName(month time.Month) string {
	norm := time.Date(2000, month, 1, 0, 0, 0, 0, time.UTC)
	return monthNames[int(norm.Month())-1]
}

func WeekdayName(day time.Weekday) string {
	return weekdayNames[int(day)]
}

// FormatDateShort renders a date as YYYY/MM/DD.
func FormatDateShort(t time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d", t.Year(), int(t.Month()), t.Day())
}
