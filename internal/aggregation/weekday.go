package aggregation

import "presence/internal/models"

const DaysInWeek = 7

var weekdayAbbr = [DaysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayIndex maps a date to 0 = Monday .. 6 = Sunday.
func WeekdayIndex(d models.Date) int {
	return (int(d.Weekday()) + 6) % DaysInWeek
}

func WeekdayAbbr(index int) string {
	return weekdayAbbr[index]
}

func IsWeekdayAbbr(s string) bool {
	for _, abbr := range weekdayAbbr {
		if abbr == s {
			return true
		}
	}
	return false
}
