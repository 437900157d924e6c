package aggregation

import "presence/internal/models"

type Field int

const (
	Start Field = iota
	End
)

// Weekdays holds one list per weekday index.
type Weekdays [DaysInWeek][]int

func SecondsSinceMidnight(t models.TimeOfDay) int {
	return t.SecondsSinceMidnight()
}

// Interval is signed: an end before the start gives a negative duration.
func Interval(start, end models.TimeOfDay) int {
	return SecondsSinceMidnight(end) - SecondsSinceMidnight(start)
}

// Mean returns 0 for an empty list.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// GroupByWeekday collects presence durations in seconds per weekday.
func GroupByWeekday(times map[models.Date]models.Presence) Weekdays {
	var result Weekdays
	for date, p := range times {
		i := WeekdayIndex(date)
		result[i] = append(result[i], Interval(p.Start, p.End))
	}
	return result
}

// GroupTimesByWeekday collects the start or end time, as seconds since
// midnight, per weekday.
func GroupTimesByWeekday(times map[models.Date]models.Presence, field Field) Weekdays {
	var result Weekdays
	for date, p := range times {
		t := p.Start
		if field == End {
			t = p.End
		}
		i := WeekdayIndex(date)
		result[i] = append(result[i], SecondsSinceMidnight(t))
	}
	return result
}
