package aggregation

import "presence/internal/models"

// Row is one chart row: a weekday abbreviation followed by its values.
type Row []any

var PresenceHeader = Row{"Weekday", "Presence (s)"}

// MeanTimeWeekday returns [weekday, mean duration] for all seven weekdays.
func MeanTimeWeekday(times map[models.Date]models.Presence) []Row {
	if times == nil {
		return []Row{}
	}
	weekdays := GroupByWeekday(times)
	result := make([]Row, 0, DaysInWeek)
	for i, intervals := range weekdays {
		result = append(result, Row{WeekdayAbbr(i), Mean(intervals)})
	}
	return result
}

// PresenceWeekday returns a header row followed by [weekday, total duration]
// for all seven weekdays.
func PresenceWeekday(times map[models.Date]models.Presence) []Row {
	if times == nil {
		return []Row{}
	}
	weekdays := GroupByWeekday(times)
	result := make([]Row, 0, DaysInWeek+1)
	result = append(result, PresenceHeader)
	for i, intervals := range weekdays {
		result = append(result, Row{WeekdayAbbr(i), Sum(intervals)})
	}
	return result
}

// PresenceStartEnd returns [weekday, mean start, mean end] for weekdays that
// have at least one record.
func PresenceStartEnd(times map[models.Date]models.Presence) []Row {
	if times == nil {
		return []Row{}
	}
	starts := GroupTimesByWeekday(times, Start)
	ends := GroupTimesByWeekday(times, End)
	result := make([]Row, 0, DaysInWeek)
	for i := range starts {
		if len(starts[i]) == 0 {
			continue
		}
		result = append(result, Row{WeekdayAbbr(i), Mean(starts[i]), Mean(ends[i])})
	}
	return result
}
