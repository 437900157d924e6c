package parser

import (
	"presence/internal/models"
)

type SkipReason string

const (
	SkipNone   SkipReason = ""
	SkipShape  SkipReason = "shape"
	SkipUserID SkipReason = "user_id"
	SkipDate   SkipReason = "date"
	SkipStart  SkipReason = "start"
	SkipEnd    SkipReason = "end"
)

const presenceColumns = 4

// RowResult is the outcome of one presence row: either a complete record
// or the reason it was skipped.
type RowResult struct {
	Line   int
	Record models.PresenceRecord
	Skip   SkipReason
	Err    error
}

func (r RowResult) Ok() bool {
	return r.Skip == SkipNone
}

// parseRow builds a record only once every field has parsed.
func parseRow(line int, row []string) RowResult {
	if len(row) != presenceColumns {
		return RowResult{Line: line, Skip: SkipShape}
	}

	userID, err := models.ParseUserID(row[0])
	if err != nil {
		return RowResult{Line: line, Skip: SkipUserID, Err: err}
	}
	date, err := models.ParseDate(row[1])
	if err != nil {
		return RowResult{Line: line, Skip: SkipDate, Err: err}
	}
	start, err := models.ParseTimeOfDay(row[2])
	if err != nil {
		return RowResult{Line: line, Skip: SkipStart, Err: err}
	}
	end, err := models.ParseTimeOfDay(row[3])
	if err != nil {
		return RowResult{Line: line, Skip: SkipEnd, Err: err}
	}

	return RowResult{
		Line: line,
		Record: models.PresenceRecord{
			UserID: userID,
			Date:   date,
			Start:  start,
			End:    end,
		},
	}
}
