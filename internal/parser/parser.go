package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"presence/internal/models"
	"presence/internal/providers"
	"time"
)

var ErrPresenceSource = errors.New("presence source unreadable")

// Report summarises one parse run.
type Report struct {
	Rows           int
	Stored         int
	Skipped        map[SkipReason]int
	MetadataLoaded bool
	Profiles       int
	Duration       time.Duration
}

func (r *Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

type ParserInterface interface {
	Parse(csvPath, xmlPath string) (models.Dataset, *Report, error)
}

type Parser struct {
	logger providers.Logger
}

func NewParser(logger providers.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse builds a Dataset from the presence source and enriches it with the
// metadata source. Only a failure to read the presence source is returned;
// bad rows and a missing or broken metadata source are logged and tolerated.
func (p *Parser) Parse(csvPath, xmlPath string) (models.Dataset, *Report, error) {
	started := time.Now()

	src, err := openSource(csvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPresenceSource, err)
	}
	defer src.Close()

	data, report, err := p.ReadPresence(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrPresenceSource, csvPath, err)
	}

	meta, err := loadMetadata(xmlPath)
	if err != nil {
		p.logger.Warnf(providers.TypeParser, "Metadata source %q not used, users keep default names: %s", xmlPath, err)
	} else {
		report.MetadataLoaded = true
		for _, id := range meta.Invalid {
			p.logger.Warnf(providers.TypeParser, "Metadata user with invalid id %q skipped", id)
		}
		for _, profile := range meta.Profiles {
			if data.Attach(profile) {
				report.Profiles++
			}
		}
	}

	report.Duration = time.Since(started)
	p.logger.Infof(providers.TypeParser, "Parsed %s: %d rows, %d stored, %d skipped, %d users, %d profiles",
		csvPath, report.Rows, report.Stored, report.SkippedTotal(), len(data), report.Profiles)
	return data, report, nil
}

// ReadPresence consumes comma separated presence rows. It fails only when the
// reader itself fails.
func (p *Parser) ReadPresence(r io.Reader) (models.Dataset, *Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	data := models.Dataset{}
	report := &Report{Skipped: make(map[SkipReason]int)}

	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				report.Rows++
				report.Skipped[SkipShape]++
				p.logger.Debugf(providers.TypeParser, "Problem with line %d: %s", line, err)
				continue
			}
			return nil, nil, err
		}
		report.Rows++

		res := parseRow(line, row)
		if !res.Ok() {
			report.Skipped[res.Skip]++
			if res.Err != nil {
				p.logger.Debugf(providers.TypeParser, "Problem with line %d (%s): %s", line, res.Skip, res.Err)
			}
			continue
		}
		data.Add(res.Record)
		report.Stored++
	}
	return data, report, nil
}
