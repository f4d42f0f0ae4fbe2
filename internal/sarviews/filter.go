package sarviews

import (
	"fmt"
	"strings"
	"time"
)

// Acquisition timestamp formats observed in SARVIEWS responses.
// The API normally emits ISO 8601 with a UTC offset ("2021-07-15T03:10:28+00:00").
var acquisitionTimeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05", // without timezone, assumed UTC
}

// ParseAcquisitionTime parses a granule acquisition timestamp.
// Returns time in UTC.
func ParseAcquisitionTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	s = strings.TrimSpace(s)

	var lastErr error
	for _, format := range acquisitionTimeFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("failed to parse acquisition date %q: %w", s, lastErr)
}

// Filter selects products from an event's product list. Criteria are
// applied in a fixed order: path, frame, job type, start bound, end bound.
// Zero-value Start/End disable the respective date bound.
type Filter struct {
	Path    int
	Frame   int
	JobType string

	// Date bounds on granules[0].acquisition_date, both strict (exclusive)
	Start time.Time
	End   time.Time
}

// Apply returns the products matching every criterion, preserving order.
// Products without granules never match. An unparseable acquisition date
// is an error only when a date bound is set.
func (f Filter) Apply(products []Product) ([]Product, error) {
	var out []Product
	for _, p := range products {
		if len(p.Granules) == 0 {
			continue
		}
		g := p.Granules[0]

		if g.Path != f.Path {
			continue
		}
		if g.Frame != f.Frame {
			continue
		}
		if p.JobType != f.JobType {
			continue
		}

		if !f.Start.IsZero() || !f.End.IsZero() {
			acquired, err := ParseAcquisitionTime(g.AcquisitionDate)
			if err != nil {
				return nil, fmt.Errorf("product %s: %w", p.ProductID, err)
			}
			if !f.Start.IsZero() && !acquired.After(f.Start) {
				continue
			}
			if !f.End.IsZero() && !acquired.Before(f.End) {
				continue
			}
		}

		out = append(out, p)
	}
	return out, nil
}
