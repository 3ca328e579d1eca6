package history

import "fmt"

// BreakdownTitle is the pie chart title for one series year
func BreakdownTitle(series string, year int) string {
	return fmt.Sprintf("Term Frequency for '%s' in %d", series, year)
}

// Lookup returns the single group named series. Names are compared exactly.
func (rs RawResultSet) Lookup(series string) (SeriesGroup, error) {
	var (
		found   SeriesGroup
		matches int
	)
	for _, group := range rs {
		if group.Name != series {
			continue
		}
		found = group
		matches++
	}

	switch matches {
	case 0:
		return SeriesGroup{}, fmt.Errorf("%w: %q", ErrNoSuchSeries, series)
	case 1:
		return found, nil
	default:
		return SeriesGroup{}, fmt.Errorf("%w: %q matches %d series", ErrAmbiguousSeries, series, matches)
	}
}

// DrillDown returns the per-document weights of series in year.
//
// Entries follow the group's record order and are not merged by document id.
// An empty breakdown is not an error. A group holding an invalid record returns
// its *InvalidRecordError, the same group Aggregate leaves off the line chart.
func DrillDown(raw RawResultSet, series string, year int) (Breakdown, error) {
	group, err := raw.Lookup(series)
	if err != nil {
		return Breakdown{}, err
	}
	if err := group.validate(); err != nil {
		return Breakdown{}, err
	}

	breakdown := Breakdown{
		Series:  series,
		Year:    year,
		Title:   BreakdownTitle(series, year),
		Entries: []BreakdownEntry{},
	}
	for _, rec := range group.Records {
		if rec.Year != year {
			continue
		}
		breakdown.Entries = append(breakdown.Entries, BreakdownEntry{
			DocumentID: rec.DocumentID,
			Weight:     rec.Weight,
		})
	}

	return breakdown, nil
}
