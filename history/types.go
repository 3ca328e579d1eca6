// Package history aggregates word history results and breaks series years down
// into per-document weights.
package history

// RawRecord is one document's contribution to a series' yearly term frequency
type RawRecord struct {
	Year       int     `json:"year"`
	Weight     float64 `json:"weight"`
	DocumentID string  `json:"id"`
}

// SeriesGroup holds the records of one series in source order
type SeriesGroup struct {
	Name    string      `json:"name"`
	Records []RawRecord `json:"data"`

	// invalid is set when a record of this group failed to decode
	invalid *InvalidRecordError
}

// RawResultSet is the word history result set, grouped by series at the source
type RawResultSet []SeriesGroup

// SeriesPoint is one (year, summed weight) point of a line chart series
type SeriesPoint struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// AggregatedSeries represents one line of the word history chart
type AggregatedSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// BreakdownEntry is a single document's weight within a series year
type BreakdownEntry struct {
	DocumentID string  `json:"id"`
	Weight     float64 `json:"weight"`
}

// Breakdown is the per-document decomposition of one series year
type Breakdown struct {
	Series  string           `json:"series"`
	Year    int              `json:"year"`
	Title   string           `json:"title"`
	Entries []BreakdownEntry `json:"entries"`
}

// Input is the result set handed over by the hosting page. The zero value is
// the absent input, meaning there is nothing to render.
type Input struct {
	set     RawResultSet
	present bool
}

// Present wraps a result set supplied by the host
func Present(set RawResultSet) Input {
	return Input{set: set, present: true}
}

// Absent returns the input used when the host supplied no result set
func Absent() Input {
	return Input{}
}

// ResultSet returns the wrapped result set and whether one was supplied
func (in Input) ResultSet() (RawResultSet, bool) {
	return in.set, in.present
}

// Aggregate aggregates the wrapped result set. The absent input yields no
// series and no error.
func (in Input) Aggregate() ([]AggregatedSeries, error) {
	if !in.present {
		return nil, nil
	}
	return Aggregate(in.set)
}

// DrillDown drills into the wrapped result set, or returns ErrMissingInputData
// for the absent input.
func (in Input) DrillDown(series string, year int) (Breakdown, error) {
	if !in.present {
		return Breakdown{}, ErrMissingInputData
	}
	return DrillDown(in.set, series, year)
}
