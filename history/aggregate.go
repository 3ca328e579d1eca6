package history

import (
	"errors"
	"math"
)

// Aggregate collapses each series group into line chart points.
//
// Records are folded left to right: a record whose year equals the year of the
// previous record is summed into the last point, any other record starts a new
// point. Input is expected to arrive grouped by year, so a year that reappears
// after a different year produces a second point for that year rather than
// being merged with the first one.
//
// A group holding an invalid record is left out of the result and its
// *InvalidRecordError is joined into the returned error; the remaining groups
// are still aggregated.
func Aggregate(raw RawResultSet) ([]AggregatedSeries, error) {
	series := make([]AggregatedSeries, 0, len(raw))
	var errs []error

	for _, group := range raw {
		if err := group.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		series = append(series, AggregatedSeries{
			Name:   group.Name,
			Points: collapseYears(group.Records),
		})
	}

	return series, errors.Join(errs...)
}

// collapseYears merges runs of consecutive records sharing a year
func collapseYears(records []RawRecord) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(records))
	currentYear, started := 0, false

	for _, rec := range records {
		if started && rec.Year == currentYear {
			points[len(points)-1].Total += rec.Weight
			continue
		}
		points = append(points, SeriesPoint{Year: rec.Year, Total: rec.Weight})
		currentYear, started = rec.Year, true
	}

	return points
}

func (g SeriesGroup) validate() error {
	if g.invalid != nil {
		return g.invalid
	}
	for i, rec := range g.Records {
		if err := rec.validate(g.Name, i); err != nil {
			return err
		}
	}
	return nil
}

func (r RawRecord) validate(series string, index int) error {
	switch {
	case r.DocumentID == "":
		return &InvalidRecordError{Series: series, Index: index, Field: "id"}
	case math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0):
		return &InvalidRecordError{Series: series, Index: index, Field: "weight"}
	}
	return nil
}
