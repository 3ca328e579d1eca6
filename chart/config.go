// Package chart builds the configuration handed to the browser charting
// component. It never draws anything itself.
package chart

import (
	"word-history-project/history"
)

// Kind selects the chart type drawn by the charting component
type Kind string

const (
	KindLine Kind = "line"
	KindPie  Kind = "pie"
)

const (
	// MainMountPoint is the element the word history line chart renders into
	MainMountPoint = "wordFreqs"
	// BreakdownMountPoint is the element the per-year pie chart renders into
	BreakdownMountPoint = "wordBreakdown"
	// MainTitle is the title of the word history line chart
	MainTitle = "Word Use Over Time"
)

// Config is a chart configuration in the charting component's option layout
type Config struct {
	Chart         Options  `json:"chart"`
	Title         Text     `json:"title"`
	Legend        Toggle   `json:"legend"`
	RangeSelector Toggle   `json:"rangeSelector"`
	Scrollbar     Toggle   `json:"scrollbar"`
	Navigator     Toggle   `json:"navigator"`
	XAxis         Axis     `json:"xAxis"`
	YAxis         Axis     `json:"yAxis"`
	Series        []Series `json:"series"`
}

// Options names the mount point and the chart kind
type Options struct {
	RenderTo string `json:"renderTo"`
	Type     Kind   `json:"type"`
}

// Text is a chart title
type Text struct {
	Text string `json:"text"`
}

// Toggle switches an optional chart feature such as the legend or navigator
type Toggle struct {
	Enabled bool `json:"enabled"`
}

// Axis holds the tick options of the x or y axis
type Axis struct {
	AllowDecimals bool `json:"allowDecimals"`
}

// Series is one named data series of a chart
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a line chart point (X set) or a pie slice (Name and URL set)
type Point struct {
	X    *int    `json:"x,omitempty"`
	Y    float64 `json:"y"`
	Name string  `json:"name,omitempty"`
	URL  string  `json:"url,omitempty"`
}

// Line builds the word history chart from aggregated series
func Line(series []history.AggregatedSeries) Config {
	cfg := Config{
		Chart:  Options{RenderTo: MainMountPoint, Type: KindLine},
		Title:  Text{Text: MainTitle},
		Legend: Toggle{Enabled: true},
		Series: make([]Series, 0, len(series)),
	}

	for _, s := range series {
		data := make([]Point, 0, len(s.Points))
		for _, p := range s.Points {
			year := p.Year
			data = append(data, Point{X: &year, Y: p.Total})
		}
		cfg.Series = append(cfg.Series, Series{Name: s.Name, Data: data})
	}
	return cfg
}

// Pie builds the per-document chart for a breakdown. Every slice links to the
// detail view of its document in collection.
func Pie(b history.Breakdown, collection string) Config {
	data := make([]Point, 0, len(b.Entries))
	for _, e := range b.Entries {
		data = append(data, Point{
			Name: e.DocumentID,
			Y:    e.Weight,
			URL:  DetailsLink(e.DocumentID, collection),
		})
	}

	return Config{
		Chart:  Options{RenderTo: BreakdownMountPoint, Type: KindPie},
		Title:  Text{Text: b.Title},
		Legend: Toggle{Enabled: false},
		Series: []Series{{Name: b.Series, Data: data}},
	}
}
