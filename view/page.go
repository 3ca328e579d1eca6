package view

import (
	"errors"
	"fmt"
	"sync"

	"word-history-project/chart"
	"word-history-project/history"
)

// Renderer is the charting collaborator: it turns a configuration into a live chart
type Renderer interface {
	Render(cfg chart.Config) (Handle, error)
}

// ErrPageClosed is returned by Load and Activate once the page was closed
var ErrPageClosed = errors.New("view: page closed")

// Page is one word history page: the line chart plus at most one breakdown.
// Load, Activate and Close are serialized, so a page never holds more than one
// live breakdown and nothing is rendered into a closed page.
type Page struct {
	input      history.Input
	collection string
	renderer   Renderer
	views      *ViewController

	mu     sync.Mutex
	closed bool
}

// NewPage creates a page over the host's input. collection is the fixed
// collection id used in detail view links.
func NewPage(input history.Input, collection string, renderer Renderer) *Page {
	return &Page{
		input:      input,
		collection: collection,
		renderer:   renderer,
		views:      NewViewController(),
	}
}

// Load renders the word history line chart. It returns the configuration that
// was rendered and false when the input is absent. Series that failed
// validation are left out and reported through the returned error.
func (p *Page) Load() (chart.Config, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return chart.Config{}, false, ErrPageClosed
	}
	if _, ok := p.input.ResultSet(); !ok {
		return chart.Config{}, false, nil
	}

	series, aggErr := p.input.Aggregate()
	cfg := chart.Line(series)

	h, err := p.renderer.Render(cfg)
	if err != nil {
		return chart.Config{}, false, errors.Join(fmt.Errorf("failed to render word history: %w", err), aggErr)
	}
	if err := p.views.Replace(SlotMain, h); err != nil {
		aggErr = errors.Join(aggErr, err)
	}
	return cfg, true, aggErr
}

// Activate handles the activation of a line chart point. When the breakdown
// of series in year can be computed, the live breakdown is released before
// the new one is rendered into the same mount point. A failed lookup leaves
// the live breakdown untouched.
func (p *Page) Activate(series string, year int) (chart.Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return chart.Config{}, ErrPageClosed
	}
	breakdown, err := p.input.DrillDown(series, year)
	if err != nil {
		return chart.Config{}, err
	}
	cfg := chart.Pie(breakdown, p.collection)

	releaseErr := p.views.Release(SlotBreakdown)
	h, err := p.renderer.Render(cfg)
	if err != nil {
		return chart.Config{}, errors.Join(fmt.Errorf("failed to render breakdown: %w", err), releaseErr)
	}
	if err := p.views.Replace(SlotBreakdown, h); err != nil {
		return cfg, err
	}
	return cfg, releaseErr
}

// Live returns the chart currently rendered in slot
func (p *Page) Live(slot Slot) (Handle, bool) {
	return p.views.Live(slot)
}

// Close releases every chart of the page. Later calls to Load and Activate
// return ErrPageClosed.
func (p *Page) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	return p.views.Close()
}
