package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word-history-project/history"
)

func TestLine(t *testing.T) {
	cfg := Line([]history.AggregatedSeries{
		{Name: "war", Points: []history.SeriesPoint{{Year: 2000, Total: 7}, {Year: 2001, Total: 5}}},
		{Name: "peace", Points: []history.SeriesPoint{}},
	})

	assert.Equal(t, MainMountPoint, cfg.Chart.RenderTo)
	assert.Equal(t, KindLine, cfg.Chart.Type)
	assert.Equal(t, MainTitle, cfg.Title.Text)
	assert.True(t, cfg.Legend.Enabled)
	assert.False(t, cfg.RangeSelector.Enabled)
	assert.False(t, cfg.Scrollbar.Enabled)
	assert.False(t, cfg.Navigator.Enabled)
	assert.False(t, cfg.XAxis.AllowDecimals)
	assert.False(t, cfg.YAxis.AllowDecimals)

	require.Len(t, cfg.Series, 2)
	require.Len(t, cfg.Series[0].Data, 2)
	assert.Equal(t, 2000, *cfg.Series[0].Data[0].X)
	assert.Equal(t, 2001, *cfg.Series[0].Data[1].X)
	assert.Equal(t, 5.0, cfg.Series[0].Data[1].Y)
	assert.Empty(t, cfg.Series[1].Data)
}

func TestLine_JSONLayout(t *testing.T) {
	cfg := Line([]history.AggregatedSeries{
		{Name: "war", Points: []history.SeriesPoint{{Year: 2000, Total: 7}}},
	})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, map[string]any{"renderTo": "wordFreqs", "type": "line"}, decoded["chart"])
	assert.Equal(t, map[string]any{"text": "Word Use Over Time"}, decoded["title"])
	assert.Equal(t, map[string]any{"allowDecimals": false}, decoded["yAxis"])
	assert.JSONEq(t, `[{"name":"war","data":[{"x":2000,"y":7}]}]`, mustJSON(t, decoded["series"]))
}

func TestPie(t *testing.T) {
	cfg := Pie(history.Breakdown{
		Series: "Alpha",
		Year:   2000,
		Title:  history.BreakdownTitle("Alpha", 2000),
		Entries: []history.BreakdownEntry{
			{DocumentID: "d1", Weight: 2},
			{DocumentID: "d 3", Weight: 1},
		},
	}, "morpheus")

	assert.Equal(t, BreakdownMountPoint, cfg.Chart.RenderTo)
	assert.Equal(t, KindPie, cfg.Chart.Type)
	assert.Equal(t, "Term Frequency for 'Alpha' in 2000", cfg.Title.Text)

	require.Len(t, cfg.Series, 1)
	assert.Equal(t, "Alpha", cfg.Series[0].Name)
	assert.Equal(t, []Point{
		{Name: "d1", Y: 2, URL: "details?id=d1&collection=morpheus"},
		{Name: "d 3", Y: 1, URL: "details?id=d+3&collection=morpheus"},
	}, cfg.Series[0].Data)
}

func TestPie_Empty(t *testing.T) {
	cfg := Pie(history.Breakdown{Series: "Alpha", Year: 1999, Title: "t"}, "c")
	require.Len(t, cfg.Series, 1)
	assert.Empty(t, cfg.Series[0].Data)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
