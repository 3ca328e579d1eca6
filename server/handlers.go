package server

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"word-history-project/chart"
	"word-history-project/history"
	"word-history-project/logger"
	"word-history-project/metrics"
	"word-history-project/view"
)

func (s *Server) handleIndex(c echo.Context) error {
	ctx := c.Request().Context()
	page := view.NewPage(s.input, s.cfg.CollectionID, snapshotRenderer{})

	cfg, rendered, err := page.Load()
	if err != nil {
		if !rendered {
			metrics.RecordAggregation("error")
			_ = page.Close()
			logger.FromContext(ctx).Error("failed to render word history", "err", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to render word history")
		}
		metrics.RecordAggregation("partial")
		logger.FromContext(ctx).Warn("word history rendered without some series", "err", err)
	} else if rendered {
		metrics.RecordAggregation("ok")
	}

	data := pageData{ViewID: s.views.Add(page)}
	if rendered {
		data.Main = &cfg
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logger.FromContext(ctx).Error("template error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// handleBreakdown activates a line chart point. Without a series it returns
// the breakdown currently live for the view.
func (s *Server) handleBreakdown(c echo.Context) error {
	viewID := c.Param("id")
	page, ok := s.views.Get(viewID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown view")
	}
	ctx := logger.WithViewID(c.Request().Context(), viewID)
	log := logger.FromContext(ctx)

	series := c.QueryParam("series")
	if series == "" {
		return liveBreakdown(c, page)
	}

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
	}

	cfg, err := page.Activate(series, year)
	switch {
	case err == nil:
	case errors.Is(err, history.ErrMissingInputData):
		metrics.RecordDrilldown("missing_input", 0)
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, history.ErrNoSuchSeries):
		metrics.RecordDrilldown("no_such_series", 0)
		log.Warn("drill-down lookup failed", "series", series, "year", year, "err", err)
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, history.ErrAmbiguousSeries):
		metrics.RecordDrilldown("ambiguous_series", 0)
		log.Warn("drill-down lookup failed", "series", series, "year", year, "err", err)
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, view.ErrPageClosed):
		// evicted while the request was in flight
		return echo.NewHTTPError(http.StatusNotFound, "unknown view")
	case errors.Is(err, history.ErrInvalidRecord):
		metrics.RecordDrilldown("invalid_record", 0)
		log.Warn("drill-down on invalid series", "series", series, "year", year, "err", err)
		return c.NoContent(http.StatusNoContent)
	case cfg.Chart.Type != "":
		// rendered, but the previous breakdown failed to release
		log.Warn("breakdown replaced with errors", "series", series, "year", year, "err", err)
	default:
		metrics.RecordDrilldown("error", 0)
		log.Error("failed to render breakdown", "series", series, "year", year, "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render breakdown")
	}

	entries := 0
	if len(cfg.Series) > 0 {
		entries = len(cfg.Series[0].Data)
	}
	metrics.RecordDrilldown("ok", entries)
	log.Debug("breakdown rendered", "series", series, "year", year, "entries", entries)

	return c.JSON(http.StatusOK, cfg)
}

func liveBreakdown(c echo.Context, page *view.Page) error {
	h, ok := page.Live(view.SlotBreakdown)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	snap, ok := h.(*snapshot)
	if !ok || snap.kind != chart.KindPie {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSONBlob(http.StatusOK, snap.body)
}

func (s *Server) handleDeleteView(c echo.Context) error {
	if !s.views.Remove(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown view")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleHealth(c echo.Context) error {
	_, present := s.input.ResultSet()
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"result_data": present,
		"live_views":  s.views.Len(),
	})
}
