package server

import (
	"html/template"

	"word-history-project/chart"
)

type pageData struct {
	ViewID string
	Main   *chart.Config
}

var pageTemplate = template.Must(template.New("page").Parse(tmplPage))

const tmplPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Word History</title>
<script src="https://code.highcharts.com/highcharts.js"></script>
</head>
<body>
{{if .Main}}
<div id="wordFreqs"></div>
<div id="wordBreakdown"></div>
<script>
(function() {
  var viewID = {{.ViewID}};
  var mainConfig = {{.Main}};
  var breakdownChart;

  function showBreakdown(series, year) {
    var url = "views/" + encodeURIComponent(viewID) + "/breakdown" +
      "?series=" + encodeURIComponent(series) + "&year=" + encodeURIComponent(year);
    fetch(url).then(function(resp) {
      if (resp.status !== 200) { return null; }
      return resp.json();
    }).then(function(cfg) {
      if (!cfg) { return; }
      if (breakdownChart) { breakdownChart.destroy(); }
      cfg.plotOptions = { series: { cursor: "pointer", point: { events: {
        click: function() { window.location.href = this.options.url; }
      } } } };
      breakdownChart = new Highcharts.Chart(cfg);
    });
  }

  mainConfig.plotOptions = { series: { cursor: "pointer", point: { events: {
    click: function() { showBreakdown(this.series.name, this.x); }
  } } } };
  new Highcharts.Chart(mainConfig);
})();
</script>
{{else}}
<p>No word history results.</p>
{{end}}
</body>
</html>
`
