// Package chart builds grouped-bar and radar charts from pivoted percentages.
package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/palgeri93/szemelyesestarsaskiertekeles/pkg/scorecard/models"
)

// Kind names a chart type; the value is also the file name suffix.
type Kind string

const (
	KindBar   Kind = "oszlopdiagram"
	KindRadar Kind = "radar"
)

// Kinds lists the chart pair produced per report, in order.
var Kinds = []Kind{KindBar, KindRadar}

const (
	percentAxisName = "Százalék (%)"
	legendTitle     = "Időszak"
	barAxisMax      = 110
	radarMax        = 100
	missingValue    = "-"
)

// barLabelFormatter prints values as "12.3%" and leaves gaps unlabelled.
const barLabelFormatter = `function (p) {
	return typeof p.value === 'number' ? p.value.toFixed(1) + '%' : '';
}`

// Options configures a chart.
type Options struct {
	// Title is shown above the chart.
	Title string
	// Footer is embedded under the title when non-empty.
	Footer string
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int
	// AssetsHost overrides where the page loads echarts from.
	AssetsHost string
}

func (o Options) initOpts() opts.Initialization {
	init := opts.Initialization{
		PageTitle:  o.Title,
		AssetsHost: o.AssetsHost,
	}
	if o.Width > 0 {
		init.Width = fmt.Sprintf("%dpx", o.Width)
	}
	if o.Height > 0 {
		init.Height = fmt.Sprintf("%dpx", o.Height)
	}
	return init
}

func (o Options) titleOpts() opts.Title {
	return opts.Title{Title: o.Title, Subtitle: o.Footer}
}

// Bar builds a grouped bar chart: areas on the x axis, one series per period.
func Bar(p models.PivotTable, o Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initOpts()),
		charts.WithTitleOpts(o.titleOpts()),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Mérési terület"}),
		charts.WithYAxisOpts(opts.YAxis{Name: percentAxisName, Min: 0, Max: barAxisMax}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(p.Areas)
	for i, period := range p.Periods {
		series := p.Series(i)
		data := make([]opts.BarData, len(series))
		for j, m := range series {
			data[j] = opts.BarData{Value: value(m)}
		}
		bar.AddSeries(period, data)
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{
		Show:      opts.Bool(true),
		Position:  "top",
		Formatter: string(opts.FuncOpts(barLabelFormatter)),
	}))
	return bar
}

// Radar builds a radar chart with one closed polygon per period on a 0-100 scale.
func Radar(p models.PivotTable, o Options) *charts.Radar {
	indicators := make([]*opts.Indicator, len(p.Areas))
	for i, area := range p.Areas {
		indicators[i] = &opts.Indicator{Name: area, Min: 0, Max: radarMax}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initOpts()),
		charts.WithTitleOpts(o.titleOpts()),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			Shape:     "polygon",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	for i, period := range p.Periods {
		series := p.Series(i)
		values := make([]interface{}, len(series))
		for j, m := range series {
			values[j] = value(m)
		}
		radar.AddSeries(period, []opts.RadarData{{Name: period, Value: values}})
	}
	return radar
}

// RenderHTML renders a chart of the given kind as a standalone HTML page.
func RenderHTML(kind Kind, p models.PivotTable, o Options) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch kind {
	case KindBar:
		err = Bar(p, o).Render(&buf)
	case KindRadar:
		err = Radar(p, o).Render(&buf)
	default:
		return nil, fmt.Errorf("unknown chart kind: %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// value rounds to one decimal for labels; missing values leave a gap.
func value(m models.Measure) interface{} {
	if !m.Valid {
		return missingValue
	}
	return math.Round(m.Value*10) / 10
}
