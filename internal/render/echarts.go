package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// pathSamples is the number of corridor samples drawn in the HTML scene
const pathSamples = 200

// SceneChart builds an interactive scatter of the frame: rings, sites,
// sampled corridor and UE position.
func SceneChart(f Frame) *charts.Scatter {
	w, h := f.Scene.Canvas.Width, f.Scene.Canvas.Height
	cov := f.Position.Coverage

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Handover corridor",
			Width:     fmt.Sprintf("%dpx", w+160),
			Height:    fmt.Sprintf("%dpx", h+160),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Progress %.0f%%: %s", f.Position.Progress, cov.Site.Name),
			Subtitle: strings.Join(cov.Lines, "\n"),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: w, Name: "x (px)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: h, Name: "y (px)"}),
	)

	for _, site := range f.Scene.Sites {
		var ring []opts.ScatterData
		for _, r := range site.Rings {
			for _, pt := range circle(site.Position, r) {
				ring = append(ring, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
			}
		}
		scatter.AddSeries(site.Name+" rings", ring,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: fadedCSS(site.Color)}))

		scatter.AddSeries(site.Name, []opts.ScatterData{{
			Name:  site.Name,
			Value: []interface{}{site.Position.X, site.Position.Y},
		}},
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: site.Color}))
	}

	samples := f.Path.Sample(pathSamples)
	corridor := make([]opts.ScatterData, 0, len(samples))
	for _, pt := range samples {
		corridor = append(corridor, opts.ScatterData{Value: []interface{}{pt.X, pt.Y}})
	}
	scatter.AddSeries("corridor", corridor,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "dimgray"}))

	ue := f.Position.Position
	scatter.AddSeries("UE", []opts.ScatterData{{
		Name:  fmt.Sprintf("UE %.1f px from %s", cov.Distance, cov.Site.Name),
		Value: []interface{}{ue.X, ue.Y},
	}},
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}))

	return scatter
}

// WriteHTML renders the frame as a standalone echarts page
func WriteHTML(w io.Writer, f Frame) error {
	if err := SceneChart(f).Render(w); err != nil {
		return fmt.Errorf("failed to render scene page: %w", err)
	}
	return nil
}

func fadedCSS(name string) string {
	c := ParseColor(name)
	return fmt.Sprintf("rgba(%d,%d,%d,0.3)", c.R, c.G, c.B)
}
