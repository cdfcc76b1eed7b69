package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/spatial"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ringSteps is the number of chords used to draw a coverage ring
const ringSteps = 72

// Frame is everything drawn for one progress value
type Frame struct {
	Scene    models.Scene
	Path     *spatial.Path
	Position models.PositionResult
}

// Formats accepted by WritePlot
var Formats = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// PlotScene draws coverage rings, sector edges, sites, the corridor, the UE
// and its link to the serving site. The y axis is inverted so the picture
// matches canvas coordinates.
func PlotScene(f Frame) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Handover corridor: progress %.0f%%, %s",
		f.Position.Progress, f.Position.Coverage.Band.Name)
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "y (px)"
	p.X.Min, p.X.Max = 0, float64(f.Scene.Canvas.Width)
	p.Y.Min, p.Y.Max = 0, float64(f.Scene.Canvas.Height)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true

	for _, site := range f.Scene.Sites {
		if err := addSite(p, site); err != nil {
			return nil, err
		}
	}

	corridor, err := plotter.NewLine(vecXYs(f.Path.Waypoints()...))
	if err != nil {
		return nil, fmt.Errorf("failed to draw corridor: %w", err)
	}
	corridor.Color = colornames.Dimgray
	corridor.Width = vg.Points(1.5)
	corridor.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(corridor)
	p.Legend.Add("corridor", corridor)

	ue := f.Position.Position
	serving := f.Position.Coverage.Site.Position
	link, err := plotter.NewLine(plotter.XYs{{X: ue.X, Y: ue.Y}, {X: serving.X, Y: serving.Y}})
	if err != nil {
		return nil, fmt.Errorf("failed to draw serving link: %w", err)
	}
	link.Color = colornames.Orange
	link.Width = vg.Points(1)
	p.Add(link)

	marker, err := plotter.NewScatter(plotter.XYs{{X: ue.X, Y: ue.Y}})
	if err != nil {
		return nil, fmt.Errorf("failed to draw UE: %w", err)
	}
	marker.GlyphStyle.Color = colornames.Red
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marker)
	p.Legend.Add("UE → "+f.Position.Coverage.Site.Name, marker)

	return p, nil
}

// WritePlot renders the frame as png or svg into w
func WritePlot(w io.Writer, f Frame, width, height int, format string) error {
	if _, ok := Formats[format]; !ok {
		return fmt.Errorf("unsupported format %q", format)
	}
	p, err := PlotScene(f)
	if err != nil {
		return err
	}

	// 96 px per inch, the same density a browser canvas uses
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch/96, vg.Length(height)*vg.Inch/96, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return nil
}

func addSite(p *plot.Plot, site models.Site) error {
	c := ParseColor(site.Color)
	faded := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 64}

	for _, r := range site.Rings {
		ring, err := plotter.NewLine(pointXYs(circle(site.Position, r)...))
		if err != nil {
			return fmt.Errorf("failed to draw ring %v of %s: %w", r, site.ID, err)
		}
		ring.Color = faded
		ring.Width = vg.Points(1)
		p.Add(ring)
	}

	if n := len(site.Rings); n > 0 {
		outer := site.Rings[n-1]
		for _, sec := range site.Sectors {
			tip := models.Point{
				X: site.Position.X + outer*math.Cos(sec.Start.Radians()),
				Y: site.Position.Y + outer*math.Sin(sec.Start.Radians()),
			}
			edge, err := plotter.NewLine(pointXYs(site.Position, tip))
			if err != nil {
				return fmt.Errorf("failed to draw sector of %s: %w", site.ID, err)
			}
			edge.Color = faded
			edge.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(edge)
		}
	}

	pos := pointXYs(site.Position)
	marker, err := plotter.NewScatter(pos)
	if err != nil {
		return fmt.Errorf("failed to draw site %s: %w", site.ID, err)
	}
	marker.GlyphStyle.Color = c
	marker.GlyphStyle.Radius = vg.Points(4)
	marker.GlyphStyle.Shape = draw.PyramidGlyph{}
	p.Add(marker)
	p.Legend.Add(site.Name, marker)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pos, Labels: []string{site.Name}})
	if err != nil {
		return fmt.Errorf("failed to label site %s: %w", site.ID, err)
	}
	labels.Offset = vg.Point{X: -vg.Points(25), Y: vg.Points(5)}
	p.Add(labels)
	return nil
}

func circle(center models.Point, radius float64) []models.Point {
	pts := make([]models.Point, 0, ringSteps+1)
	for i := 0; i <= ringSteps; i++ {
		a := 2 * math.Pi * float64(i) / ringSteps
		pts = append(pts, models.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return pts
}

func pointXYs(pts ...models.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func vecXYs(pts ...r2.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

// ParseColor accepts CSS color names and #rgb / #rrggbb; anything else is gray
func ParseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
			}
		}
	}
	return colornames.Gray
}
