package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"bearing/graphics"
)

var ErrGridTooSmall = errors.New("heat map needs at least 2x2 samples")

var namedColors = map[string]color.RGBA{
	"royalblue": {R: 65, G: 105, B: 225, A: 255},
	"firebrick": {R: 178, G: 34, B: 34, A: 255},
}

func named(name string) color.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return color.Black
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// polarGrid 角度为 X，半径为 Y
type polarGrid struct{ m *graphics.PolarMesh }

func (g polarGrid) Dims() (c, r int)   { return len(g.m.Angles), len(g.m.Radii) }
func (g polarGrid) Z(c, r int) float64 { return g.m.Grid[c][r] }
func (g polarGrid) X(c int) float64    { return g.m.Angles[c] }
func (g polarGrid) Y(r int) float64    { return g.m.Radii[r] }

// surfaceGrid 轴向为 X，角度为 Y
type surfaceGrid struct{ s graphics.Surface }

func (g surfaceGrid) Dims() (c, r int)   { return len(g.s.Z[0]), len(g.s.Z) }
func (g surfaceGrid) Z(c, r int) float64 { return g.s.Z[r][c] }
func (g surfaceGrid) X(c int) float64    { return g.s.X[0][c] }
func (g surfaceGrid) Y(r int) float64    { return g.s.Y[r][0] }

func heatMap(g plotter.GridXYZ, min, max float64) (*plotter.HeatMap, error) {
	c, r := g.Dims()
	if c < 2 || r < 2 {
		return nil, fmt.Errorf("%dx%d: %w", c, r, ErrGridTooSmall)
	}
	if max <= min {
		max = min + graphics.Epsilon
	}
	h := plotter.NewHeatMap(g, palette.Heat(64, 1))
	h.Min, h.Max = min, max
	return h, nil
}

func curvePlot(titleText, xLabel, yLabel string, curves []graphics.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = titleText
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	for _, c := range curves {
		pts := xys(c.X, c.Y)
		col := named(c.Style.Color)
		var thumbs []plot.Thumbnailer
		if c.Style.Lines {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Name, err)
			}
			l.LineStyle.Color = col
			l.LineStyle.Width = vg.Points(c.Style.Width)
			p.Add(l)
			thumbs = append(thumbs, l)
		}
		if c.Style.Markers {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Name, err)
			}
			s.GlyphStyle.Color = col
			s.GlyphStyle.Radius = vg.Points(3)
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(s)
			thumbs = append(thumbs, s)
		}
		if !c.Style.HideLegend {
			p.Legend.Add(c.Name, thumbs...)
		}
	}
	return p, nil
}

// Plots draws d with gonum/plot. The surface kind yields one heat map per
// pressure source; every other kind yields a single plot.
func (d *Data) Plots() ([]*plot.Plot, error) {
	switch d.Kind {
	case KindEccentricity:
		p, err := curvePlot(fmt.Sprintf("Cut in plane Z=%d", d.Z), "X axis", "Y axis", d.Curves)
		return []*plot.Plot{p}, err
	case KindPressureZ:
		p, err := curvePlot(fmt.Sprintf("Pressure along the flow (axial direction), Theta=%d", d.Theta), "Axial Length", "Pressure", d.Curves)
		return []*plot.Plot{p}, err
	case KindShape:
		p, err := curvePlot(fmt.Sprintf("Shapes of stator and rotor - Axial direction, Theta=%d", d.Theta), "Axial Length", "Radial direction", d.Curves)
		return []*plot.Plot{p}, err
	case KindPressureTheta:
		p, err := curvePlot(fmt.Sprintf("Pressure along Theta | Z=%d", d.Z), "Theta value", "Pressure", d.Curves)
		return []*plot.Plot{p}, err
	case KindCylindrical:
		h, err := heatMap(polarGrid{d.Mesh}, d.Mesh.CMin, d.Mesh.CMax)
		if err != nil {
			return nil, err
		}
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Pressure at Z=%d (%s)", d.Z, d.Mesh.Source)
		p.X.Label.Text = "Angle (degrees)"
		p.Y.Label.Text = "Radius"
		p.Add(h)
		return []*plot.Plot{p}, nil
	case KindSurface:
		res := make([]*plot.Plot, 0, len(d.Surfaces))
		for _, s := range d.Surfaces {
			h, err := heatMap(surfaceGrid{s}, s.CMin, s.CMax)
			if err != nil {
				return nil, err
			}
			p := plot.New()
			p.Title.Text = fmt.Sprintf("Bearing Pressure Field (%s)", s.Source)
			p.X.Label.Text = "Rotor Length"
			p.Y.Label.Text = "Angular Position"
			p.Add(h)
			res = append(res, p)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown figure kind %q", d.Kind)
}

// WritePNG encodes p as PNG. width and height are in hundredths of an inch.
func WritePNG(w io.Writer, p *plot.Plot, width, height int) error {
	wt, err := p.WriterTo(vg.Length(width)*vg.Inch/100, vg.Length(height)*vg.Inch/100, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
