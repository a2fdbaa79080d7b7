package render

import (
	"fmt"

	"bearing/graphics"
)

// Trace is one plotly.js trace.
type Trace map[string]interface{}

// Figure is a plotly.js figure, sent as is to the browser.
type Figure struct {
	Kind   Kind    `json:"kind"`
	Data   []Trace `json:"data"`
	Layout Options `json:"layout"`
}

func bold(s string) string {
	return "<b>" + s + "</b>"
}

func title(text string, size int) Options {
	return Options{"text": text, "font": Options{"size": size}}
}

func axis(name string) Options {
	return Options{
		"title":     title(bold(name), 16),
		"tickfont":  Options{"size": 14},
		"gridcolor": "lightgray",
		"showline":  true,
		"linewidth": 2.5,
		"linecolor": "black",
		"mirror":    true,
	}
}

func sceneAxis(name string) Options {
	return Options{
		"title":           title(bold(name), 14),
		"tickfont":        Options{"size": 16},
		"nticks":          5,
		"backgroundcolor": "lightgray",
		"gridcolor":       "white",
		"showspikes":      false,
	}
}

func colorbar() Options {
	return Options{
		"title":    Options{"text": bold("Pressure"), "side": "top", "font": Options{"size": 16}},
		"tickfont": Options{"size": 16},
	}
}

func scatter(c graphics.Curve, hover string) Trace {
	mode := "lines"
	switch {
	case c.Style.Markers && c.Style.Lines:
		mode = "markers+lines"
	case c.Style.Markers:
		mode = "markers"
	}
	t := Trace{
		"type":       "scatter",
		"x":          c.X,
		"y":          c.Y,
		"mode":       mode,
		"name":       bold(c.Name),
		"showlegend": !c.Style.HideLegend,
	}
	if c.Style.Lines {
		t["line"] = Options{"width": c.Style.Width, "color": c.Style.Color}
	}
	if c.Style.Markers {
		t["marker"] = Options{"size": 10, "color": c.Style.Color}
	}
	if c.Style.Group != "" {
		t["legendgroup"] = c.Style.Group
	}
	if hover != "" {
		t["hovertemplate"] = hover
	} else {
		t["hoverinfo"] = "none"
	}
	return t
}

// Figure builds the plotly figure of d. opts are merged over the kind's
// defaults and win over the generated layout.
func (d *Data) Figure(opts Options) *Figure {
	f := &Figure{Kind: d.Kind}
	var layout Options
	switch d.Kind {
	case KindEccentricity:
		for _, c := range d.Curves {
			f.Data = append(f.Data, scatter(c, "<b>X: %{x:.3e}</b><br><b>Y: %{y:.3e}</b>"))
		}
		layout = Options{
			"title": title(bold(fmt.Sprintf("Cut in plane Z=%d", d.Z)), 16),
			"xaxis": axis("X axis"),
			"yaxis": axis("Y axis"),
		}
	case KindPressureZ:
		for _, c := range d.Curves {
			f.Data = append(f.Data, scatter(c, "<b>Axial Length: %{x:.2f}</b><br><b>"+c.Name+": %{y:.2f}</b>"))
		}
		layout = Options{
			"title": title(bold("Pressure along the flow (axial direction)")+"<br>"+bold(fmt.Sprintf("Theta=%d", d.Theta)), 16),
			"xaxis": axis("Axial Length"),
			"yaxis": axis("Pressure"),
		}
	case KindShape:
		for _, c := range d.Curves {
			f.Data = append(f.Data, scatter(c, ""))
		}
		layout = Options{
			"title": title(bold("Shapes of stator and rotor - Axial direction")+"<br>"+bold(fmt.Sprintf("Theta=%d", d.Theta)), 16),
			"xaxis": axis("Axial Length"),
			"yaxis": axis("Radial direction"),
		}
	case KindPressureTheta:
		for _, c := range d.Curves {
			f.Data = append(f.Data, scatter(c, "<b>Theta: %{x:.2f}</b><br><b>"+c.Name+": %{y:.2f}</b>"))
		}
		layout = Options{
			"title": title(bold(fmt.Sprintf("Pressure along Theta | Z=%d", d.Z)), 16),
			"xaxis": axis("Theta value"),
			"yaxis": axis("Pressure"),
		}
	case KindCylindrical:
		m := d.Mesh
		f.Data = []Trace{{
			"type":       "barpolar",
			"r":          m.R,
			"theta":      m.Theta,
			"customdata": m.Value,
			"marker": Options{
				"color":      m.Value,
				"colorscale": "Viridis",
				"cmin":       m.CMin,
				"cmax":       m.CMax,
				"colorbar":   colorbar(),
			},
			"thetaunit":     "degrees",
			"name":          "Pressure",
			"showlegend":    false,
			"hovertemplate": "<b>Raddi: %{r:.4e}</b><br><b>θ: %{theta:.2f}</b><br><b>Pressure: %{customdata:.4e}</b>",
		}}
		layout = Options{
			"polar": Options{
				"hole":       0.5,
				"bgcolor":    "white",
				"bargap":     0.0,
				"radialaxis": Options{"gridcolor": "lightgray", "nticks": 5},
				"angularaxis": Options{
					"rotation":  m.Rotation,
					"gridcolor": "lightgray",
					"linecolor": "black",
					"linewidth": 2.5,
				},
			},
		}
	case KindSurface:
		for _, s := range d.Surfaces {
			f.Data = append(f.Data, Trace{
				"type":          "surface",
				"x":             s.X,
				"y":             s.Y,
				"z":             s.Z,
				"colorscale":    "Viridis",
				"cmin":          s.CMin,
				"cmax":          s.CMax,
				"colorbar":      colorbar(),
				"name":          "Pressure",
				"showlegend":    false,
				"hovertemplate": "<b>Length: %{x:.2e}</b><br><b>Angular Position: %{y:.2f}</b><br><b>Pressure: %{z:.2f}</b>",
			})
		}
		layout = Options{
			"title": title(bold("Bearing Pressure Field"), 20),
			"scene": Options{
				"bgcolor": "white",
				"xaxis":   sceneAxis("Rotor Length"),
				"yaxis":   sceneAxis("Angular Position"),
				"zaxis":   sceneAxis("Pressure"),
			},
		}
	}
	f.Layout = opts.Merge(Defaults(d.Kind)).Merge(layout)
	return f
}
