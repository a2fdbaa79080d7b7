package render

// Options 图表布局参数，直接传给前端的 layout
type Options map[string]interface{}

// Merge returns a copy of o completed with defaults. Entries already in o
// win.
func (o Options) Merge(defaults Options) Options {
	res := make(Options, len(o)+len(defaults))
	for k, v := range defaults {
		res[k] = v
	}
	for k, v := range o {
		res[k] = v
	}
	return res
}

// Kind 图表类型
type Kind string

const (
	KindEccentricity  Kind = "eccentricity"
	KindPressureZ     Kind = "pressure_z"
	KindShape         Kind = "shape"
	KindPressureTheta Kind = "pressure_theta"
	KindCylindrical   Kind = "pressure_theta_cylindrical"
	KindSurface       Kind = "pressure_surface"
)

var Kinds = []Kind{KindEccentricity, KindPressureZ, KindShape, KindPressureTheta, KindCylindrical, KindSurface}

func legend() Options {
	return Options{
		"font":        Options{"family": "sans-serif", "size": 14},
		"bgcolor":     "white",
		"bordercolor": "black",
		"borderwidth": 2,
	}
}

// Defaults returns the default layout of a figure kind.
func Defaults(k Kind) Options {
	switch k {
	case KindEccentricity:
		return Options{"width": 600, "height": 600, "plot_bgcolor": "white", "hoverlabel": Options{"align": "right"}, "legend": legend()}
	case KindPressureZ, KindShape, KindPressureTheta:
		return Options{"width": 800, "height": 600, "plot_bgcolor": "white", "hoverlabel": Options{"align": "right"}, "legend": legend()}
	}
	return Options{"width": 1200, "height": 900}
}

func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if v == k {
			return true
		}
	}
	return false
}
