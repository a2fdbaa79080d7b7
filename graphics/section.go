package graphics

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("cut index out of range")

const (
	ColorNumerical  = "royalblue"
	ColorAnalytical = "firebrick"
	ColorStator     = "firebrick"
	ColorRotor      = "royalblue"
)

// Style is a rendering hint attached to a curve. Adapters may ignore it.
type Style struct {
	Color      string  `json:"color"`
	Width      float64 `json:"width"`
	Markers    bool    `json:"markers"`
	Lines      bool    `json:"lines"`
	Group      string  `json:"group,omitempty"`
	HideLegend bool    `json:"hide_legend,omitempty"`
}

// Curve 一条折线数据
type Curve struct {
	Name  string    `json:"name"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Style Style     `json:"style"`
}

func pressureStyle(src Source) Style {
	c := ColorNumerical
	if src == Analytical {
		c = ColorAnalytical
	}
	return Style{Color: c, Width: 3.0, Lines: true}
}

func pressureName(src Source) string {
	if src == Analytical {
		return "Analytical pressure"
	}
	return "Numerical pressure"
}

func checkIndex(name string, idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%s=%d not in [0, %d): %w", name, idx, n, ErrIndexOutOfRange)
	}
	return nil
}

func column(m [][]float64, col, rows int) []float64 {
	res := make([]float64, rows)
	for i := 0; i < rows; i++ {
		res[i] = m[i][col]
	}
	return res
}

func clone(v []float64) []float64 {
	res := make([]float64, len(v))
	copy(res, v)
	return res
}

// PressureAlongZ 轴向截面：固定 theta，每个可用的压力矩阵一条曲线
func PressureAlongZ(s State, theta int) ([]Curve, error) {
	srcs := Sources(s)
	if len(srcs) == 0 {
		return nil, ErrMissingPressureData
	}
	if err := checkIndex("theta", theta, s.Ntheta()); err != nil {
		return nil, err
	}
	nz := s.Nz()
	z := s.ZList()[:nz]
	curves := make([]Curve, 0, len(srcs))
	for _, src := range srcs {
		curves = append(curves, Curve{
			Name:  pressureName(src),
			X:     clone(z),
			Y:     column(matrix(s, src), theta, nz),
			Style: pressureStyle(src),
		})
	}
	return curves, nil
}

// PressureAlongTheta returns the pressure along the circumference at a fixed
// axial index. Unlike PressureAlongZ it never overlays both sources: the
// analytical matrix is only used when the numerical one is missing.
func PressureAlongTheta(s State, z int) ([]Curve, error) {
	sel, err := SelectDefault(s)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("z", z, s.Nz()); err != nil {
		return nil, err
	}
	n := s.Ntheta()
	return []Curve{{
		Name:  pressureName(sel.Source),
		X:     clone(s.Gama()[z][:n]),
		Y:     clone(sel.Pressure[z][:n]),
		Style: pressureStyle(sel.Source),
	}}, nil
}

// Eccentricity returns the stator and rotor boundaries in the plane z and
// their two center points.
func Eccentricity(s State, z int) ([]Curve, error) {
	if err := checkIndex("z", z, s.Nz()); err != nil {
		return nil, err
	}
	n := s.Ntheta()
	return []Curve{
		{
			Name:  "Stator",
			X:     clone(s.Xre()[z][:n]),
			Y:     clone(s.Yre()[z][:n]),
			Style: Style{Color: ColorStator, Width: 2.0, Lines: true, Markers: true, Group: "Stator"},
		},
		{
			Name:  "Rotor",
			X:     clone(s.Xri()[z][:n]),
			Y:     clone(s.Yri()[z][:n]),
			Style: Style{Color: ColorRotor, Width: 2.0, Lines: true, Markers: true, Group: "Rotor"},
		},
		{
			Name:  "Stator",
			X:     []float64{s.Xi()},
			Y:     []float64{s.Yi()},
			Style: Style{Color: ColorStator, Markers: true, Group: "Stator", HideLegend: true},
		},
		{
			Name:  "Rotor",
			X:     []float64{0},
			Y:     []float64{0},
			Style: Style{Color: ColorRotor, Markers: true, Group: "Rotor", HideLegend: true},
		},
	}, nil
}

// Shape 轴向的定子和转子形状
func Shape(s State, theta int) ([]Curve, error) {
	if err := checkIndex("theta", theta, s.Ntheta()); err != nil {
		return nil, err
	}
	nz := s.Nz()
	z := s.ZList()[:nz]
	return []Curve{
		{
			Name:  "Stator",
			X:     clone(z),
			Y:     column(s.Re(), theta, nz),
			Style: Style{Color: ColorStator, Width: 3.0, Lines: true},
		},
		{
			Name:  "Rotor",
			X:     clone(z),
			Y:     column(s.Ri(), theta, nz),
			Style: Style{Color: ColorRotor, Width: 3.0, Lines: true},
		},
	}, nil
}
