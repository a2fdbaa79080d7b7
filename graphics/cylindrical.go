package graphics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Epsilon is added to every unmasked cell so the smallest drawn value is
// strictly positive.
const Epsilon = 0.01

// PolarMesh 柱坐标压力网格，Grid[i][j] 对应第 i 个角度、第 j 个半径
type PolarMesh struct {
	Radii  []float64   `json:"radii"`
	Angles []float64   `json:"angles"` // degrees
	Grid   [][]float64 `json:"grid"`

	// flattened, angle outer and radius inner
	R     []float64 `json:"r"`
	Theta []float64 `json:"theta"`
	Value []float64 `json:"value"`

	CMin     float64 `json:"cmin"`
	CMax     float64 `json:"cmax"`
	Rotation float64 `json:"rotation"` // angular axis rotation, degrees

	Source   Source           `json:"source"`
	Fallback *FallbackWarning `json:"-"`
}

// linspace returns n evenly spaced values from l to u, both included.
func linspace(l, u float64, n int) []float64 {
	if n == 1 {
		return []float64{l}
	}
	return floats.Span(make([]float64, n), l, u)
}

func mustHold(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("malformed flow state: "+format, args...))
	}
}

// Rotation returns the angular-axis rotation that puts the rotor's attitude
// angle at the bottom of a polar plot.
func Rotation(attitudeAngle float64) float64 {
	return -90 - attitudeAngle*180/math.Pi
}

// CylindricalPressure maps the pressure around the circumference at the
// axial index z onto a radius × angle mesh over the bearing annulus. Cells
// that lie inside the rotor body stay zero.
func CylindricalPressure(s State, z int, preferNumerical bool) (*PolarMesh, error) {
	sel, err := SelectPressure(s, preferNumerical)
	if err != nil {
		return nil, err
	}
	if err := checkIndex("z", z, s.Nz()); err != nil {
		return nil, err
	}
	ntheta, nradius := s.Ntheta(), s.Nradius()
	mustHold(ntheta > 0 && nradius > 0, "ntheta=%d nradius=%d", ntheta, nradius)
	mustHold(s.RadiusRotor() < s.RadiusStator(), "radius_rotor=%g >= radius_stator=%g", s.RadiusRotor(), s.RadiusStator())
	xri, yri := s.Xri()[z], s.Yri()[z]
	mustHold(len(xri) >= ntheta && len(yri) >= ntheta, "rotor coordinates at z=%d shorter than ntheta=%d", z, ntheta)
	mustHold(len(sel.Pressure[z]) >= ntheta, "%s pressure at z=%d shorter than ntheta=%d", sel.Source, z, ntheta)

	r := linspace(s.RadiusRotor(), s.RadiusStator(), nradius)
	theta := linspace(0, 2*math.Pi+s.Dtheta()/2, ntheta)
	floats.Scale(180/math.Pi, theta)

	pressure := sel.Pressure[z][:ntheta]
	minPressure := floats.Min(pressure)

	grid := make([][]float64, ntheta)
	for i := 0; i < ntheta; i++ {
		grid[i] = make([]float64, nradius)
		innerRadius := math.Sqrt(xri[i]*xri[i] + yri[i]*yri[i])
		for j := 0; j < nradius; j++ {
			// 转子内部不画
			if r[j] < innerRadius {
				continue
			}
			grid[i][j] = pressure[i] - minPressure + Epsilon
		}
	}

	mesh := &PolarMesh{
		Radii:    r,
		Angles:   theta,
		Grid:     grid,
		R:        make([]float64, 0, ntheta*nradius),
		Theta:    make([]float64, 0, ntheta*nradius),
		Value:    make([]float64, 0, ntheta*nradius),
		CMin:     math.Inf(1),
		CMax:     math.Inf(-1),
		Rotation: Rotation(s.AttitudeAngle()),
		Source:   sel.Source,
		Fallback: sel.Fallback,
	}
	for i := range grid {
		for j, v := range grid[i] {
			mesh.R = append(mesh.R, r[j])
			mesh.Theta = append(mesh.Theta, theta[i])
			mesh.Value = append(mesh.Value, v)
		}
		mesh.CMin = math.Min(mesh.CMin, floats.Min(grid[i]))
		mesh.CMax = math.Max(mesh.CMax, floats.Max(grid[i]))
	}
	return mesh, nil
}
