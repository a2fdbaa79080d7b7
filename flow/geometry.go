package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Geometry 轴承的几何参数
type Geometry struct {
	Nz      int
	Ntheta  int
	Nradius int

	Length        float64 // 轴向长度
	RadiusRotor   float64
	RadiusStator  float64
	Eccentricity  float64 // 转子中心的偏移量
	AttitudeAngle float64 // rad
}

func (g Geometry) validate() error {
	if g.Nz <= 0 || g.Ntheta <= 0 || g.Nradius <= 0 {
		return fmt.Errorf("grid sizes nz=%d ntheta=%d nradius=%d must be positive: %w", g.Nz, g.Ntheta, g.Nradius, ErrShape)
	}
	if g.RadiusRotor >= g.RadiusStator {
		return fmt.Errorf("radius_rotor=%g must be smaller than radius_stator=%g: %w", g.RadiusRotor, g.RadiusStator, ErrShape)
	}
	if g.Eccentricity < 0 || g.Eccentricity >= g.RadiusStator-g.RadiusRotor {
		return fmt.Errorf("eccentricity=%g must be in [0, %g): %w", g.Eccentricity, g.RadiusStator-g.RadiusRotor, ErrShape)
	}
	return nil
}

// NewGeometry builds a snapshot without pressure for a plain cylindrical
// bearing: the stator is centered at the origin and the rotor center is
// displaced by the eccentricity along the attitude angle, measured from the
// downward vertical.
func NewGeometry(g Geometry) (*Snapshot, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	s := &Snapshot{
		NzVal:            g.Nz,
		NthetaVal:        g.Ntheta,
		NradiusVal:       g.Nradius,
		DthetaVal:        2 * math.Pi / float64(g.Ntheta),
		RadiusRotorVal:   g.RadiusRotor,
		RadiusStatorVal:  g.RadiusStator,
		AttitudeAngleVal: g.AttitudeAngle,
		XiVal:            g.Eccentricity * math.Cos(3*math.Pi/2+g.AttitudeAngle),
		YiVal:            g.Eccentricity * math.Sin(3*math.Pi/2+g.AttitudeAngle),
	}
	if g.Nz == 1 {
		s.ZListVal = []float64{0}
	} else {
		s.ZListVal = floats.Span(make([]float64, g.Nz), 0, g.Length)
	}

	alloc := func() [][]float64 {
		m := make([][]float64, g.Nz)
		for i := range m {
			m[i] = make([]float64, g.Ntheta)
		}
		return m
	}
	s.GamaVal, s.XriVal, s.YriVal = alloc(), alloc(), alloc()
	s.XreVal, s.YreVal, s.ReVal, s.RiVal = alloc(), alloc(), alloc(), alloc()

	for z := 0; z < g.Nz; z++ {
		for t := 0; t < g.Ntheta; t++ {
			gama := float64(t) * s.DthetaVal
			sin, cos := math.Sincos(gama)
			s.GamaVal[z][t] = gama
			s.XreVal[z][t] = g.RadiusStator * cos
			s.YreVal[z][t] = g.RadiusStator * sin
			s.XriVal[z][t] = s.XiVal + g.RadiusRotor*cos
			s.YriVal[z][t] = s.YiVal + g.RadiusRotor*sin
			s.ReVal[z][t] = g.RadiusStator
			s.RiVal[z][t] = g.RadiusRotor
		}
	}
	return s, nil
}
