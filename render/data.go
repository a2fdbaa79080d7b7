package render

import (
	"fmt"

	"bearing/graphics"
	"bearing/model"
)

// Data holds the prepared numbers of one figure. Exactly one of Curves, Mesh
// and Surfaces is set, depending on Kind.
type Data struct {
	Kind     Kind
	Z        int
	Theta    int
	Curves   []graphics.Curve
	Mesh     *graphics.PolarMesh
	Surfaces []graphics.Surface
}

// Fallback returns the fallback warning of the selection, if any.
func (d *Data) Fallback() *graphics.FallbackWarning {
	if d.Mesh != nil {
		return d.Mesh.Fallback
	}
	return nil
}

// Prepare runs the transform behind a figure kind.
func Prepare(s graphics.State, k Kind, req model.PlotRequest) (*Data, error) {
	d := &Data{Kind: k, Z: req.Z, Theta: req.Theta}
	var err error
	switch k {
	case KindEccentricity:
		d.Curves, err = graphics.Eccentricity(s, req.Z)
	case KindPressureZ:
		d.Curves, err = graphics.PressureAlongZ(s, req.Theta)
	case KindShape:
		d.Curves, err = graphics.Shape(s, req.Theta)
	case KindPressureTheta:
		d.Curves, err = graphics.PressureAlongTheta(s, req.Z)
	case KindCylindrical:
		d.Mesh, err = graphics.CylindricalPressure(s, req.Z, req.PreferNumerical())
	case KindSurface:
		d.Surfaces, err = graphics.PressureSurfaces(s)
	default:
		return nil, fmt.Errorf("unknown figure kind %q", k)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
