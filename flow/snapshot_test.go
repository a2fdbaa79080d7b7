package flow

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func newTestGeometry(t *testing.T) *Snapshot {
	s, err := NewGeometry(Geometry{
		Nz: 4, Ntheta: 8, Nradius: 5,
		Length: 2, RadiusRotor: 1, RadiusStator: 1.2,
		Eccentricity: 0.1, AttitudeAngle: math.Pi / 6,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func pressure(nz, ntheta int, v float64) [][]float64 {
	p := make([][]float64, nz)
	for z := range p {
		p[z] = make([]float64, ntheta)
		for i := range p[z] {
			p[z][i] = v + float64(z*ntheta+i)
		}
	}
	return p
}

func TestNewGeometry(t *testing.T) {
	s := newTestGeometry(t)
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.ZListVal[0] != 0 || s.ZListVal[3] != 2 {
		t.Errorf("z_list %v", s.ZListVal)
	}
	if math.Abs(math.Hypot(s.XiVal, s.YiVal)-0.1) > 1e-12 {
		t.Errorf("eccentric point (%v, %v)", s.XiVal, s.YiVal)
	}
	for z := 0; z < 4; z++ {
		for i := 0; i < 8; i++ {
			dx, dy := s.XriVal[z][i]-s.XiVal, s.YriVal[z][i]-s.YiVal
			if math.Abs(math.Hypot(dx, dy)-1) > 1e-12 {
				t.Fatalf("rotor point (%d,%d) not on the rotor surface", z, i)
			}
			if math.Abs(math.Hypot(s.XreVal[z][i], s.YreVal[z][i])-1.2) > 1e-12 {
				t.Fatalf("stator point (%d,%d) not on the stator surface", z, i)
			}
		}
	}
	if s.NumericalAvailable() || s.AnalyticalAvailable() {
		t.Error("geometry alone has no pressure")
	}
}

func TestNewGeometryRejects(t *testing.T) {
	bad := []Geometry{
		{Nz: 0, Ntheta: 4, Nradius: 4, RadiusRotor: 1, RadiusStator: 2},
		{Nz: 4, Ntheta: 4, Nradius: 4, RadiusRotor: 2, RadiusStator: 2},
		{Nz: 4, Ntheta: 4, Nradius: 4, RadiusRotor: 1, RadiusStator: 2, Eccentricity: 1},
	}
	for i, g := range bad {
		if _, err := NewGeometry(g); !errors.Is(err, ErrShape) {
			t.Errorf("case %d: %v", i, err)
		}
	}
}

func TestSetPressure(t *testing.T) {
	s := newTestGeometry(t)
	if err := s.SetNumerical(pressure(3, 8, 0)); !errors.Is(err, ErrShape) {
		t.Errorf("short matrix accepted: %v", err)
	}
	if s.NumericalAvailable() {
		t.Error("flag set by a rejected matrix")
	}
	if err := s.SetAnalytical(pressure(4, 8, 1)); err != nil {
		t.Fatal(err)
	}
	if !s.AnalyticalAvailable() || s.PressureAnalytical()[1][0] != 9 {
		t.Error("analytical matrix not stored")
	}
}

func TestValidateFlags(t *testing.T) {
	s := newTestGeometry(t)
	s.NumericalPressureAvailable = true
	if err := s.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("flag without matrix: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	s := newTestGeometry(t)
	if err := s.SetNumerical(pressure(4, 8, 0)); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "state.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.NumericalAvailable() || got.AnalyticalAvailable() {
		t.Error("availability flags lost")
	}
	if got.PressureNumerical()[3][7] != 31 || got.Nradius() != 5 {
		t.Error("content lost")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected an error")
	}
}
