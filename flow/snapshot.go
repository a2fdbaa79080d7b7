package flow

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Snapshot 一次分析配置下的流场状态：几何、坐标以及压力矩阵
//
// The JSON layout uses the solver's field names so a snapshot written by the
// solver loads without translation.
type Snapshot struct {
	NzVal      int     `json:"nz"`
	NthetaVal  int     `json:"ntheta"`
	NradiusVal int     `json:"nradius"`
	DthetaVal  float64 `json:"dtheta"`

	RadiusRotorVal   float64 `json:"radius_rotor"`
	RadiusStatorVal  float64 `json:"radius_stator"`
	AttitudeAngleVal float64 `json:"attitude_angle"`

	ZListVal []float64   `json:"z_list"`
	GamaVal  [][]float64 `json:"gama"`

	XriVal [][]float64 `json:"xri"`
	YriVal [][]float64 `json:"yri"`
	XreVal [][]float64 `json:"xre"`
	YreVal [][]float64 `json:"yre"`
	XiVal  float64     `json:"xi"`
	YiVal  float64     `json:"yi"`
	ReVal  [][]float64 `json:"re"`
	RiVal  [][]float64 `json:"ri"`

	PMatNumerical               [][]float64 `json:"p_mat_numerical,omitempty"`
	PMatAnalytical              [][]float64 `json:"p_mat_analytical,omitempty"`
	NumericalPressureAvailable  bool        `json:"numerical_pressure_matrix_available"`
	AnalyticalPressureAvailable bool        `json:"analytical_pressure_matrix_available"`
}

func (s *Snapshot) Nz() int                         { return s.NzVal }
func (s *Snapshot) Ntheta() int                     { return s.NthetaVal }
func (s *Snapshot) Nradius() int                    { return s.NradiusVal }
func (s *Snapshot) Dtheta() float64                 { return s.DthetaVal }
func (s *Snapshot) RadiusRotor() float64            { return s.RadiusRotorVal }
func (s *Snapshot) RadiusStator() float64           { return s.RadiusStatorVal }
func (s *Snapshot) AttitudeAngle() float64          { return s.AttitudeAngleVal }
func (s *Snapshot) ZList() []float64                { return s.ZListVal }
func (s *Snapshot) Gama() [][]float64               { return s.GamaVal }
func (s *Snapshot) Xri() [][]float64                { return s.XriVal }
func (s *Snapshot) Yri() [][]float64                { return s.YriVal }
func (s *Snapshot) Xre() [][]float64                { return s.XreVal }
func (s *Snapshot) Yre() [][]float64                { return s.YreVal }
func (s *Snapshot) Xi() float64                     { return s.XiVal }
func (s *Snapshot) Yi() float64                     { return s.YiVal }
func (s *Snapshot) Re() [][]float64                 { return s.ReVal }
func (s *Snapshot) Ri() [][]float64                 { return s.RiVal }
func (s *Snapshot) PressureNumerical() [][]float64  { return s.PMatNumerical }
func (s *Snapshot) PressureAnalytical() [][]float64 { return s.PMatAnalytical }
func (s *Snapshot) NumericalAvailable() bool        { return s.NumericalPressureAvailable }
func (s *Snapshot) AnalyticalAvailable() bool       { return s.AnalyticalPressureAvailable }

var ErrShape = errors.New("malformed flow state")

// SetNumerical stores the numerical pressure matrix and marks it available.
func (s *Snapshot) SetNumerical(p [][]float64) error {
	if err := s.checkMatrix("p_mat_numerical", p); err != nil {
		return err
	}
	s.PMatNumerical = p
	s.NumericalPressureAvailable = true
	return nil
}

// SetAnalytical stores the analytical pressure matrix and marks it available.
func (s *Snapshot) SetAnalytical(p [][]float64) error {
	if err := s.checkMatrix("p_mat_analytical", p); err != nil {
		return err
	}
	s.PMatAnalytical = p
	s.AnalyticalPressureAvailable = true
	return nil
}

func (s *Snapshot) checkMatrix(name string, m [][]float64) error {
	if len(m) != s.NzVal {
		return fmt.Errorf("%s has %d rows, want nz=%d: %w", name, len(m), s.NzVal, ErrShape)
	}
	for z, row := range m {
		if len(row) != s.NthetaVal {
			return fmt.Errorf("%s[%d] has %d values, want ntheta=%d: %w", name, z, len(row), s.NthetaVal, ErrShape)
		}
	}
	return nil
}

// Validate checks the grid sizes, the radii and every array length against
// the declared grid.
func (s *Snapshot) Validate() error {
	if s.NzVal <= 0 || s.NthetaVal <= 0 || s.NradiusVal <= 0 {
		return fmt.Errorf("grid sizes nz=%d ntheta=%d nradius=%d must be positive: %w",
			s.NzVal, s.NthetaVal, s.NradiusVal, ErrShape)
	}
	if s.RadiusRotorVal >= s.RadiusStatorVal {
		return fmt.Errorf("radius_rotor=%g must be smaller than radius_stator=%g: %w",
			s.RadiusRotorVal, s.RadiusStatorVal, ErrShape)
	}
	if len(s.ZListVal) != s.NzVal {
		return fmt.Errorf("z_list has %d values, want nz=%d: %w", len(s.ZListVal), s.NzVal, ErrShape)
	}
	matrices := []struct {
		name string
		m    [][]float64
	}{
		{"gama", s.GamaVal},
		{"xri", s.XriVal},
		{"yri", s.YriVal},
		{"xre", s.XreVal},
		{"yre", s.YreVal},
		{"re", s.ReVal},
		{"ri", s.RiVal},
	}
	for _, m := range matrices {
		if err := s.checkMatrix(m.name, m.m); err != nil {
			return err
		}
	}
	if s.NumericalPressureAvailable != (s.PMatNumerical != nil) {
		return fmt.Errorf("numerical availability flag disagrees with p_mat_numerical: %w", ErrShape)
	}
	if s.AnalyticalPressureAvailable != (s.PMatAnalytical != nil) {
		return fmt.Errorf("analytical availability flag disagrees with p_mat_analytical: %w", ErrShape)
	}
	if s.NumericalPressureAvailable {
		if err := s.checkMatrix("p_mat_numerical", s.PMatNumerical); err != nil {
			return err
		}
	}
	if s.AnalyticalPressureAvailable {
		if err := s.checkMatrix("p_mat_analytical", s.PMatAnalytical); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and validates a snapshot written by the solver.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Save writes the snapshot as JSON.
func (s *Snapshot) Save(path string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
