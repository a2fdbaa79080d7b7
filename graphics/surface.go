package graphics

import (
	"gonum.org/v1/gonum/mat"
)

// Surface is the full axial × angular pressure field of one source. X and Y
// follow meshgrid(z_list, gama[0]): rows run along the angle, columns along
// the axis, and Z is the transposed pressure matrix.
type Surface struct {
	Source Source      `json:"source"`
	X      [][]float64 `json:"x"`
	Y      [][]float64 `json:"y"`
	Z      [][]float64 `json:"z"`
	CMin   float64     `json:"cmin"`
	CMax   float64     `json:"cmax"`
}

func dense(m [][]float64, rows, cols int) *mat.Dense {
	mustHold(len(m) >= rows, "pressure matrix has %d rows, want %d", len(m), rows)
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		mustHold(len(m[i]) >= cols, "pressure row %d has %d columns, want %d", i, len(m[i]), cols)
		d.SetRow(i, m[i][:cols])
	}
	return d
}

func rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	res := make([][]float64, r)
	for i := range res {
		res[i] = make([]float64, c)
		for j := range res[i] {
			res[i][j] = m.At(i, j)
		}
	}
	return res
}

// meshgrid returns len(v)×len(u) grids with u repeated along rows and v
// along columns.
func meshgrid(u, v []float64) (x, y [][]float64) {
	x = make([][]float64, len(v))
	y = make([][]float64, len(v))
	for i := range v {
		x[i] = clone(u)
		y[i] = make([]float64, len(u))
		for j := range y[i] {
			y[i][j] = v[i]
		}
	}
	return
}

// PressureSurfaces builds one surface per available pressure source,
// numerical first. Callers overlay them rather than merging.
func PressureSurfaces(s State) ([]Surface, error) {
	srcs := Sources(s)
	if len(srcs) == 0 {
		return nil, ErrMissingPressureData
	}
	nz, ntheta := s.Nz(), s.Ntheta()
	mustHold(nz > 0 && ntheta > 0, "nz=%d ntheta=%d", nz, ntheta)
	z := s.ZList()
	gama := s.Gama()[0]
	mustHold(len(z) >= nz && len(gama) >= ntheta, "axis lengths %d/%d shorter than grid %d/%d", len(z), len(gama), nz, ntheta)

	res := make([]Surface, 0, len(srcs))
	for _, src := range srcs {
		t := dense(matrix(s, src), nz, ntheta).T()
		x, y := meshgrid(z[:nz], gama[:ntheta])
		res = append(res, Surface{
			Source: src,
			X:      x,
			Y:      y,
			Z:      rows(t),
			CMin:   mat.Min(t),
			CMax:   mat.Max(t),
		})
	}
	return res, nil
}
