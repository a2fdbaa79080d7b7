package graphics

import (
	"errors"
	"fmt"
)

// ErrMissingPressureData is returned by every pressure-dependent transform
// when neither pressure matrix has been calculated.
var ErrMissingPressureData = errors.New("must calculate the pressure matrix first, " +
	"call the numerical or the analytical solver before plotting")

// Source 压力矩阵来源
type Source int

const (
	Numerical Source = iota
	Analytical
)

func (s Source) String() string {
	switch s {
	case Numerical:
		return "numerical"
	case Analytical:
		return "analytical"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// FallbackWarning reports that the requested source was not available and
// the other one was used instead. It is not an error: the call succeeds.
type FallbackWarning struct {
	Requested Source
	Used      Source
}

func (w FallbackWarning) String() string {
	return fmt.Sprintf("%s pressure matrix is not available, using the %s one instead", w.Requested, w.Used)
}

// Selection is the pressure matrix chosen for a plot.
type Selection struct {
	Source   Source
	Pressure [][]float64
	Fallback *FallbackWarning
}

func available(s State, src Source) bool {
	if src == Numerical {
		return s.NumericalAvailable()
	}
	return s.AnalyticalAvailable()
}

func matrix(s State, src Source) [][]float64 {
	if src == Numerical {
		return s.PressureNumerical()
	}
	return s.PressureAnalytical()
}

func other(src Source) Source {
	if src == Numerical {
		return Analytical
	}
	return Numerical
}

// SelectPressure picks the numerical matrix when preferNumerical is set and the
// analytical one otherwise, falling back to the other source with a warning.
func SelectPressure(s State, preferNumerical bool) (Selection, error) {
	if !s.NumericalAvailable() && !s.AnalyticalAvailable() {
		return Selection{}, ErrMissingPressureData
	}
	want := Analytical
	if preferNumerical {
		want = Numerical
	}
	if available(s, want) {
		return Selection{Source: want, Pressure: matrix(s, want)}, nil
	}
	used := other(want)
	return Selection{
		Source:   used,
		Pressure: matrix(s, used),
		Fallback: &FallbackWarning{Requested: want, Used: used},
	}, nil
}

// SelectDefault applies the fixed priority numerical over analytical. Nothing
// was requested, so there is never a fallback warning.
func SelectDefault(s State) (Selection, error) {
	sel, err := SelectPressure(s, true)
	if err != nil {
		return Selection{}, err
	}
	sel.Fallback = nil
	return sel, nil
}

// Sources lists the available pressure sources in priority order.
func Sources(s State) []Source {
	var res []Source
	if s.NumericalAvailable() {
		res = append(res, Numerical)
	}
	if s.AnalyticalAvailable() {
		res = append(res, Analytical)
	}
	return res
}
