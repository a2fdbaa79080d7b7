package graphics

// State 流场状态的只读接口，由求解器提供
//
// All [z][theta] arrays are indexed by axial position first. Implementations
// must not mutate the returned slices while a transform is reading them.
type State interface {
	Nz() int
	Ntheta() int
	Nradius() int
	Dtheta() float64

	RadiusRotor() float64
	RadiusStator() float64
	AttitudeAngle() float64

	ZList() []float64
	Gama() [][]float64

	// 转子和定子表面的笛卡尔坐标
	Xri() [][]float64
	Yri() [][]float64
	Xre() [][]float64
	Yre() [][]float64

	// 偏心点
	Xi() float64
	Yi() float64

	// 定子/转子径向尺寸
	Re() [][]float64
	Ri() [][]float64

	PressureNumerical() [][]float64
	PressureAnalytical() [][]float64
	NumericalAvailable() bool
	AnalyticalAvailable() bool
}
