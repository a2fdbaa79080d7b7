package model

// 请求类型，绘图请求的类型与图表类型同名
const (
	TypeSweep   = "sweep"
	TypeStop    = "stop"
	TypeHistory = "history"
)

// 响应类型
const (
	TypeFigure  = "figure"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeStopped = "stopped"
)
