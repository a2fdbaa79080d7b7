package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 绘图请求，作为 Msg.Content 传入
type PlotRequest struct {
	Z     int `json:"z"`     // 轴向切片下标
	Theta int `json:"theta"` // 周向切片下标

	// 仅柱坐标图使用，缺省为数值解
	FromNumerical *bool `json:"from_numerical,omitempty"`

	// 覆盖默认布局
	Options map[string]interface{} `json:"options,omitempty"`
}

// PreferNumerical reports the requested pressure source, numerical unless
// the client asked otherwise.
func (r PlotRequest) PreferNumerical() bool {
	return r.FromNumerical == nil || *r.FromNumerical
}

// 周期推送请求
type SweepRequest struct {
	PlotRequest
	From int `json:"from"`
	To   int `json:"to"` // 不包含
}
