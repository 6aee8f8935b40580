package layout

// 该文件定义排版输入（记录）与排版结果（落位、适配框），供布局计算、渲染与调试 JSON 共用。

// Record 表示一条待排版的标签内容。记录由调用方持有，引擎不会修改；
// 文本中的换行符是有效的行分隔。
type Record interface {
	Content() string
}

// Text 将普通字符串用作 Record。
type Text string

// Content 实现 Record 接口。
func (t Text) Content() string { return string(t) }

// VerticalOverrider 是记录的可选能力：单条记录覆盖全局的竖排开关。
// 普通的 Text 记录不具备该能力，沿用全局配置。
type VerticalOverrider interface {
	VerticalText() bool
}

// Records 把一组字符串包装成记录序列。
func Records(ss ...string) []Record {
	out := make([]Record, len(ss))
	for i, s := range ss {
		out[i] = Text(s)
	}
	return out
}

// Cell 是网格中的一个单元格。坐标为页面坐标（左上角为原点、向下为正），单位 pt。
type Cell struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FitResult 记录适配后的字号与文本块包围盒（页面坐标，单位 pt）。
// 每条记录单独计算，不跨记录缓存。
type FitResult struct {
	FontSize float64 `json:"fontSize"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Placement 是单条记录的落位结果。
type Placement struct {
	Index    int        `json:"index"`
	Page     int        `json:"page"`
	Row      int        `json:"row"`
	Column   int        `json:"column"`
	Vertical bool       `json:"vertical,omitempty"`
	Cell     Cell       `json:"cell"`
	Fit      *FitResult `json:"fit,omitempty"` // 竖排模式不做适配，为空
}

// Result 保存一次排版运行的页数与全部落位，便于调试与测试检查。
type Result struct {
	Pages      int         `json:"pages"`
	Placements []Placement `json:"placements"`
}
