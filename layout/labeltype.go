package layout

import (
	"fmt"
	"strings"
)

// DefaultMargin 是上/左边距的缺省值（pt，合 0.5 英寸）。
const DefaultMargin = 36.0

// LabelType 是一种标签纸的命名配置。长度单位均为 pt；排版开始后视为只读。
type LabelType struct {
	PaperSize    string  `yaml:"paper_size" json:"paper_size"`
	TopMargin    float64 `yaml:"top_margin" json:"top_margin"`
	LeftMargin   float64 `yaml:"left_margin" json:"left_margin"`
	BottomMargin float64 `yaml:"bottom_margin" json:"bottom_margin"`
	RightMargin  float64 `yaml:"right_margin" json:"right_margin"`
	Columns      int     `yaml:"columns" json:"columns"`
	Rows         int     `yaml:"rows" json:"rows"`
	ColumnGutter float64 `yaml:"column_gutter" json:"column_gutter"`
	RowGutter    float64 `yaml:"row_gutter" json:"row_gutter"`
	VerticalText bool    `yaml:"vertical_text" json:"vertical_text"`
}

// Normalize 补全缺省值：纸张默认 A4，上/左边距默认 DefaultMargin。
// 零值视为缺省（显式的 0 边距请使用极小的非零值）。
func (t LabelType) Normalize() LabelType {
	if t.PaperSize == "" {
		t.PaperSize = "A4"
	}
	if t.TopMargin == 0 {
		t.TopMargin = DefaultMargin
	}
	if t.LeftMargin == 0 {
		t.LeftMargin = DefaultMargin
	}
	return t
}

// Validate 检查网格形状与纸张尺寸。非法的行列数是致命的配置错误。
func (t LabelType) Validate() error {
	if t.Rows < 1 || t.Columns < 1 {
		return fmt.Errorf("%w: 行列数必须 ≥ 1（rows=%d columns=%d）", ErrConfig, t.Rows, t.Columns)
	}
	if _, _, err := t.PaperDims(); err != nil {
		return err
	}
	return nil
}

// 纸张预设（pt）。
var paperPresets = map[string][2]float64{
	"A4":     {595.28, 841.89},
	"A5":     {419.53, 595.28},
	"LETTER": {612, 792},
	"LEGAL":  {612, 1008},
}

// PaperDims 返回纸张的页面宽高（pt）。
func (t LabelType) PaperDims() (width, height float64, err error) {
	size := t.PaperSize
	if size == "" {
		size = "A4"
	}
	p, ok := paperPresets[strings.ToUpper(size)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: 暂不支持的纸张尺寸 %s", ErrConfig, t.PaperSize)
	}
	return p[0], p[1], nil
}
