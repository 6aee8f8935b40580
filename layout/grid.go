package layout

import "fmt"

// Grid 把页面的可打印区域（页面尺寸减去四边距）均分为 rows×columns 个等大的
// 单元格，列/行之间留 gutter。纯几何计算，不感知文本；换页后按相同参数重建，
// 形状逐页不变。
type Grid struct {
	Columns      int
	Rows         int
	ColumnGutter float64
	RowGutter    float64

	originX    float64
	originY    float64
	cellWidth  float64
	cellHeight float64
}

// newGrid 从标签类型与页面尺寸推导网格几何。
func newGrid(t LabelType, pageWidth, pageHeight float64) (*Grid, error) {
	if t.Rows < 1 || t.Columns < 1 {
		return nil, fmt.Errorf("%w: 行列数必须 ≥ 1（rows=%d columns=%d）", ErrConfig, t.Rows, t.Columns)
	}
	printableW := pageWidth - t.LeftMargin - t.RightMargin
	printableH := pageHeight - t.TopMargin - t.BottomMargin
	g := &Grid{
		Columns:      t.Columns,
		Rows:         t.Rows,
		ColumnGutter: t.ColumnGutter,
		RowGutter:    t.RowGutter,
		originX:      t.LeftMargin,
		originY:      t.TopMargin,
	}
	g.cellWidth = (printableW - float64(t.Columns-1)*t.ColumnGutter) / float64(t.Columns)
	g.cellHeight = (printableH - float64(t.Rows-1)*t.RowGutter) / float64(t.Rows)
	if g.cellWidth <= 0 || g.cellHeight <= 0 {
		return nil, fmt.Errorf("%w: 边距与间隔超出纸张，单元格尺寸非正（%.2f×%.2f）",
			ErrConfig, g.cellWidth, g.cellHeight)
	}
	return g, nil
}

// CellAt 返回 (row, column) 处的单元格（页面坐标）。单元格按需计算，不保存。
func (g *Grid) CellAt(row, column int) Cell {
	return Cell{
		X:      g.originX + float64(column)*(g.cellWidth+g.ColumnGutter),
		Y:      g.originY + float64(row)*(g.cellHeight+g.RowGutter),
		Width:  g.cellWidth,
		Height: g.cellHeight,
	}
}
