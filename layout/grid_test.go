package layout

import (
	"errors"
	"math"
	"testing"
)

// avery5160 是 US Letter 上 3×10 的经典地址标签，单元格应为 189×72pt。
func avery5160() LabelType {
	return LabelType{
		PaperSize:    "LETTER",
		TopMargin:    36,
		BottomMargin: 36,
		LeftMargin:   15.822,
		RightMargin:  15.822,
		Columns:      3,
		Rows:         10,
		ColumnGutter: 6.678,
	}
}

func TestGridCellGeometry(t *testing.T) {
	lt := avery5160()
	pageW, pageH, err := lt.PaperDims()
	if err != nil {
		t.Fatalf("纸张尺寸解析失败: %v", err)
	}
	g, err := newGrid(lt, pageW, pageH)
	if err != nil {
		t.Fatalf("构建网格失败: %v", err)
	}
	if math.Abs(g.cellWidth-189) > 1e-9 || math.Abs(g.cellHeight-72) > 1e-9 {
		t.Fatalf("期望单元格 189×72，实际 %gx%g", g.cellWidth, g.cellHeight)
	}

	c00 := g.CellAt(0, 0)
	if c00.X != 15.822 || c00.Y != 36 {
		t.Fatalf("首格位置错误: (%g, %g)", c00.X, c00.Y)
	}
	c01 := g.CellAt(0, 1)
	if math.Abs(c01.X-(15.822+189+6.678)) > 1e-9 {
		t.Fatalf("第二列 X 错误: %g", c01.X)
	}
	c10 := g.CellAt(1, 0)
	if math.Abs(c10.Y-(36+72)) > 1e-9 {
		t.Fatalf("第二行 Y 错误: %g", c10.Y)
	}
}

// TestGridLastCellStaysInsidePrintableArea 断言：末格右/下边落在可打印区域边界上。
func TestGridLastCellStaysInsidePrintableArea(t *testing.T) {
	lt := avery5160()
	pageW, pageH, _ := lt.PaperDims()
	g, err := newGrid(lt, pageW, pageH)
	if err != nil {
		t.Fatalf("构建网格失败: %v", err)
	}
	last := g.CellAt(lt.Rows-1, lt.Columns-1)
	if right := last.X + last.Width; math.Abs(right-(pageW-lt.RightMargin)) > 1e-9 {
		t.Fatalf("末格右边界 %g 未对齐可打印区域 %g", right, pageW-lt.RightMargin)
	}
	if bottom := last.Y + last.Height; math.Abs(bottom-(pageH-lt.BottomMargin)) > 1e-9 {
		t.Fatalf("末格下边界 %g 未对齐可打印区域 %g", bottom, pageH-lt.BottomMargin)
	}
}

func TestGridRejectsInvalidDimensions(t *testing.T) {
	lt := avery5160()
	lt.Rows = 0
	if _, err := newGrid(lt, 612, 792); !errors.Is(err, ErrConfig) {
		t.Fatalf("期望 ErrConfig，实际 %v", err)
	}
	lt = avery5160()
	lt.Columns = -1
	if _, err := newGrid(lt, 612, 792); !errors.Is(err, ErrConfig) {
		t.Fatalf("期望 ErrConfig，实际 %v", err)
	}
}

// TestGridRejectsNonPositivePrintableArea 断言：边距或间隔吃掉整个页面时
// 立即返回配置错误，而不是带着非正的单元格尺寸进入排版。
func TestGridRejectsNonPositivePrintableArea(t *testing.T) {
	lt := avery5160()
	lt.LeftMargin, lt.RightMargin = 400, 400 // 800 > 612
	if _, err := newGrid(lt, 612, 792); !errors.Is(err, ErrConfig) {
		t.Fatalf("左右边距超出纸张时期望 ErrConfig，实际 %v", err)
	}

	lt = avery5160()
	lt.ColumnGutter = 300 // 2 个 gutter 超过可打印宽度
	if _, err := newGrid(lt, 612, 792); !errors.Is(err, ErrConfig) {
		t.Fatalf("列间隔超出可打印区域时期望 ErrConfig，实际 %v", err)
	}

	lt = avery5160()
	lt.TopMargin, lt.BottomMargin = 500, 500
	if _, err := newGrid(lt, 612, 792); !errors.Is(err, ErrConfig) {
		t.Fatalf("上下边距超出纸张时期望 ErrConfig，实际 %v", err)
	}
}
