package layout

import "fmt"

// Render 依次把 records 放进 t 描述的标签网格：索引经换页检测映射到单元格，
// 适配字号并居中（竖排记录改为旋转坐标系），随后在适配好的包围盒内调用
// draw 绘制记录内容。draw 为 nil 时使用 DrawText。
//
// 严格按索引顺序单线程处理；任一记录出错立即中止并返回，没有按记录恢复。
// 返回的 Result 记录页数与每条记录的落位，供调试输出与测试检查。
func Render(c Canvas, records []Record, t LabelType, opts Options, draw DrawFunc) (*Result, error) {
	t = t.Normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	pageW, pageH, err := t.PaperDims()
	if err != nil {
		return nil, err
	}
	grid, err := newGrid(t, pageW, pageH)
	if err != nil {
		return nil, err
	}

	if draw == nil {
		draw = DrawText
	}
	baseSize := opts.FontSize
	if baseSize <= 0 {
		baseSize = DefaultFontSize
	}
	minSize := opts.MinFontSize
	if minSize <= 0 {
		minSize = DefaultMinFontSize
	}

	if opts.FontPath != "" {
		if err := c.SetFont(opts.FontPath); err != nil {
			return nil, fmt.Errorf("加载字体 %s 失败: %w", opts.FontPath, err)
		}
	}
	c.SetFontSize(baseSize)

	m := metrics{canvas: c}
	res := &Result{Pages: 1}
	page := 0

	for i, rec := range records {
		row, col, pageBreak := locate(i, grid.Rows, grid.Columns)
		if pageBreak {
			if err := c.StartNewPage(); err != nil {
				return nil, fmt.Errorf("换页失败: %w", err)
			}
			// 网格形状逐页不变，换页后按同一参数重建。
			grid, err = newGrid(t, pageW, pageH)
			if err != nil {
				return nil, err
			}
			page++
			res.Pages++
		}
		cell := grid.CellAt(row, col)

		vertical := opts.VerticalText || t.VerticalText
		if vo, ok := rec.(VerticalOverrider); ok {
			vertical = vo.VerticalText()
		}

		// 每条记录都从基准字号重新开始，不跨记录记忆。
		size := baseSize
		if opts.ShrinkToFit {
			// 一次性估算不受下限约束（极小的单元格甚至会算出非正值），
			// 钳回下限；到下限仍放不下由后续适配返回 ErrFit。
			size = shrinkFontSize(rec.Content(), cell.Height)
			if size < minSize {
				size = minSize
			}
		}
		c.SetFontSize(size)

		pl := Placement{Index: i, Page: page, Row: row, Column: col, Vertical: vertical, Cell: cell}

		if vertical {
			// 绕单元格左上角旋转 270°，平移使旋转后的原点与单元格对齐；
			// 包围盒宽高互换（旋转交换了两轴），不再做适配与居中。
			err = c.Rotate(270, cell.X, cell.Y, func() error {
				return c.Translate(-cell.Height, 0, func() error {
					return c.BoundingBox(cell.X, cell.Y, cell.Height, cell.Width, func() error {
						return draw(c, rec)
					})
				})
			})
		} else {
			var fr FitResult
			fr, err = m.fit(rec.Content(), cell, size, minSize)
			if err != nil {
				return nil, err
			}
			pl.Fit = &fr
			err = c.BoundingBox(cell.X, cell.Y, cell.Width, cell.Height, func() error {
				return c.BoundingBox(fr.X, fr.Y, fr.Width, fr.Height, func() error {
					c.SetFontSize(fr.FontSize)
					return draw(c, rec)
				})
			})
		}
		if err != nil {
			return nil, err
		}
		res.Placements = append(res.Placements, pl)
	}
	return res, nil
}
