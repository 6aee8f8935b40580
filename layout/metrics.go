package layout

import (
	"fmt"
	"strings"
)

// metrics 包装画布的测量原语，回答"这段文本在该盒宽、该字号下占多宽/多高/几行"。
// 这里的行数与折行都是刻意的粗略近似（见各方法注释），调用方可能依赖现有的
// 尺寸行为；精确的逐词折行实现应替换本适配器而非改动 fitter 的控制流。
type metrics struct {
	canvas Canvas
}

// numberOfLines 估算文本在 boxWidth 内占用的显示行数：按换行符拆出基础行，
// 超宽的行按"多占一行"计。不模拟真实折行产生的行数。
func (m metrics) numberOfLines(text string, boxWidth, size float64) (int, error) {
	base := strings.Split(text, "\n")
	count := len(base)
	for _, line := range base {
		w, err := m.canvas.WidthOf(line, size)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasure, err)
		}
		if w > boxWidth {
			count++
		}
	}
	return count, nil
}

// textHeight 用 numberOfLines 的行数构造等行数的占位文本交给画布测高，
// 即高度来自占位行数 × 当前字号的行高，而不是真实折行后的文本。
func (m metrics) textHeight(text string, boxWidth, size float64) (float64, error) {
	n, err := m.numberOfLines(text, boxWidth, size)
	if err != nil {
		return 0, err
	}
	synthetic := strings.TrimSuffix(strings.Repeat("X\n", n), "\n")
	h, err := m.canvas.HeightOf(synthetic, size)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMeasure, err)
	}
	return h, nil
}

// textWidth 返回折行后最宽一行的宽度。超宽的行在最后一个空格处反复截短，
// 直到放得进 boxWidth（仅用于测量的破坏性改写）；行内没有空格可断时测量
// 无法推进，按致命错误返回。
func (m metrics) textWidth(text string, boxWidth, size float64) (float64, error) {
	max := 0.0
	for _, line := range strings.Split(text, "\n") {
		for {
			w, err := m.canvas.WidthOf(line, size)
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrMeasure, err)
			}
			if w <= boxWidth {
				if w > max {
					max = w
				}
				break
			}
			cut := strings.LastIndex(line, " ")
			if cut < 0 {
				return 0, fmt.Errorf("%w: 行 %q 超出盒宽且没有可断行的空格", ErrMeasure, line)
			}
			line = line[:cut]
		}
	}
	return max, nil
}
