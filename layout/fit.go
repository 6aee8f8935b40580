package layout

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// widthBuffer/heightBuffer 吸收绘制时的溢出，固定为 5pt。
	widthBuffer  = 5.0
	heightBuffer = 5.0

	// shrink-to-fit 一次性估算使用的常量：单元格高度的溢出预留、
	// 每行的估算行高单位（同时是默认字号）、以及"每 30 字符折一行"的密度近似。
	shrinkOverflowBuffer = 10.0
	shrinkLineUnit       = 12.0
	shrinkCharsPerLine   = 30
)

// shrinkFontSize 按 shrink-to-fit 策略一次性估算字号：行数 = 基础行数 +
// Σ(每行字符数/30)（与实际测量宽度无关的字符密度近似），可用高度 =
// cellHeight - 10。行数放得下时取默认字号 12，否则取可用高度/(行数+1)，
// 允许非整数字号。一次估算，不迭代。
func shrinkFontSize(text string, cellHeight float64) float64 {
	lines := strings.Split(text, "\n")
	count := len(lines)
	for _, line := range lines {
		count += utf8.RuneCountInString(line) / shrinkCharsPerLine
	}
	rowHeight := cellHeight - shrinkOverflowBuffer
	if float64(count) <= math.Floor(rowHeight/shrinkLineUnit) {
		return DefaultFontSize
	}
	return rowHeight / float64(count+1)
}

// fit 迭代缩小字号直到估算高度放得进单元格，然后计算把文本块在单元格内
// 居中的包围盒。从 size 开始每次减 1；到达 minSize 仍放不下时返回 ErrFit。
// 终态是幂等的：以返回的字号重新检查仍然满足"放得下"。
func (m metrics) fit(text string, cell Cell, size, minSize float64) (FitResult, error) {
	for {
		h, err := m.textHeight(text, cell.Width, size)
		if err != nil {
			return FitResult{}, err
		}
		if h <= cell.Height {
			break
		}
		size--
		if size < minSize {
			return FitResult{}, fmt.Errorf("%w: 最小字号 %g 仍放不进 %g×%g 的单元格", ErrFit, minSize, cell.Width, cell.Height)
		}
	}

	textW, err := m.textWidth(text, cell.Width, size)
	if err != nil {
		return FitResult{}, err
	}
	textH, err := m.textHeight(text, cell.Width, size)
	if err != nil {
		return FitResult{}, err
	}

	// 水平与垂直都居中，再按固定 buffer 外扩左上角。
	return FitResult{
		FontSize: size,
		X:        cell.X + (cell.Width-textW)/2 - widthBuffer,
		Y:        cell.Y + (cell.Height-textH)/2 - heightBuffer,
		Width:    textW + widthBuffer,
		Height:   textH,
	}, nil
}
