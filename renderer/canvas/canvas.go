// Package canvasrenderer 基于 github.com/tdewolff/canvas 实现排版引擎所需的
// 画布能力：文本测量、作用域式的包围盒/旋转/平移、换页，以及最终的 PDF 输出。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/labelpress/fonts"
	"github.com/ByLCY/labelpress/layout"
	"github.com/ByLCY/labelpress/renderer"
)

var (
	_ layout.Canvas     = (*Canvas)(nil)
	_ renderer.Document = (*Canvas)(nil)
)

// DocOptions 是透传给画布的文档元信息。
type DocOptions struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Keywords []string
}

// Canvas 持有当前文档的全部页面与绘制状态。引擎是唯一的使用者，调用是
// 单线程的；包围盒与坐标变换都以作用域函数开启，body 返回后立即恢复。
//
// 对外接口（layout.Canvas）的坐标与字号单位是 pt；内部与 tdewolff/canvas
// 交互使用 mm，在边界做 pt↔mm 换算。
type Canvas struct {
	pageWidth  float64 // mm
	pageHeight float64 // mm
	meta       DocOptions

	pages []*canvas.Canvas
	ctx   *canvas.Context

	fontMu   sync.Mutex
	family   *canvas.FontFamily
	fontSize float64 // pt

	// 包围盒栈（当前坐标系内的绝对坐标，pt）。
	boxes []box
}

type box struct {
	x, y, w, h float64
}

// New 创建一个 width×height（pt）的单页画布。
func New(width, height float64, meta DocOptions) *Canvas {
	c := &Canvas{
		pageWidth:  toMm(width),
		pageHeight: toMm(height),
		meta:       meta,
		fontSize:   layout.DefaultFontSize,
	}
	c.newPage()
	return c
}

func (c *Canvas) newPage() {
	page := canvas.New(c.pageWidth, c.pageHeight)
	ctx := canvas.NewContext(page)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	c.pages = append(c.pages, page)
	c.ctx = ctx
}

// StartNewPage 实现 layout.Canvas：开启一个同尺寸的新页。
func (c *Canvas) StartNewPage() error {
	if len(c.boxes) != 0 {
		return fmt.Errorf("包围盒未全部关闭时不允许换页")
	}
	c.newPage()
	return nil
}

// SetFont 加载并启用字体。path 支持 "embed:" 前缀（内置字体）或文件路径。
func (c *Canvas) SetFont(path string) error {
	if path == "" {
		path = fonts.DefaultPath
	}
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "embed:") {
		data, err = fonts.Load(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	c.fontMu.Lock()
	defer c.fontMu.Unlock()
	family := canvas.NewFontFamily("labelpress")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return fmt.Errorf("加载字体 %s 失败: %w", path, err)
	}
	c.family = family
	return nil
}

// SetFontSize 设置当前字号（pt）。
func (c *Canvas) SetFontSize(size float64) { c.fontSize = size }

// FontSize 返回当前字号（pt）。
func (c *Canvas) FontSize() float64 { return c.fontSize }

// face 返回 size（pt）字号的字体面；未显式 SetFont 时回退到内置字体。
func (c *Canvas) face(size float64) (*canvas.FontFace, error) {
	c.fontMu.Lock()
	family := c.family
	c.fontMu.Unlock()
	if family == nil {
		if err := c.SetFont(fonts.DefaultPath); err != nil {
			return nil, err
		}
		c.fontMu.Lock()
		family = c.family
		c.fontMu.Unlock()
	}
	return family.Face(size, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

// WidthOf 实现 layout.Canvas：单行文本在 size 字号下的宽度（pt）。
func (c *Canvas) WidthOf(line string, size float64) (float64, error) {
	face, err := c.face(size)
	if err != nil {
		return 0, err
	}
	return toPt(face.TextWidth(line)), nil
}

// HeightOf 实现 layout.Canvas：多行文本在 size 字号下的总高度（pt），
// 行高取字体度量。
func (c *Canvas) HeightOf(text string, size float64) (float64, error) {
	face, err := c.face(size)
	if err != nil {
		return 0, err
	}
	lines := strings.Count(text, "\n") + 1
	return toPt(face.Metrics().LineHeight) * float64(lines), nil
}

// BoundingBox 实现 layout.Canvas：开启一个绘制区域并执行 body，
// body 返回（含出错）后恢复。
func (c *Canvas) BoundingBox(x, y, width, height float64, body func() error) error {
	c.boxes = append(c.boxes, box{x: x, y: y, w: width, h: height})
	defer func() { c.boxes = c.boxes[:len(c.boxes)-1] }()
	return body()
}

// Rotate 实现 layout.Canvas：绕 (originX, originY) 旋转 degrees 度后执行 body。
func (c *Canvas) Rotate(degrees, originX, originY float64, body func() error) error {
	ox, oy := toMm(originX), toMm(originY)
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.ComposeView(canvas.Identity.Translate(ox, oy).Rotate(degrees).Translate(-ox, -oy))
	return body()
}

// Translate 实现 layout.Canvas：平移坐标系后执行 body。
func (c *Canvas) Translate(dx, dy float64, body func() error) error {
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.ComposeView(canvas.Identity.Translate(toMm(dx), toMm(dy)))
	return body()
}

// Text 实现 layout.Canvas：以当前字号把文本写入当前包围盒，按盒宽贪心折行。
func (c *Canvas) Text(s string) error {
	if len(c.boxes) == 0 {
		return fmt.Errorf("没有已开启的包围盒")
	}
	b := c.boxes[len(c.boxes)-1]
	face, err := c.face(c.fontSize)
	if err != nil {
		return err
	}

	limit := toMm(b.w)
	lines := greedyWrap(s, limit, face)
	metrics := face.Metrics()
	cursorY := toMm(b.y)
	for _, line := range lines {
		if line != "" {
			// 基线位置：行顶部加上字体上升部。
			textLine := canvas.NewTextLine(face, line, canvas.Left)
			c.ctx.DrawText(toMm(b.x), cursorY+metrics.Ascent, textLine)
		}
		cursorY += metrics.LineHeight
	}
	return nil
}

// RenderToBytes 实现 renderer.Document：把全部页面写成 PDF 字节流。
func (c *Canvas) RenderToBytes() ([]byte, error) {
	var buf bytes.Buffer
	writer := pdf.New(&buf, c.pageWidth, c.pageHeight, nil)
	writer.SetInfo(c.meta.Title, c.meta.Subject, strings.Join(c.meta.Keywords, ", "), c.meta.Author, c.meta.Creator)
	for i, page := range c.pages {
		if i > 0 {
			writer.NewPage(c.pageWidth, c.pageHeight)
		}
		page.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderToFile 实现 renderer.Document。
func (c *Canvas) RenderToFile(path string) error {
	data, err := c.RenderToBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }

// greedyWrap 按宽度贪心折行：优先在空白处分割，超过限制时在词内拆分；
// 显式换行始终生效。宽度单位为 mm。
func greedyWrap(content string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, strings.TrimRight(builder.String(), " "))
		builder.Reset()
		currentWidth = 0
	}
	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokenize(content) {
		if token == "\n" {
			emit(true)
			continue
		}
		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
			if strings.TrimSpace(token) == "" {
				continue // 行首不保留折行产生的空白
			}
		}
		if tokenWidth <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
		}
	}
	emit(false)
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// tokenize 把文本切成空白/非空白交替的 token，显式换行单独成 token。
func tokenize(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth 把超宽 token 按宽度限制拆成若干段。
func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
