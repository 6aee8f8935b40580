package layout

const (
	// DefaultFontSize 是未显式指定时的起始字号（pt）。
	DefaultFontSize = 12.0
	// DefaultMinFontSize 是迭代缩小字号的下限（pt），到达后返回 ErrFit。
	DefaultMinFontSize = 3.0
)

// Options 配置一次排版运行所需的依赖与策略。
type Options struct {
	FontPath     string  // 字体文件路径，为空时由渲染后端使用内置字体
	FontSize     float64 // 起始字号（pt），<=0 时取 DefaultFontSize
	MinFontSize  float64 // 迭代缩小的下限（pt），<=0 时取 DefaultMinFontSize
	ShrinkToFit  bool    // 启用一次性字号估算（shrink-to-fit 策略）
	VerticalText bool    // 全局竖排开关，可被单条记录的 VerticalOverrider 覆盖
}

// DrawFunc 在适配好的包围盒内绘制一条记录。引擎对每条记录同步调用一次，
// 回调返回错误会中止整次运行。
type DrawFunc func(c Canvas, r Record) error

// Canvas 是渲染后端契约。引擎是其唯一使用者，所有坐标为页面坐标
// （左上角为原点、向下为正），长度与字号单位均为 pt。
//
// BoundingBox/Rotate/Translate 是作用域式资源：body 返回（包括返回错误）后
// 必须恢复调用前的状态，保证嵌套严格配对。
type Canvas interface {
	// SetFont 加载并启用 path 指向的字体。
	SetFont(path string) error
	// SetFontSize 设置当前字号；FontSize 返回当前字号。
	SetFontSize(size float64)
	FontSize() float64

	// WidthOf 返回单行文本在 size 字号下的宽度。
	WidthOf(line string, size float64) (float64, error)
	// HeightOf 返回多行文本（换行符分隔）在 size 字号下的总高度。
	HeightOf(text string, size float64) (float64, error)

	// Text 以当前字号把文本绘制进当前包围盒，按盒宽折行。
	Text(s string) error

	// BoundingBox 以 (x, y) 为左上角开启一个 width×height 的绘制区域并执行 body。
	BoundingBox(x, y, width, height float64, body func() error) error
	// Rotate 绕 (originX, originY) 旋转 degrees 度后执行 body。
	Rotate(degrees, originX, originY float64, body func() error) error
	// Translate 平移坐标系后执行 body。
	Translate(dx, dy float64, body func() error) error

	// StartNewPage 结束当前页并开启一个同尺寸的新页。
	StartNewPage() error
}

// DrawText 是默认绘制回调：把记录文本写入当前包围盒。
func DrawText(c Canvas, r Record) error {
	return c.Text(r.Content())
}
