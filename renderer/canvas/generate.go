package canvasrenderer

import (
	"os"
	"path/filepath"

	"github.com/ByLCY/labelpress/labeltype"
	"github.com/ByLCY/labelpress/layout"
)

// Options 是一次性生成标签 PDF 的全部参数。
type Options struct {
	// Type 是标签类型名，从 Types 中查找；Types 为 nil 时使用内置类型表。
	Type  string
	Types labeltype.Registry

	FontPath     string
	FontSize     float64
	MinFontSize  float64
	ShrinkToFit  bool
	VerticalText bool

	Document DocOptions
}

// Generate 按 opts 指定的标签类型把 records 排入 PDF，返回 PDF 字节流与
// 排版结果。类型查找失败时不创建画布直接返回错误。
func Generate(records []layout.Record, opts Options, draw layout.DrawFunc) ([]byte, *layout.Result, error) {
	reg := opts.Types
	if reg == nil {
		reg = labeltype.Builtin()
	}
	t, err := reg.Lookup(opts.Type)
	if err != nil {
		return nil, nil, err
	}

	pageW, pageH, err := t.PaperDims()
	if err != nil {
		return nil, nil, err
	}
	c := New(pageW, pageH, opts.Document)

	res, err := layout.Render(c, records, t, layout.Options{
		FontPath:     opts.FontPath,
		FontSize:     opts.FontSize,
		MinFontSize:  opts.MinFontSize,
		ShrinkToFit:  opts.ShrinkToFit,
		VerticalText: opts.VerticalText,
	}, draw)
	if err != nil {
		return nil, nil, err
	}

	data, err := c.RenderToBytes()
	if err != nil {
		return nil, nil, err
	}
	return data, res, nil
}

// GenerateFile 同 Generate，但把 PDF 写入 path。
func GenerateFile(path string, records []layout.Record, opts Options, draw layout.DrawFunc) (*layout.Result, error) {
	data, res, err := Generate(records, opts, draw)
	if err != nil {
		return nil, err
	}
	if err := writeFile(path, data); err != nil {
		return nil, err
	}
	return res, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
