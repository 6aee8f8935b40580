// Package labeltype 维护"类型名 → 标签纸配置"的注册表：内置目录、外部文件
// 加载（.labels DSL 或 YAML）与显式合并。注册表是调用方持有的普通值，没有
// 进程级全局状态；Merge 返回新注册表，便于测试保持封闭。
package labeltype

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/labelpress/dsl"
	"github.com/ByLCY/labelpress/layout"
)

// ErrUnknownType 表示类型名未注册。在任何画布交互之前返回。
var ErrUnknownType = fmt.Errorf("%w: 未注册的标签类型", layout.ErrConfig)

// Registry 把类型名映射到标签纸配置。
type Registry map[string]layout.LabelType

// Builtin 返回内置的 Avery 标签目录（单位 pt）。
func Builtin() Registry {
	return Registry{
		// US Letter，1in × 2 5/8in，每页 3×10
		"Avery5160": {
			PaperSize: "LETTER", TopMargin: 36, BottomMargin: 36,
			LeftMargin: 15.822, RightMargin: 15.822,
			Columns: 3, Rows: 10, ColumnGutter: 6.678, RowGutter: 0,
		},
		// US Letter，1in × 4in，每页 2×10
		"Avery5161": {
			PaperSize: "LETTER", TopMargin: 36, BottomMargin: 36,
			LeftMargin: 13.5, RightMargin: 13.5,
			Columns: 2, Rows: 10, ColumnGutter: 9, RowGutter: 0,
		},
		// US Letter，1 1/3in × 4in，每页 2×7
		"Avery5162": {
			PaperSize: "LETTER", TopMargin: 60, BottomMargin: 60,
			LeftMargin: 13.5, RightMargin: 13.5,
			Columns: 2, Rows: 7, ColumnGutter: 9, RowGutter: 0,
		},
		// US Letter，2in × 4in，每页 2×5
		"Avery5163": {
			PaperSize: "LETTER", TopMargin: 36, BottomMargin: 36,
			LeftMargin: 13.5, RightMargin: 13.5,
			Columns: 2, Rows: 5, ColumnGutter: 9, RowGutter: 0,
		},
		// US Letter，3 1/3in × 4in，每页 2×3
		"Avery5164": {
			PaperSize: "LETTER", TopMargin: 36, BottomMargin: 36,
			LeftMargin: 13.5, RightMargin: 13.5,
			Columns: 2, Rows: 3, ColumnGutter: 9, RowGutter: 0,
		},
		// A4，63.5mm × 38.1mm，每页 3×7
		"Avery7160": {
			PaperSize: "A4", TopMargin: 43, BottomMargin: 42.89,
			LeftMargin: 20.44, RightMargin: 20.44,
			Columns: 3, Rows: 7, ColumnGutter: 7.2, RowGutter: 0,
		},
		// A4，99.1mm × 38.1mm，每页 2×7
		"Avery7163": {
			PaperSize: "A4", TopMargin: 43, BottomMargin: 42.89,
			LeftMargin: 12.49, RightMargin: 12.49,
			Columns: 2, Rows: 7, ColumnGutter: 8.5, RowGutter: 0,
		},
	}
}

// Merge 返回一个包含 r 与 extra 全部条目的新注册表，extra 覆盖同名条目。
// r 本身不被修改。
func (r Registry) Merge(extra Registry) Registry {
	out := make(Registry, len(r)+len(extra))
	for name, t := range r {
		out[name] = t
	}
	for name, t := range extra {
		out[name] = t
	}
	return out
}

// Lookup 按名字取出配置，补全缺省值并校验。未注册的名字返回 ErrUnknownType。
func (r Registry) Lookup(name string) (layout.LabelType, error) {
	t, ok := r[name]
	if !ok {
		return layout.LabelType{}, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	t = t.Normalize()
	if err := t.Validate(); err != nil {
		return layout.LabelType{}, err
	}
	return t, nil
}

// Load 从类型定义文件构建注册表。.yaml/.yml 按 YAML 字典解码，
// 其余扩展名按 .labels DSL 解析。
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取类型定义文件 %s 失败: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var reg Registry
		if err := yaml.Unmarshal(data, &reg); err != nil {
			return nil, fmt.Errorf("解析 YAML 类型定义 %s 失败: %w", path, err)
		}
		return reg, nil
	default:
		doc, err := dsl.ParseString(string(data))
		if err != nil {
			return nil, fmt.Errorf("解析类型定义 %s 失败: %w", path, err)
		}
		return FromDocument(doc)
	}
}

// FromDocument 把 DSL 文档转换为注册表。长度属性允许 pt/mm/cm/in 单位，
// 统一换算为 pt；未知属性按配置错误处理。
func FromDocument(doc *dsl.Document) (Registry, error) {
	reg := make(Registry, len(doc.Types))
	for _, def := range doc.Types {
		t, err := typeFromDef(def)
		if err != nil {
			return nil, err
		}
		reg[def.Name] = t
	}
	return reg, nil
}

func typeFromDef(def *dsl.TypeDef) (layout.LabelType, error) {
	var t layout.LabelType
	if def.Block == nil {
		return t, fmt.Errorf("%w: type %s 缺少属性块", layout.ErrConfig, def.Name)
	}
	for _, a := range def.Block.Assignments {
		text := a.Value.Text()
		switch a.Key {
		case "paper-size":
			t.PaperSize = text
		case "top-margin":
			t.TopMargin = layout.ParseLength(text).ToPT()
		case "left-margin":
			t.LeftMargin = layout.ParseLength(text).ToPT()
		case "bottom-margin":
			t.BottomMargin = layout.ParseLength(text).ToPT()
		case "right-margin":
			t.RightMargin = layout.ParseLength(text).ToPT()
		case "column-gutter":
			t.ColumnGutter = layout.ParseLength(text).ToPT()
		case "row-gutter":
			t.RowGutter = layout.ParseLength(text).ToPT()
		case "columns":
			n, err := parseCount(text)
			if err != nil {
				return t, fmt.Errorf("%w: type %s 的 columns 非法: %v", layout.ErrConfig, def.Name, err)
			}
			t.Columns = n
		case "rows":
			n, err := parseCount(text)
			if err != nil {
				return t, fmt.Errorf("%w: type %s 的 rows 非法: %v", layout.ErrConfig, def.Name, err)
			}
			t.Rows = n
		case "vertical-text":
			t.VerticalText = text == "true"
		default:
			return t, fmt.Errorf("%w: type %s 含未知属性 %s", layout.ErrConfig, def.Name, a.Key)
		}
	}
	return t, nil
}

func parseCount(text string) (int, error) {
	return strconv.Atoi(text)
}
