package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/labelpress/binding"
	"github.com/ByLCY/labelpress/labeltype"
	"github.com/ByLCY/labelpress/layout"
	canvasrenderer "github.com/ByLCY/labelpress/renderer/canvas"
)

func main() {
	typeName := flag.String("type", "Avery5160", "标签类型名")
	typesPath := flag.String("types", "", "自定义类型定义文件（.labels 或 .yaml），与内置类型合并")
	input := flag.String("in", "", "记录文本文件路径（空行分隔各条记录），为空时读取标准输入")
	template := flag.String("template", "", "记录模板，配合 -data 为每个数据行生成一条记录")
	dataJSON := flag.String("data", "", "绑定到模板的 JSON 数组")
	output := flag.String("out", "output/labels.pdf", "PDF 输出路径")
	fontPath := flag.String("font", "", "字体文件路径，为空时使用内置字体")
	fontSize := flag.Float64("font-size", 0, "起始字号（pt），0 表示默认值")
	minFontSize := flag.Float64("min-font-size", 0, "自动缩小的字号下限（pt），0 表示默认值")
	shrink := flag.Bool("shrink", false, "文本放不下时自动缩小字号")
	vertical := flag.Bool("vertical", false, "竖排文本（整页生效）")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	flag.Parse()

	records, err := collectRecords(*input, *template, *dataJSON)
	if err != nil {
		log.Fatalf("读取记录失败: %v", err)
	}

	reg := labeltype.Builtin()
	if *typesPath != "" {
		extra, err := labeltype.Load(*typesPath)
		if err != nil {
			log.Fatalf("加载类型定义 %s 失败: %v", *typesPath, err)
		}
		reg = reg.Merge(extra)
	}

	result, err := canvasrenderer.GenerateFile(*output, records, canvasrenderer.Options{
		Type:         *typeName,
		Types:        reg,
		FontPath:     *fontPath,
		FontSize:     *fontSize,
		MinFontSize:  *minFontSize,
		ShrinkToFit:  *shrink,
		VerticalText: *vertical,
		Document: canvasrenderer.DocOptions{
			Title:   *typeName,
			Creator: "labelpress",
		},
	}, nil)
	if err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}

	if *debug != "" {
		if err := writeDebug(result, *debug); err != nil {
			log.Fatalf("%v", err)
		}
	}
	fmt.Printf("已生成 PDF：%s（%d 页，%d 条记录）\n", *output, result.Pages, len(result.Placements))
}

// collectRecords 汇总待排版的记录：模板+数据展开优先，其次读取文件或标准输入。
func collectRecords(inputPath, template, dataJSON string) ([]layout.Record, error) {
	if template != "" {
		if dataJSON == "" {
			return nil, fmt.Errorf("使用 -template 时必须提供 -data")
		}
		var rows []any
		if err := json.Unmarshal([]byte(dataJSON), &rows); err != nil {
			return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
		}
		return layout.Records(binding.Expand(template, rows)...), nil
	}

	var data []byte
	var err error
	if inputPath == "" {
		data, err = readStdin()
	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return nil, err
	}
	return layout.Records(splitRecords(string(data))...), nil
}

func readStdin() ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("未提供 -in 且标准输入为空")
	}
	return io.ReadAll(os.Stdin)
}

// splitRecords 按空行切分记录，保留记录内部的换行。
func splitRecords(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var records []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			records = append(records, block)
		}
	}
	return records
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
