package canvasrenderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ByLCY/labelpress/layout"
)

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := New(612, 792, DocOptions{Title: "test"})
	if err := c.SetFont(""); err != nil {
		t.Fatalf("加载内置字体失败: %v", err)
	}
	return c
}

func TestWidthOfScalesWithFontSize(t *testing.T) {
	c := newTestCanvas(t)
	small, err := c.WidthOf("hello world", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	big, err := c.WidthOf("hello world", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if small <= 0 || big <= small {
		t.Fatalf("expected width to grow with font size, got %g vs %g", small, big)
	}
}

func TestHeightOfCountsLines(t *testing.T) {
	c := newTestCanvas(t)
	one, err := c.HeightOf("a", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	three, err := c.HeightOf("a\nb\nc", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := three - 3*one; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected 3-line height to be 3x single line, got %g vs %g", three, one)
	}
}

func TestTextRequiresBoundingBox(t *testing.T) {
	c := newTestCanvas(t)
	if err := c.Text("orphan"); err == nil {
		t.Fatalf("expected error when drawing outside a bounding box")
	}
}

func TestBoundingBoxScopeIsRestored(t *testing.T) {
	c := newTestCanvas(t)
	err := c.BoundingBox(10, 10, 100, 50, func() error {
		return c.Text("inside")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// body 返回后作用域关闭，盒外绘制再次报错。
	if err := c.Text("outside"); err == nil {
		t.Fatalf("expected bounding box to be closed after body returns")
	}
}

func TestStartNewPageRejectsOpenBox(t *testing.T) {
	c := newTestCanvas(t)
	err := c.BoundingBox(0, 0, 10, 10, func() error {
		return c.StartNewPage()
	})
	if err == nil {
		t.Fatalf("expected error when breaking page inside an open box")
	}
}

func TestRenderToBytesProducesPDF(t *testing.T) {
	c := newTestCanvas(t)
	err := c.BoundingBox(36, 36, 200, 100, func() error {
		return c.Text("hello labels")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.StartNewPage(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := c.RenderToBytes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %q", data[:min(16, len(data))])
	}
}

func TestGenerateUnknownTypeFailsEarly(t *testing.T) {
	_, _, err := Generate(layout.Records("x"), Options{Type: "NoSuchType"}, nil)
	if !errors.Is(err, layout.ErrConfig) {
		t.Fatalf("expected config error for unknown type, got %v", err)
	}
}

func TestGenerateProducesMultiPagePDF(t *testing.T) {
	records := make([]string, 35) // Avery5160 每页 30 格
	for i := range records {
		records[i] = "Label"
	}
	data, res, err := Generate(layout.Records(records...), Options{Type: "Avery5160"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pages != 2 {
		t.Fatalf("expected 2 pages for 35 records, got %d", res.Pages)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF output")
	}
}
