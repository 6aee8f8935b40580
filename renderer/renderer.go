package renderer

// Document 将已绘制的页面输出为最终文件，例如 PDF。
// RenderToBytes 返回生成的二进制数据（例如 PDF 字节切片）以及可能的错误。
type Document interface {
	RenderToBytes() ([]byte, error)
	RenderToFile(path string) error
}
