package layout

// locate 把从 0 开始的线性记录索引映射到当前页的 (row, column)，并指出放置
// 之前是否需要先换页。必须按索引顺序逐条调用：换页检测依赖连续遍历，调用方
// 不能乱序或跳号。
func locate(index, rows, columns int) (row, column int, pageBreak bool) {
	perPage := rows * columns
	page := index / perPage
	offset := index % perPage
	if offset == 0 && page > 0 {
		// 本页第 0 格且不是第一页：先换页，落在新页左上角。
		return 0, 0, true
	}
	return offset / columns, offset % columns, false
}
