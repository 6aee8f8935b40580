package layout

import "errors"

// 错误分类：配置错误在任何画布交互之前返回；测量与适配错误会中止整次运行，
// 没有按记录恢复的语义（多记录任务要么全部完成要么整体失败）。
var (
	// ErrConfig 表示标签类型或网格参数非法。
	ErrConfig = errors.New("标签配置无效")
	// ErrMeasure 表示画布测量调用失败，或截断测量无法继续推进。
	ErrMeasure = errors.New("文本测量失败")
	// ErrFit 表示迭代缩小到达字号下限仍放不下。
	ErrFit = errors.New("已到字号下限仍无法放入单元格")
)
