package schema

// nullValue 显式的 SQL null 默认值。和 Default 为 nil（没有默认值）区分开。
type nullValue struct{}

func (nullValue) String() string {
	return "null"
}

// Null 显式的 SQL null，渲染为裸 token `null`。
var Null = nullValue{}

// Raw 原样输出的 SQL 片段，比如函数调用 getdate()。渲染时不加引号、不转义。
type Raw string
