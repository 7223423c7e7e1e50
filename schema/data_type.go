package schema

// DataType 列数据类型。渲染规则按变体区分：
//
//   - StringType     -> name(length)
//   - RealNumberType -> name(precision,scale)
//   - SimpleType     -> name
//
// 这里只定义这三种变体，渲染器遇到未知实现会立即报错，不会静默跳过。
type DataType interface {
	// TypeName 返回 SQL 类型名，比如 varchar、decimal、int。
	TypeName() string
}

// StringType 带长度的字符类型，比如 varchar(256)。
type StringType struct {
	Name   string
	Length int
}

func (t StringType) TypeName() string {
	return t.Name
}

// RealNumberType 带精度和小数位的数值类型，比如 decimal(10,2)。
type RealNumberType struct {
	Name      string
	Precision int
	Scale     int
}

func (t RealNumberType) TypeName() string {
	return t.Name
}

// SimpleType 不带参数的类型，比如 int、bool、date。
type SimpleType struct {
	Name string
}

func (t SimpleType) TypeName() string {
	return t.Name
}
