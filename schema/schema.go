package schema

// Table 描述一张仓库表：表名、有序的列、以及表级授权声明。
// Columns 的顺序即建表语句和数据拷贝语句中的列顺序。
type Table struct {
	Name        string        `yaml:"name" validate:"required"`
	Columns     []*Column     `yaml:"columns" validate:"required,min=1,dive,required"`
	Permissions []*Permission `yaml:"permissions,omitempty" validate:"omitempty,dive,required"`
}

// Column 描述一列。
//
// Default 为 nil 表示没有默认值；显式的 SQL null 默认值用 schema.Null 表示；
// Raw 包装的内容按原样输出，不做引号处理；字符串值在渲染时加引号并转义；
// 其他标量按其自然文本形式输出。
//
// Aliases 记录该列曾用过的名字，迁移拷贝数据时按精确匹配查找。
type Column struct {
	Name       string       `yaml:"name" validate:"required"`
	Type       DataType     `yaml:"type" validate:"required"`
	Nullable   bool         `yaml:"nullable"`
	Default    any          `yaml:"default,omitempty"`
	PrimaryKey bool         `yaml:"primaryKey"`
	Attributes []*Attribute `yaml:"attributes,omitempty"`
	Aliases    []string     `yaml:"aliases,omitempty"`
}

// Attribute 列的附加约束或属性，比如 Redshift 的 `ENCODE zstd`、`DISTKEY`。
// HasValue 为 true 时渲染为 `name value`，否则只渲染 name。
type Attribute struct {
	Name     string `yaml:"name" validate:"required"`
	HasValue bool   `yaml:"hasValue"`
	Value    any    `yaml:"value,omitempty"`
}

// Permission 表级授权声明，渲染为 GRANT 语句。
// ForUserGroup 为 true 时授权对象是用户组而不是单个用户。
type Permission struct {
	Permission      string `yaml:"permission" validate:"required"`
	ObjectName      string `yaml:"objectName" validate:"required"`
	UserOrGroupName string `yaml:"userOrGroupName" validate:"required"`
	ForUserGroup    bool   `yaml:"forUserGroup"`
}

// Clone 深拷贝整个描述符图（列、属性、别名、授权）。
// 迁移计划需要在临时副本上改表名，拷贝必须和原对象完全独立。
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	clone := &Table{Name: t.Name}
	if t.Columns != nil {
		clone.Columns = make([]*Column, 0, len(t.Columns))
		for _, column := range t.Columns {
			clone.Columns = append(clone.Columns, column.Clone())
		}
	}
	if t.Permissions != nil {
		clone.Permissions = make([]*Permission, 0, len(t.Permissions))
		for _, permission := range t.Permissions {
			p := *permission
			clone.Permissions = append(clone.Permissions, &p)
		}
	}
	return clone
}

// Clone 深拷贝列描述符。
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	clone := &Column{
		Name:       c.Name,
		Type:       c.Type,
		Nullable:   c.Nullable,
		Default:    c.Default,
		PrimaryKey: c.PrimaryKey,
	}
	if c.Attributes != nil {
		clone.Attributes = make([]*Attribute, 0, len(c.Attributes))
		for _, attribute := range c.Attributes {
			a := *attribute
			clone.Attributes = append(clone.Attributes, &a)
		}
	}
	if c.Aliases != nil {
		clone.Aliases = append([]string{}, c.Aliases...)
	}
	return clone
}

// PrimaryKeyColumns 按声明顺序返回主键列名，没有主键列时返回空。
func (t *Table) PrimaryKeyColumns() []string {
	var keys []string
	for _, column := range t.Columns {
		if column.PrimaryKey {
			keys = append(keys, column.Name)
		}
	}
	return keys
}
