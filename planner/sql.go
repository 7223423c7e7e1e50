package planner

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hatlonely/migx/schema"
)

const (
	beginSQL  = "BEGIN;"
	commitSQL = "COMMIT;"
)

// CreateTableSQL 渲染建表语句。列定义按声明顺序用逗号连接，
// 有主键列时在末尾追加 PRIMARY KEY 子句，支持复合主键。
func (p *Planner) CreateTableSQL(table *schema.Table) (string, error) {
	if table == nil {
		return "", errors.WithMessage(ErrMissingTable, "create table")
	}
	if len(table.Columns) == 0 {
		return "", errors.WithMessagef(ErrNoColumns, "table %s", table.Name)
	}

	definitions := make([]string, 0, len(table.Columns)+1)
	for _, column := range table.Columns {
		definition, err := columnDefSQL(column)
		if err != nil {
			return "", errors.WithMessagef(err, "table %s", table.Name)
		}
		definitions = append(definitions, definition)
	}
	if pkSQL := primaryKeySQL(table); pkSQL != "" {
		definitions = append(definitions, pkSQL)
	}

	return fmt.Sprintf("CREATE TABLE %s (%s);", table.Name, strings.Join(definitions, ",")), nil
}

// columnDefSQL 渲染单个列定义：`<名字> <类型><非空><默认值><属性>`。
// 可空是缺省状态，通过省略表达；非空渲染为 ` not null`。
func columnDefSQL(column *schema.Column) (string, error) {
	typeSQL, err := dataTypeSQL(column.Type)
	if err != nil {
		return "", errors.WithMessagef(err, "column %s", column.Name)
	}

	nullable := ""
	if !column.Nullable {
		nullable = " not null"
	}
	defaultClause := ""
	if column.Default != nil {
		defaultClause = " default " + literalSQL(column.Default)
	}
	attributes := concatenateAttributes(column.Attributes)
	if attributes != "" {
		attributes = " " + attributes
	}

	return fmt.Sprintf("%s %s%s%s%s", column.Name, typeSQL, nullable, defaultClause, attributes), nil
}

// dataTypeSQL 按变体渲染数据类型。未知的 DataType 实现是编程错误，
// 立即报 ErrUnsupportedDataType，不会生成残缺的语句。
func dataTypeSQL(dataType schema.DataType) (string, error) {
	switch t := dataType.(type) {
	case schema.StringType:
		return fmt.Sprintf("%s(%d)", t.Name, t.Length), nil
	case schema.RealNumberType:
		return fmt.Sprintf("%s(%d,%d)", t.Name, t.Precision, t.Scale), nil
	case schema.SimpleType:
		return t.Name, nil
	case nil:
		return "", errors.WithMessage(ErrUnsupportedDataType, "data type is nil")
	default:
		return "", errors.WithMessagef(ErrUnsupportedDataType, "%T", dataType)
	}
}

func concatenateAttributes(attributes []*schema.Attribute) string {
	parts := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		if attribute.HasValue {
			parts = append(parts, attribute.Name+" "+literalSQL(attribute.Value))
		} else {
			parts = append(parts, attribute.Name)
		}
	}
	return strings.Join(parts, " ")
}

// literalSQL 渲染标量字面量：null 输出裸 token，字符串加单引号并把内嵌的
// 单引号用反斜杠转义，Raw 原样输出，其他标量按自然文本形式输出。
func literalSQL(value any) string {
	if value == nil || value == schema.Null {
		return "null"
	}
	switch v := value.(type) {
	case schema.Raw:
		return string(v)
	case string:
		return "'" + strings.ReplaceAll(v, "'", "\\'") + "'"
	default:
		return fmt.Sprint(v)
	}
}

func primaryKeySQL(table *schema.Table) string {
	keys := table.PrimaryKeyColumns()
	if len(keys) == 0 {
		return ""
	}
	return fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(keys, ", "))
}

// columnPair 数据拷贝中一对源列和目标列
type columnPair struct {
	srcName string
	dstName string
}

// reconcileColumns 按源表列序做列对账：列名相同直接配对；否则拿源列名去
// 目标列的别名里精确查找，找到就配到目标列的现用名上；两者都失败的源列
// 被丢弃，同时记录下来供调用方告警。
func reconcileColumns(dstTable *schema.Table, srcTable *schema.Table) (pairs []columnPair, dropped []string) {
	dstNames := make(map[string]struct{}, len(dstTable.Columns))
	aliasToColumn := make(map[string]*schema.Column)
	for _, column := range dstTable.Columns {
		dstNames[column.Name] = struct{}{}
		for _, alias := range column.Aliases {
			aliasToColumn[alias] = column
		}
	}

	for _, srcColumn := range srcTable.Columns {
		if _, ok := dstNames[srcColumn.Name]; ok {
			pairs = append(pairs, columnPair{srcName: srcColumn.Name, dstName: srcColumn.Name})
			continue
		}
		if dstColumn, ok := aliasToColumn[srcColumn.Name]; ok {
			pairs = append(pairs, columnPair{srcName: srcColumn.Name, dstName: dstColumn.Name})
			continue
		}
		dropped = append(dropped, srcColumn.Name)
	}
	return pairs, dropped
}

// InsertTableSQL 渲染数据拷贝语句。srcTable 为 nil 或者没有任何列能对上时
// 返回空串，调用方不会把空语句放进计划。
func (p *Planner) InsertTableSQL(newTable *schema.Table, srcTable *schema.Table) string {
	if srcTable == nil {
		return ""
	}

	pairs, dropped := reconcileColumns(newTable, srcTable)
	for _, name := range dropped {
		p.logger.Warn("source column dropped from data copy",
			"srcTable", srcTable.Name, "newTable", newTable.Name, "column", name)
	}
	if len(pairs) == 0 {
		return ""
	}

	srcColumns := make([]string, 0, len(pairs))
	dstColumns := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		srcColumns = append(srcColumns, pair.srcName)
		dstColumns = append(dstColumns, pair.dstName)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) (SELECT %s FROM %s);",
		newTable.Name,
		strings.Join(dstColumns, ", "),
		strings.Join(srcColumns, ", "),
		srcTable.Name)
}

func (p *Planner) RenameTableSQL(oldTableName string, newTableName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s;", oldTableName, newTableName)
}

// GrantSQL 渲染授权语句。授权对象是用户组时加 GROUP 前缀。
func (p *Planner) GrantSQL(permission *schema.Permission) string {
	target := permission.UserOrGroupName
	if permission.ForUserGroup {
		target = "GROUP " + target
	}
	return fmt.Sprintf("GRANT %s ON %s TO %s;", permission.Permission, permission.ObjectName, target)
}

func (p *Planner) DropTableSQL(tableName string) string {
	return fmt.Sprintf("DROP TABLE %s;", tableName)
}
