package planner

import (
	"github.com/pkg/errors"

	"github.com/hatlonely/migx/logger"
	"github.com/hatlonely/migx/schema"
)

var (
	ErrUnsupportedDataType = errors.New("unsupported data type")
	ErrNoColumns           = errors.New("table has no columns")
	ErrMissingTable        = errors.New("table is required")
)

// Options 规划器选项
type Options struct {
	// 换名策略中临时表名的后缀
	TmpTableSuffix string `cfg:"tmpTableSuffix" def:"_tmp"`

	// 换名策略中退役旧表的表名后缀
	OldTableSuffix string `cfg:"oldTableSuffix" def:"_old"`
}

// Planner 生成仓库表结构迁移的 push plan。生成的 SQL 语句只做规划，不会被执行。
//
// 规划器是纯函数式的：不做 IO，不修改传入的描述符，可以并发使用。
// 返回的语句必须按顺序在同一个事务内执行，语句序列以 BEGIN 开头、COMMIT 结尾。
type Planner struct {
	options *Options
	logger  logger.Logger
}

func NewPlannerWithOptions(options *Options) (*Planner, error) {
	if options == nil {
		options = &Options{}
	}
	if options.TmpTableSuffix == "" {
		options.TmpTableSuffix = "_tmp"
	}
	if options.OldTableSuffix == "" {
		options.OldTableSuffix = "_old"
	}

	return &Planner{
		options: options,
		logger:  logger.Default(),
	}, nil
}

// SetLogger 设置日志记录器。拷贝数据时被丢弃的源列会通过它以 warn 级别输出。
func (p *Planner) SetLogger(logger logger.Logger) {
	p.logger = logger
}

// PushPlan 有序的 SQL 语句序列，按顺序执行即可完成一次表结构迁移。
type PushPlan []string

// Plan 生成迁移计划。oldTable 为 nil 表示表不存在，只建新表。
//
// 新旧表同名时走换名策略（SwapTablePlan）：同名迁移不能出现表短暂缺失或者
// 换了名字的窗口，必须用临时表原子换名。其他情况走建表拷贝策略
// （CreateTablePlan）：不同名的新表可以直接创建，不影响旧表。
func (p *Planner) Plan(newTable *schema.Table, oldTable *schema.Table) (PushPlan, error) {
	if newTable == nil {
		return nil, errors.WithMessage(ErrMissingTable, "new table")
	}
	if oldTable != nil && oldTable.Name == newTable.Name {
		return p.SwapTablePlan(oldTable, newTable)
	}
	return p.CreateTablePlan(newTable, oldTable)
}

// CreateTablePlan 建表拷贝策略：创建新表；如果旧表存在且有列能对上，
// 把旧表数据拷贝过来；旧表保持原样不动。
func (p *Planner) CreateTablePlan(newTable *schema.Table, oldTable *schema.Table) (PushPlan, error) {
	if newTable == nil {
		return nil, errors.WithMessage(ErrMissingTable, "new table")
	}

	createSQL, err := p.CreateTableSQL(newTable)
	if err != nil {
		return nil, err
	}

	plan := PushPlan{beginSQL, createSQL}
	if insertSQL := p.InsertTableSQL(newTable, oldTable); insertSQL != "" {
		plan = append(plan, insertSQL)
	}
	for _, permission := range newTable.Permissions {
		plan = append(plan, p.GrantSQL(permission))
	}
	plan = append(plan, commitSQL)
	return plan, nil
}

// SwapTablePlan 换名策略：在临时表名下建出新表结构，从旧表拷贝数据，
// 然后两次 ALTER TABLE RENAME 原子换名，最后删掉退役的旧表。
//
// 顺序是关键：换名必须在拷贝完成之后、删表之前；两次换名都在授权之前，
// 保证 GRANT 始终作用在最终的表名上；DROP 是唯一不可逆的一步，放在最后。
func (p *Planner) SwapTablePlan(oldTable *schema.Table, newTable *schema.Table) (PushPlan, error) {
	if newTable == nil {
		return nil, errors.WithMessage(ErrMissingTable, "new table")
	}
	if oldTable == nil {
		return nil, errors.WithMessage(ErrMissingTable, "old table")
	}

	// 深拷贝之后再改表名，调用方的描述符不能被动到
	tmpTable := newTable.Clone()
	tmpTable.Name += p.options.TmpTableSuffix
	dropTableName := oldTable.Name + p.options.OldTableSuffix

	createSQL, err := p.CreateTableSQL(tmpTable)
	if err != nil {
		return nil, err
	}

	plan := PushPlan{beginSQL, createSQL}
	if insertSQL := p.InsertTableSQL(tmpTable, oldTable); insertSQL != "" {
		plan = append(plan, insertSQL)
	}
	plan = append(plan, p.RenameTableSQL(oldTable.Name, dropTableName))
	plan = append(plan, p.RenameTableSQL(tmpTable.Name, newTable.Name))
	for _, permission := range newTable.Permissions {
		plan = append(plan, p.GrantSQL(permission))
	}
	plan = append(plan, p.DropTableSQL(dropTableName))
	plan = append(plan, commitSQL)
	return plan, nil
}
