package planner

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hatlonely/migx/schema"
)

func TestDataTypeSQL(t *testing.T) {
	tests := []struct {
		name     string
		dataType schema.DataType
		expected string
	}{
		{"varchar", schema.VarChar(256), "varchar(256)"},
		{"char", schema.Char(4), "char(4)"},
		{"decimal", schema.Decimal(10, 2), "decimal(10,2)"},
		{"smallint", schema.SmallInt(), "smallint"},
		{"int", schema.Integer(), "int"},
		{"bigint", schema.BigInt(), "bigint"},
		{"real", schema.Real(), "real"},
		{"double", schema.Double(), "double precision"},
		{"bool", schema.Boolean(), "bool"},
		{"date", schema.Date(), "date"},
		{"timestamp", schema.Timestamp(), "timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := dataTypeSQL(tt.dataType)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestDataTypeSQL_Unsupported(t *testing.T) {
	_, err := dataTypeSQL(unsupportedType{})
	assert.True(t, errors.Is(err, ErrUnsupportedDataType))

	_, err = dataTypeSQL(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedDataType))
}

func TestLiteralSQL(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"显式 null", schema.Null, "null"},
		{"字符串加引号", "active", "'active'"},
		{"内嵌单引号转义", "O'Brien", `'O\'Brien'`},
		{"整数", 0, "0"},
		{"浮点数", 1.5, "1.5"},
		{"原样输出的 SQL 片段", schema.Raw("getdate()"), "getdate()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, literalSQL(tt.value))
		})
	}
}

func TestColumnDefSQL(t *testing.T) {
	tests := []struct {
		name     string
		column   *schema.Column
		expected string
	}{
		{
			"非空列",
			&schema.Column{Name: "id", Type: schema.Integer()},
			"id int not null",
		},
		{
			"可空列通过省略表达",
			&schema.Column{Name: "payload", Type: schema.VarChar(256), Nullable: true},
			"payload varchar(256)",
		},
		{
			"数字默认值",
			&schema.Column{Name: "retry", Type: schema.Integer(), Nullable: true, Default: 0},
			"retry int default 0",
		},
		{
			"字符串默认值加引号",
			&schema.Column{Name: "state", Type: schema.VarChar(16), Nullable: true, Default: "new"},
			"state varchar(16) default 'new'",
		},
		{
			"显式 null 默认值",
			&schema.Column{Name: "note", Type: schema.VarChar(16), Nullable: true, Default: schema.Null},
			"note varchar(16) default null",
		},
		{
			"原样输出的默认值不加引号",
			&schema.Column{Name: "created_at", Type: schema.Timestamp(), Default: schema.Raw("getdate()")},
			"created_at timestamp not null default getdate()",
		},
		{
			"列属性用空格连接",
			&schema.Column{
				Name: "shard_key", Type: schema.BigInt(),
				Attributes: []*schema.Attribute{
					{Name: "encode", HasValue: true, Value: schema.Raw("zstd")},
					{Name: "distkey"},
				},
			},
			"shard_key bigint not null encode zstd distkey",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := columnDefSQL(tt.column)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestCreateTableSQL(t *testing.T) {
	planner, err := NewPlannerWithOptions(nil)
	assert.NoError(t, err)

	t.Run("复合主键按列声明顺序", func(t *testing.T) {
		table := &schema.Table{
			Name: "orders",
			Columns: []*schema.Column{
				{Name: "order_id", Type: schema.BigInt(), PrimaryKey: true},
				{Name: "amount", Type: schema.Decimal(12, 2)},
				{Name: "line_no", Type: schema.Integer(), PrimaryKey: true},
			},
		}
		actual, err := planner.CreateTableSQL(table)
		assert.NoError(t, err)
		assert.Equal(t,
			"CREATE TABLE orders (order_id bigint not null,amount decimal(12,2) not null,line_no int not null,PRIMARY KEY (order_id, line_no));",
			actual)
	})

	t.Run("没有主键列时省略主键子句", func(t *testing.T) {
		table := &schema.Table{
			Name: "logs",
			Columns: []*schema.Column{
				{Name: "message", Type: schema.VarChar(1024), Nullable: true},
			},
		}
		actual, err := planner.CreateTableSQL(table)
		assert.NoError(t, err)
		assert.Equal(t, "CREATE TABLE logs (message varchar(1024));", actual)
	})

	t.Run("没有列的表报错", func(t *testing.T) {
		_, err := planner.CreateTableSQL(&schema.Table{Name: "empty"})
		assert.True(t, errors.Is(err, ErrNoColumns))
	})
}

func TestGrantSQL(t *testing.T) {
	planner, err := NewPlannerWithOptions(nil)
	assert.NoError(t, err)

	t.Run("授权给用户组", func(t *testing.T) {
		actual := planner.GrantSQL(&schema.Permission{
			Permission:      "SELECT",
			ObjectName:      "events",
			UserOrGroupName: "analysts",
			ForUserGroup:    true,
		})
		assert.Equal(t, "GRANT SELECT ON events TO GROUP analysts;", actual)
	})

	t.Run("授权给单个用户", func(t *testing.T) {
		actual := planner.GrantSQL(&schema.Permission{
			Permission:      "ALL",
			ObjectName:      "events",
			UserOrGroupName: "etl_user",
		})
		assert.Equal(t, "GRANT ALL ON events TO etl_user;", actual)
	})
}

func TestRenameAndDropSQL(t *testing.T) {
	planner, err := NewPlannerWithOptions(nil)
	assert.NoError(t, err)

	assert.Equal(t, "ALTER TABLE events RENAME TO events_old;",
		planner.RenameTableSQL("events", "events_old"))
	assert.Equal(t, "DROP TABLE events_old;",
		planner.DropTableSQL("events_old"))
}
