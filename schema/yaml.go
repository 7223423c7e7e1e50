package schema

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// dataTypeYAML 数据类型的序列化形态，按字段组合选择变体：
// length 非零选 StringType，precision/scale 非零选 RealNumberType，否则 SimpleType。
type dataTypeYAML struct {
	Name      string `yaml:"name"`
	Length    int    `yaml:"length,omitempty"`
	Precision int    `yaml:"precision,omitempty"`
	Scale     int    `yaml:"scale,omitempty"`
}

func (t *dataTypeYAML) toDataType() (DataType, error) {
	if t.Name == "" {
		return nil, errors.New("data type name is required")
	}
	if t.Length != 0 {
		return StringType{Name: t.Name, Length: t.Length}, nil
	}
	if t.Precision != 0 || t.Scale != 0 {
		return RealNumberType{Name: t.Name, Precision: t.Precision, Scale: t.Scale}, nil
	}
	return SimpleType{Name: t.Name}, nil
}

func fromDataType(dataType DataType) (*dataTypeYAML, error) {
	switch t := dataType.(type) {
	case StringType:
		return &dataTypeYAML{Name: t.Name, Length: t.Length}, nil
	case RealNumberType:
		return &dataTypeYAML{Name: t.Name, Precision: t.Precision, Scale: t.Scale}, nil
	case SimpleType:
		return &dataTypeYAML{Name: t.Name}, nil
	default:
		return nil, errors.Errorf("unsupported data type %T", dataType)
	}
}

// columnYAML 列的序列化形态。显式的 null 默认值用 defaultNull 表达，
// 原样输出的 SQL 默认值用 defaultRaw 表达，两者都缺省时 default 按普通标量处理。
type columnYAML struct {
	Name        string       `yaml:"name"`
	Type        dataTypeYAML `yaml:"type"`
	Nullable    bool         `yaml:"nullable,omitempty"`
	Default     any          `yaml:"default,omitempty"`
	DefaultNull bool         `yaml:"defaultNull,omitempty"`
	DefaultRaw  string       `yaml:"defaultRaw,omitempty"`
	PrimaryKey  bool         `yaml:"primaryKey,omitempty"`
	Attributes  []*Attribute `yaml:"attributes,omitempty"`
	Aliases     []string     `yaml:"aliases,omitempty"`
}

func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	var wire columnYAML
	if err := node.Decode(&wire); err != nil {
		return err
	}
	dataType, err := wire.Type.toDataType()
	if err != nil {
		return errors.WithMessagef(err, "column %s", wire.Name)
	}
	c.Name = wire.Name
	c.Type = dataType
	c.Nullable = wire.Nullable
	c.PrimaryKey = wire.PrimaryKey
	c.Attributes = wire.Attributes
	c.Aliases = wire.Aliases
	switch {
	case wire.DefaultNull:
		c.Default = Null
	case wire.DefaultRaw != "":
		c.Default = Raw(wire.DefaultRaw)
	default:
		c.Default = wire.Default
	}
	return nil
}

func (c *Column) MarshalYAML() (any, error) {
	wireType, err := fromDataType(c.Type)
	if err != nil {
		return nil, errors.WithMessagef(err, "column %s", c.Name)
	}
	wire := &columnYAML{
		Name:       c.Name,
		Type:       *wireType,
		Nullable:   c.Nullable,
		PrimaryKey: c.PrimaryKey,
		Attributes: c.Attributes,
		Aliases:    c.Aliases,
	}
	switch v := c.Default.(type) {
	case nil:
	case nullValue:
		wire.DefaultNull = true
	case Raw:
		wire.DefaultRaw = string(v)
	default:
		wire.Default = v
	}
	return wire, nil
}

// LoadTable 从 YAML 数据中解析表描述符并做结构校验。
func LoadTable(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.WithMessage(err, "yaml.Unmarshal failed")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadTableFile 从 YAML 文件中解析表描述符。
func LoadTableFile(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s failed", filename)
	}
	return LoadTable(data)
}
