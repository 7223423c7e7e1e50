package schema

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// Validate 校验描述符的结构完整性：表名非空、至少一列、列名和类型齐全、
// 列名在表内唯一。规划器假定输入已通过校验。
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("table is nil")
	}
	if err := validate.Struct(t); err != nil {
		return errors.WithMessage(err, "invalid table descriptor")
	}
	seen := make(map[string]struct{}, len(t.Columns))
	for _, column := range t.Columns {
		if _, ok := seen[column.Name]; ok {
			return errors.Errorf("duplicate column name %s in table %s", column.Name, t.Name)
		}
		seen[column.Name] = struct{}{}
	}
	return nil
}
