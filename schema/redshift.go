package schema

// Redshift 类型的便捷构造函数，类型名和参数约定与 Redshift 文档一致。

func VarChar(length int) DataType {
	return StringType{Name: "varchar", Length: length}
}

func Char(length int) DataType {
	return StringType{Name: "char", Length: length}
}

func Decimal(precision int, scale int) DataType {
	return RealNumberType{Name: "decimal", Precision: precision, Scale: scale}
}

func SmallInt() DataType {
	return SimpleType{Name: "smallint"}
}

func Integer() DataType {
	return SimpleType{Name: "int"}
}

func BigInt() DataType {
	return SimpleType{Name: "bigint"}
}

func Real() DataType {
	return SimpleType{Name: "real"}
}

func Double() DataType {
	return SimpleType{Name: "double precision"}
}

func Boolean() DataType {
	return SimpleType{Name: "bool"}
}

func Date() DataType {
	return SimpleType{Name: "date"}
}

func Timestamp() DataType {
	return SimpleType{Name: "timestamp"}
}
