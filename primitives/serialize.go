package primitives

import "gorm.io/datatypes"

// serializeJSON implements the §6.1 `serialize` hook shared by every
// backend: strings pass through untouched (the common case — most
// resource parameter values and all tag/column comparisons are already
// strings), everything else is marshaled through gorm's datatypes.JSON so
// non-scalar operand values (numbers, booleans, and anything a future
// query-AST literal adds) still bind as a single scalar parameter the way
// resource_params.value is stored — JSON text, the representation of
// schema.ResourceParam's Value column.
func serializeJSON(value any) any {
	if s, ok := value.(string); ok {
		return s
	}
	j, err := datatypes.NewJSONType(value).MarshalJSON()
	if err != nil {
		// Values reaching here are always ast.Node.RawValue() results —
		// strings, float64s, or bools — none of which datatypes.JSONType
		// can fail to marshal; this branch exists only to satisfy the
		// error return and documents that invariant.
		return ""
	}
	return string(j)
}
