package queryerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnqueryableFieldSortsAllowedFields(t *testing.T) {
	err := &UnqueryableField{Field: "bogus", Allowed: []string{"value", "certname", "name"}, Context: "facts"}
	assert.Equal(t, `field "bogus" is not queryable for facts; acceptable fields: certname, name, value`, err.Error())
}

func TestUnqueryableFieldWithoutContext(t *testing.T) {
	err := &UnqueryableField{Field: "bogus", Allowed: []string{"b", "a"}}
	assert.Equal(t, `field "bogus" is not queryable; acceptable fields: a, b`, err.Error())
}

func TestArityError(t *testing.T) {
	err := &Arity{Operator: "=", Want: 2, Got: 1}
	assert.Equal(t, "= requires 2 argument(s), got 1", err.Error())
}

func TestUnknownOperatorError(t *testing.T) {
	err := &UnknownOperator{Operator: "xor", Node: `["xor" "a" "b"]`}
	assert.Equal(t, `unknown operator "xor" in ["xor" "a" "b"]`, err.Error())
}

func TestUnsupportedInDialectError(t *testing.T) {
	err := &UnsupportedInDialect{Operator: "project", Dialect: "resource-v1"}
	assert.Equal(t, `operator "project" is not supported in dialect resource-v1`, err.Error())
}
