package ast

import (
	"encoding/json"
	"fmt"
)

// FromJSON parses a query written as nested JSON arrays — the wire form
// the CLI and any other JSON-speaking host accepts — into a Node.
//
// A JSON array decodes to a KindList node: its first element must be a
// JSON string (the operator), and the rest decode recursively as operand
// nodes. A JSON string, number or bool decodes to the matching leaf kind.
// null and JSON objects have no Node representation and are rejected.
func FromJSON(data []byte) (Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Node{}, fmt.Errorf("ast: parse query json: %w", err)
	}
	return fromAny(raw)
}

func fromAny(v any) (Node, error) {
	switch val := v.(type) {
	case string:
		return String(val), nil
	case float64:
		return Number(val), nil
	case bool:
		return Bool(val), nil
	case []any:
		if len(val) == 0 {
			return Node{}, fmt.Errorf("ast: empty list has no operator")
		}
		head, ok := val[0].(string)
		if !ok {
			return Node{}, fmt.Errorf("ast: list head must be a string operator, got %T", val[0])
		}
		tail := make([]Node, len(val)-1)
		for i, elem := range val[1:] {
			n, err := fromAny(elem)
			if err != nil {
				return Node{}, err
			}
			tail[i] = n
		}
		return List(head, tail...), nil
	default:
		return Node{}, fmt.Errorf("ast: unsupported json value of type %T", v)
	}
}

// ToJSON renders n back into the nested-array wire form FromJSON parses,
// the inverse of FromJSON.
func ToJSON(n Node) ([]byte, error) {
	return json.Marshal(toAny(n))
}

func toAny(n Node) any {
	switch n.Kind() {
	case KindString:
		return n.StringValue()
	case KindNumber:
		return n.NumberValue()
	case KindBool:
		return n.BoolValue()
	case KindList:
		out := make([]any, 0, len(n.Args())+1)
		out = append(out, n.Operator())
		for _, a := range n.Args() {
			out = append(out, toAny(a))
		}
		return out
	default:
		return nil
	}
}
