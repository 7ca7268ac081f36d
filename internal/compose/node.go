package compose

import (
	"strconv"
	"strings"
)

// Shape identifies which variant of Node is populated.
type Shape int

const (
	ShapeNull Shape = iota
	ShapeScalar
	ShapeSequence
	ShapeMapping
)

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeNull:
		return "null"
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// ScalarType records the YAML type a scalar was decoded as.
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarInt
	ScalarFloat
	ScalarBool
)

// Field is one ordered key/value pair of a mapping node.
type Field struct {
	Key   string
	Value *Node
}

// Node is one value of a normalized compose document.
//
// Exactly one variant is meaningful per Shape: Value and Type for scalars,
// Items for sequences, Fields for mappings. Mapping fields keep the order
// they had in the source text.
type Node struct {
	Shape  Shape
	Type   ScalarType
	Value  string
	Items  []*Node
	Fields []Field
}

// Null returns a null node.
func Null() *Node {
	return &Node{Shape: ShapeNull}
}

// Str returns a string scalar.
func Str(s string) *Node {
	return &Node{Shape: ShapeScalar, Type: ScalarString, Value: s}
}

// Int returns an integer scalar.
func Int(i int64) *Node {
	return &Node{Shape: ShapeScalar, Type: ScalarInt, Value: strconv.FormatInt(i, 10)}
}

// Float returns a float scalar in shortest decimal form.
func Float(f float64) *Node {
	return &Node{Shape: ShapeScalar, Type: ScalarFloat, Value: formatFloat(f)}
}

// Bool returns a boolean scalar.
func Bool(b bool) *Node {
	return &Node{Shape: ShapeScalar, Type: ScalarBool, Value: strconv.FormatBool(b)}
}

// Seq returns a sequence of the given items.
func Seq(items ...*Node) *Node {
	return &Node{Shape: ShapeSequence, Items: items}
}

// Map returns a mapping with the given fields in order.
func Map(fields ...Field) *Node {
	return &Node{Shape: ShapeMapping, Fields: fields}
}

// F is shorthand for building a Field.
func F(key string, value *Node) Field {
	return Field{Key: key, Value: value}
}

// IsNull reports whether n is absent or an explicit null.
func (n *Node) IsNull() bool {
	return n == nil || n.Shape == ShapeNull
}

// IsScalar reports whether n is a scalar.
func (n *Node) IsScalar() bool {
	return n != nil && n.Shape == ShapeScalar
}

// IsSequence reports whether n is a sequence.
func (n *Node) IsSequence() bool {
	return n != nil && n.Shape == ShapeSequence
}

// IsMapping reports whether n is a mapping.
func (n *Node) IsMapping() bool {
	return n != nil && n.Shape == ShapeMapping
}

// IsString reports whether n is a scalar decoded as a YAML string.
func (n *Node) IsString() bool {
	return n.IsScalar() && n.Type == ScalarString
}

// Get returns the value stored under key. Sequences accept a decimal index.
// It returns nil when the key is absent or n is not a container.
func (n *Node) Get(key string) *Node {
	if n == nil {
		return nil
	}
	switch n.Shape {
	case ShapeMapping:
		for _, f := range n.Fields {
			if f.Key == key {
				return f.Value
			}
		}
	case ShapeSequence:
		i, err := strconv.Atoi(key)
		if err == nil && i >= 0 && i < len(n.Items) {
			return n.Items[i]
		}
	}
	return nil
}

// Has reports whether a mapping carries key, even with a null value.
func (n *Node) Has(key string) bool {
	if !n.IsMapping() {
		return false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Set replaces the value under key, or appends a new field.
func (n *Node) Set(key string, value *Node) {
	for i := range n.Fields {
		if n.Fields[i].Key == key {
			n.Fields[i].Value = value
			return
		}
	}
	n.Fields = append(n.Fields, Field{Key: key, Value: value})
}

// Rename changes a key in place, keeping its position.
func (n *Node) Rename(from, to string) bool {
	if !n.IsMapping() {
		return false
	}
	for i := range n.Fields {
		if n.Fields[i].Key == from {
			n.Fields[i].Key = to
			return true
		}
	}
	return false
}

// Keys returns the mapping keys in order.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Entries returns the key/value pairs of a container. Sequence keys are the
// element indexes.
func (n *Node) Entries() []Field {
	if n == nil {
		return nil
	}
	switch n.Shape {
	case ShapeMapping:
		return n.Fields
	case ShapeSequence:
		out := make([]Field, len(n.Items))
		for i, item := range n.Items {
			out[i] = Field{Key: strconv.Itoa(i), Value: item}
		}
		return out
	}
	return nil
}

// First returns the first value of a container regardless of its key.
func (n *Node) First() *Node {
	if n == nil {
		return nil
	}
	switch n.Shape {
	case ShapeMapping:
		if len(n.Fields) > 0 {
			return n.Fields[0].Value
		}
	case ShapeSequence:
		if len(n.Items) > 0 {
			return n.Items[0]
		}
	}
	return nil
}

// Len returns the number of elements or fields.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Shape {
	case ShapeMapping:
		return len(n.Fields)
	case ShapeSequence:
		return len(n.Items)
	}
	return 0
}

// Truthy reports whether the value counts as set. Null, false, numeric zero
// and the empty string are not; every sequence and mapping is, even empty.
func (n *Node) Truthy() bool {
	if n == nil {
		return false
	}
	switch n.Shape {
	case ShapeNull:
		return false
	case ShapeSequence, ShapeMapping:
		return true
	}
	switch n.Type {
	case ScalarBool:
		return n.Value == "true"
	case ScalarInt, ScalarFloat:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return n.Value != ""
		}
		return f != 0
	default:
		return n.Value != ""
	}
}

// String renders the value as text. Sequences join their elements with a
// comma and mappings render as comma-joined key=value pairs.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	switch n.Shape {
	case ShapeNull:
		return "null"
	case ShapeScalar:
		return n.Value
	case ShapeSequence:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			if item.IsNull() {
				continue
			}
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case ShapeMapping:
		parts := make([]string, 0, len(n.Fields))
		for _, f := range n.Fields {
			parts = append(parts, f.Key+"="+f.Value.String())
		}
		return strings.Join(parts, ",")
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
