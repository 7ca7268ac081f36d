// Package compose holds the normalized compose document tree and the
// functions that build it from YAML text. Nothing in this package does I/O
// except ReadEnvFiles.
package compose

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

const mergeKey = "<<"

// Alias expansion limits, matching the ratio yaml.v3 applies when decoding
// into Go values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= aliasRatioRangeLow:
		return 0.99
	case decodeCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-aliasRatioRangeLow)/aliasRatioRange)
	}
}

// Document is a parsed compose file. Root is nil for empty input.
type Document struct {
	Root *Node
}

// Section returns a top-level section such as "services", or nil.
func (d *Document) Section(name string) *Node {
	if d == nil {
		return nil
	}
	return d.Root.Get(name)
}

// Parse decodes compose YAML into an ordered document tree. Anchors, aliases
// and merge keys are resolved. Empty input yields an empty document.
func Parse(src []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, NewParseError("", err.Error(), ErrInvalidYAML)
	}

	doc := &Document{}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		var c converter
		n, err := c.node(root.Content[0])
		if err != nil {
			return nil, err
		}
		doc.Root = n
	}
	return doc, nil
}

// converter turns yaml.v3 nodes into Nodes, counting how many it builds so
// that nested aliases cannot expand without bound.
type converter struct {
	decodeCount int
	aliasCount  int
	aliasDepth  int
}

func (c *converter) node(y *yaml.Node) (*Node, error) {
	c.decodeCount++
	if c.aliasDepth > 0 {
		c.aliasCount++
	}
	if c.aliasCount > 100 && c.decodeCount > 1000 &&
		float64(c.aliasCount)/float64(c.decodeCount) > allowedAliasRatio(c.decodeCount) {
		return nil, NewParseError("", "document contains excessive aliasing", ErrInvalidYAML)
	}

	switch y.Kind {
	case yaml.AliasNode:
		c.aliasDepth++
		n, err := c.node(y.Alias)
		c.aliasDepth--
		return n, err
	case yaml.ScalarNode:
		return convertScalar(y)
	case yaml.SequenceNode:
		seq := &Node{Shape: ShapeSequence, Items: make([]*Node, 0, len(y.Content))}
		for _, child := range y.Content {
			item, err := c.node(child)
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, item)
		}
		return seq, nil
	case yaml.MappingNode:
		return c.mapping(y)
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return Null(), nil
		}
		return c.node(y.Content[0])
	}
	return Null(), nil
}

func (c *converter) mapping(y *yaml.Node) (*Node, error) {
	explicit := make(map[string]bool, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		if k := y.Content[i]; k.Value != mergeKey || k.ShortTag() != "!!merge" {
			explicit[k.Value] = true
		}
	}

	m := &Node{Shape: ShapeMapping}
	seen := make(map[string]bool, len(explicit))
	for i := 0; i+1 < len(y.Content); i += 2 {
		key, val := y.Content[i], y.Content[i+1]
		if key.Value == mergeKey && key.ShortTag() == "!!merge" {
			merged, err := c.mergeSources(val)
			if err != nil {
				return nil, err
			}
			for _, f := range merged {
				if explicit[f.Key] || seen[f.Key] {
					continue
				}
				seen[f.Key] = true
				m.Fields = append(m.Fields, f)
			}
			continue
		}

		v, err := c.node(val)
		if err != nil {
			return nil, err
		}
		if seen[key.Value] {
			m.Set(key.Value, v)
			continue
		}
		seen[key.Value] = true
		m.Fields = append(m.Fields, Field{Key: key.Value, Value: v})
	}
	return m, nil
}

// mergeSources expands the value of a "<<" key: a mapping or a sequence of
// mappings, earlier mappings taking precedence.
func (c *converter) mergeSources(val *yaml.Node) ([]Field, error) {
	src, err := c.node(val)
	if err != nil {
		return nil, err
	}
	var out []Field
	seen := map[string]bool{}
	add := func(m *Node) {
		for _, f := range m.Fields {
			if !seen[f.Key] {
				seen[f.Key] = true
				out = append(out, f)
			}
		}
	}
	switch {
	case src.IsMapping():
		add(src)
	case src.IsSequence():
		for _, item := range src.Items {
			if item.IsMapping() {
				add(item)
			}
		}
	}
	return out, nil
}

func convertScalar(y *yaml.Node) (*Node, error) {
	switch y.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return Str(y.Value), nil
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := y.Decode(&i); err != nil {
			return &Node{Shape: ShapeScalar, Type: ScalarInt, Value: y.Value}, nil
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := y.Decode(&f); err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return &Node{Shape: ShapeScalar, Type: ScalarFloat, Value: y.Value}, nil
		}
		return Float(f), nil
	default:
		return Str(y.Value), nil
	}
}

// quoteKey formats a path segment for error messages.
func quoteKey(k string) string {
	for _, r := range k {
		if r == '.' || r == ' ' {
			return strconv.Quote(k)
		}
	}
	return k
}
