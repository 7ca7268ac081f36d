package mapping

import (
	"regexp"
	"strings"

	"github.com/RevCBH/decomposerize/internal/compose"
)

var needsQuoting = regexp.MustCompile(`[\s"]`)

// Quote wraps s in double quotes when it contains whitespace or a double
// quote, escaping every embedded quote. Other strings pass through.
func Quote(s string) string {
	if !needsQuoting.MatchString(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Render turns the value resolved for an entry into flag value tokens, one
// flag per token. An empty token means a bare flag with no value.
func Render(k Kind, n *compose.Node) []string {
	switch k {
	case Value:
		return []string{Quote(n.String())}
	case IntValue, FloatValue:
		return []string{n.String()}
	case Switch:
		if n.String() == "true" {
			return []string{""}
		}
		return nil
	case Array:
		return renderArray(n, false)
	case ArrayAutoRepair:
		return renderArray(n, true)
	case Map:
		return renderMap(n)
	case MapArray:
		return renderMapArray(n)
	case Ulimits:
		return renderUlimits(n)
	case DeviceBlockIOConfigRate:
		return renderDeviceIO(n, "rate")
	case DeviceBlockIOConfigWeight:
		return renderDeviceIO(n, "weight")
	case Networks:
		return nil
	default:
		return nil
	}
}

// keyValue renders one mapping entry as key=value, or key alone when the
// value is null.
func keyValue(key string, v *compose.Node) string {
	if v.IsNull() {
		return key
	}
	return key + "=" + Quote(v.String())
}

// renderArray handles the list-like kinds. A bare scalar is a single token,
// a mapping yields one key=value per entry, and a sequence yields one token
// per scalar element. Mapping elements of a sequence are expanded when they
// hold a single entry; multi-entry ones are long-syntax records belonging to
// another flag and are skipped, unless repair is set.
func renderArray(n *compose.Node, repair bool) []string {
	if n == nil {
		return nil
	}
	switch n.Shape {
	case compose.ShapeScalar:
		return []string{Quote(n.String())}
	case compose.ShapeMapping:
		out := make([]string, 0, len(n.Fields))
		for _, f := range n.Fields {
			out = append(out, keyValue(f.Key, f.Value))
		}
		return out
	case compose.ShapeSequence:
		var out []string
		for _, item := range n.Items {
			switch {
			case item.IsNull():
				continue
			case item.IsMapping():
				if !repair && item.Len() != 1 {
					continue
				}
				for _, f := range item.Fields {
					out = append(out, keyValue(f.Key, f.Value))
				}
			default:
				s := Quote(item.String())
				if repair && !strings.Contains(s, "=") {
					s = strings.Replace(s, ":", "=", 1)
				}
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func renderMap(n *compose.Node) []string {
	entries := n.Entries()
	if len(entries) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(entries))
	for _, f := range entries {
		pairs = append(pairs, f.Key+"="+Quote(f.Value.String()))
	}
	return []string{strings.Join(pairs, ",")}
}

func renderMapArray(n *compose.Node) []string {
	if !n.IsSequence() {
		return nil
	}
	var out []string
	for _, item := range n.Items {
		if !item.IsMapping() {
			continue
		}
		out = append(out, strings.Join(flattenPairs("", item), ","))
	}
	return out
}

// flattenPairs renders nested records the way mount options are spelled:
// {bind: {propagation: x}} becomes bind-propagation=x.
func flattenPairs(prefix string, m *compose.Node) []string {
	var pairs []string
	for _, f := range m.Fields {
		key := f.Key
		if key == "read_only" {
			key = "readonly"
		}
		if prefix != "" {
			key = prefix + "-" + key
		}
		if f.Value.IsMapping() {
			pairs = append(pairs, flattenPairs(key, f.Value)...)
			continue
		}
		pairs = append(pairs, keyValue(key, f.Value))
	}
	return pairs
}

func renderUlimits(n *compose.Node) []string {
	if !n.IsMapping() {
		return nil
	}
	out := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		v := f.Value
		if !v.IsMapping() {
			out = append(out, f.Key+"="+v.String())
			continue
		}
		soft, hard := v.Get("soft"), v.Get("hard")
		switch {
		case soft.Truthy() && hard.Truthy():
			out = append(out, f.Key+"="+soft.String()+":"+hard.String())
		case soft.Truthy():
			out = append(out, f.Key+"="+soft.String())
		case hard.Truthy():
			out = append(out, f.Key+"="+hard.String())
		}
	}
	return out
}

func renderDeviceIO(n *compose.Node, field string) []string {
	if !n.IsSequence() {
		return nil
	}
	var out []string
	for _, item := range n.Items {
		if !item.IsMapping() {
			continue
		}
		out = append(out, item.Get("path").String()+":"+item.Get(field).String())
	}
	return out
}
