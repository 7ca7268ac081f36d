package compose

import (
	"fmt"
	"os"
	"strconv"

	"github.com/compose-spec/compose-go/v2/template"
	"github.com/joho/godotenv"
)

// LookupFunc resolves a variable name for interpolation.
type LookupFunc func(name string) (string, bool)

// Interpolate expands ${VAR} style expressions in every string scalar of
// doc. Mapping keys are left as written.
func Interpolate(doc *Document, lookup LookupFunc) error {
	if doc == nil || doc.Root == nil {
		return nil
	}
	return interpolateNode(doc.Root, "", template.Mapping(lookup))
}

func interpolateNode(n *Node, path string, mapping template.Mapping) error {
	switch n.Shape {
	case ShapeScalar:
		if n.Type != ScalarString {
			return nil
		}
		out, err := template.Substitute(n.Value, mapping)
		if err != nil {
			return NewParseError(path, err.Error(), ErrInterpolation)
		}
		n.Value = out
	case ShapeSequence:
		for i, item := range n.Items {
			if err := interpolateNode(item, joinPath(path, "["+strconv.Itoa(i)+"]"), mapping); err != nil {
				return err
			}
		}
	case ShapeMapping:
		for _, f := range n.Fields {
			if err := interpolateNode(f.Value, joinPath(path, quoteKey(f.Key)), mapping); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(base, seg string) string {
	if base == "" {
		return seg
	}
	if seg != "" && seg[0] == '[' {
		return base + seg
	}
	return base + "." + seg
}

// ReadEnvFiles loads dotenv files in order; later files override earlier
// ones.
func ReadEnvFiles(files ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			return nil, NewParseError(file, err.Error(), fmt.Errorf("%w: %w", ErrEnvFile, err))
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	return env, nil
}

// EnvLookup resolves names from the process environment first, then from
// fallback.
func EnvLookup(fallback map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := fallback[name]
		return v, ok
	}
}
