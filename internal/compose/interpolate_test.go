package compose

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestInterpolate_SubstitutesStrings(t *testing.T) {
	doc, err := Parse([]byte(`
services:
  web:
    image: nginx:${TAG}
    environment:
      MODE: ${MODE:-dev}
      PORT: 8080
    command: ["echo", "$GREETING"]
`))
	require.NoError(t, err)

	err = Interpolate(doc, mapLookup(map[string]string{"TAG": "1.25", "GREETING": "hi"}))
	require.NoError(t, err)

	web := doc.Section("services").Get("web")
	assert.Equal(t, "nginx:1.25", web.Get("image").String())
	assert.Equal(t, "dev", web.Get("environment").Get("MODE").String())
	assert.Equal(t, ScalarInt, web.Get("environment").Get("PORT").Type)
	assert.Equal(t, "echo,hi", web.Get("command").String())
}

func TestInterpolate_RequiredVariableError(t *testing.T) {
	doc, err := Parse([]byte(`
services:
  web:
    image: ${IMAGE:?image is required}
`))
	require.NoError(t, err)

	err = Interpolate(doc, mapLookup(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterpolation))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "services.web.image", parseErr.Field)
}

func TestInterpolate_EmptyDocument(t *testing.T) {
	assert.NoError(t, Interpolate(&Document{}, mapLookup(nil)))
	assert.NoError(t, Interpolate(nil, mapLookup(nil)))
}

func TestReadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("A=1\nB=2\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("B=3\n"), 0o644))

	env, err := ReadEnvFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "3"}, env)
}

func TestReadEnvFiles_Missing(t *testing.T) {
	_, err := ReadEnvFiles(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEnvFile))
}

func TestEnvLookup_ProcessEnvWins(t *testing.T) {
	t.Setenv("DECOMPOSERIZE_TEST_VAR", "from-env")
	lookup := EnvLookup(map[string]string{
		"DECOMPOSERIZE_TEST_VAR":   "from-file",
		"DECOMPOSERIZE_TEST_OTHER": "file-only",
	})

	v, ok := lookup("DECOMPOSERIZE_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)

	v, ok = lookup("DECOMPOSERIZE_TEST_OTHER")
	assert.True(t, ok)
	assert.Equal(t, "file-only", v)

	_, ok = lookup("DECOMPOSERIZE_TEST_UNSET_VAR")
	assert.False(t, ok)
}
