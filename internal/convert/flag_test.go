package convert

import (
	"strings"
	"testing"

	"github.com/RevCBH/decomposerize/internal/mapping"
	"github.com/stretchr/testify/assert"
)

func TestFlagName(t *testing.T) {
	assert.Equal(t, "publish", flagName("publish/p", true))
	assert.Equal(t, "p", flagName("publish/p", false))
	assert.Equal(t, "restart", flagName("restart", true))
	assert.Equal(t, "restart", flagName("restart", false))
}

func TestFlagName_TableEntries(t *testing.T) {
	for _, e := range mapping.Table {
		if !strings.Contains(e.Names, "/") {
			continue
		}
		long, short := flagName(e.Names, true), flagName(e.Names, false)
		if long == short {
			t.Errorf("%s: expected distinct long and short names, got %q", e.Names, long)
		}
		if strings.Contains(long, "/") || strings.Contains(short, "/") {
			t.Errorf("%s: expected a single name, got %q and %q", e.Names, long, short)
		}
	}
}

func TestRenderFlag(t *testing.T) {
	tests := []struct {
		name  string
		names string
		value string
		opts  Options
		want  string
	}{
		{"short", "publish/p", "80:80", Options{ArgValueSeparator: " "}, "-p 80:80"},
		{"long", "publish/p", "80:80", Options{ArgValueSeparator: " ", LongArgs: true}, "--publish 80:80"},
		{"equals", "publish/p", "80:80", Options{ArgValueSeparator: "="}, "-p=80:80"},
		{"multi-letter short", "network/net", "host", Options{ArgValueSeparator: " "}, "--net host"},
		{"bare switch", "tty/t", "", Options{ArgValueSeparator: "="}, "-t"},
		{"single name", "cap-add", "NET_ADMIN", Options{ArgValueSeparator: " "}, "--cap-add NET_ADMIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderFlag(tt.names, tt.value, tt.opts))
		})
	}
}

func TestJoinCommand(t *testing.T) {
	opts := Options{}
	assert.Equal(t, "docker run -p 80:80 nginx", joinCommand("docker run", []string{"-p 80:80", "nginx"}, opts))
	assert.Equal(t, "docker run nginx", joinCommand("docker  run", []string{"", "nginx"}, opts))

	opts.Multiline = true
	assert.Equal(t, "docker run -t \\\n\tnginx", joinCommand("docker run", []string{"-t", "nginx"}, opts))
}
