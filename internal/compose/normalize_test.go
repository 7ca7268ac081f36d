package compose

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNormalized(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	Normalize(doc)
	return doc
}

func TestNormalize_LegacyLayout(t *testing.T) {
	doc := parseNormalized(t, `
web:
  image: nginx
  net: host
db:
  build: ./db
`)
	services := doc.Section("services")
	require.True(t, services.IsMapping(), spew.Sdump(doc))
	assert.Equal(t, []string{"web", "db"}, services.Keys())
	assert.Equal(t, "host", services.Get("web").Get("network_mode").String())
	assert.False(t, services.Get("web").Has("net"))
}

func TestNormalize_ModernLayoutUntouched(t *testing.T) {
	doc := parseNormalized(t, `
version: "3"
services:
  web:
    image: nginx
`)
	assert.Equal(t, []string{"version", "services"}, doc.Root.Keys())
}

func TestNormalize_NotLegacyWhenEntryLacksImage(t *testing.T) {
	doc := parseNormalized(t, `
web:
  image: nginx
x-extra:
  foo: bar
`)
	assert.Nil(t, doc.Section("services"))
}

func TestNormalize_NetKeepsExplicitNetworkMode(t *testing.T) {
	doc := parseNormalized(t, `
services:
  web:
    network_mode: bridge
    net: host
`)
	web := doc.Section("services").Get("web")
	assert.Equal(t, "bridge", web.Get("network_mode").String())
	assert.Equal(t, "host", web.Get("net").String())
}

func TestNormalize_LongSyntaxPorts(t *testing.T) {
	doc := parseNormalized(t, `
services:
  web:
    ports:
      - "80:80"
      - target: 8080
        published: 9090
      - target: 53
        published: "5353"
        protocol: udp
      - target: 443
        host_ip: 127.0.0.1
        published: 443
      - target: 22
        host_ip: 127.0.0.1
      - target: 3000
      - target: notaport
`)
	ports := doc.Section("services").Get("web").Get("ports")
	require.Equal(t, 7, ports.Len())

	got := make([]string, 0, ports.Len())
	for _, p := range ports.Items[:6] {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{
		"80:80",
		"9090:8080",
		"5353:53/udp",
		"127.0.0.1:443:443",
		"127.0.0.1::22",
		"3000",
	}, got)
	assert.True(t, ports.Items[6].IsMapping(), "invalid targets stay in long form")
}

func TestNormalize_NilDocument(t *testing.T) {
	Normalize(nil)
	Normalize(&Document{})
}
