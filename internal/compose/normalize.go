package compose

import (
	"github.com/docker/go-connections/nat"
)

// Normalize brings a parsed document to the common compose layout the
// converter expects. It mutates doc in place.
//
//   - legacy (v1) files, where services sit at the top level, are wrapped
//     under a "services" key
//   - the v1 "net" service key becomes "network_mode"
//   - long-syntax port entries are rewritten to the short string form
func Normalize(doc *Document) {
	if doc == nil || doc.Root == nil {
		return
	}
	if isLegacyLayout(doc.Root) {
		doc.Root = Map(F("services", doc.Root))
	}

	services := doc.Root.Get("services")
	if !services.IsMapping() {
		return
	}
	for _, f := range services.Fields {
		svc := f.Value
		if !svc.IsMapping() {
			continue
		}
		if !svc.Has("network_mode") {
			svc.Rename("net", "network_mode")
		}
		if ports := svc.Get("ports"); ports.IsSequence() {
			for i, p := range ports.Items {
				if short, ok := shortPort(p); ok {
					ports.Items[i] = Str(short)
				}
			}
		}
	}
}

// isLegacyLayout reports whether the top level looks like a v1 file: no
// services or version key, and every entry a service definition.
func isLegacyLayout(root *Node) bool {
	if !root.IsMapping() || len(root.Fields) == 0 {
		return false
	}
	if root.Has("services") || root.Has("version") {
		return false
	}
	for _, f := range root.Fields {
		if !f.Value.IsMapping() {
			return false
		}
		if !f.Value.Has("image") && !f.Value.Has("build") {
			return false
		}
	}
	return true
}

// shortPort converts a long-syntax port mapping into
// [host_ip:][published:]target[/protocol]. Entries without a valid target
// are left untouched.
func shortPort(p *Node) (string, bool) {
	if !p.IsMapping() {
		return "", false
	}
	target := p.Get("target")
	if !target.IsScalar() {
		return "", false
	}

	proto := "tcp"
	if v := p.Get("protocol"); v.Truthy() {
		proto = v.String()
	}
	port, err := nat.NewPort(proto, target.String())
	if err != nil {
		return "", false
	}

	s := port.Port()
	published := p.Get("published")
	hostIP := p.Get("host_ip")
	switch {
	case published.Truthy() && hostIP.Truthy():
		s = hostIP.String() + ":" + published.String() + ":" + s
	case published.Truthy():
		s = published.String() + ":" + s
	case hostIP.Truthy():
		s = hostIP.String() + "::" + s
	}
	if port.Proto() != "tcp" {
		s += "/" + port.Proto()
	}
	return s, true
}
