package convert

import (
	"github.com/RevCBH/decomposerize/internal/compose"
	"github.com/RevCBH/decomposerize/internal/mapping"
)

// pairs renders a key/value section such as labels or driver_opts. Mapping
// entries become key=value; list entries are taken as already formatted.
func pairs(n *compose.Node) []string {
	switch {
	case n.IsMapping():
		out := make([]string, 0, len(n.Fields))
		for _, f := range n.Fields {
			if f.Key == "" {
				out = append(out, mapping.Quote(f.Value.String()))
				continue
			}
			out = append(out, f.Key+"="+mapping.Quote(f.Value.String()))
		}
		return out
	case n.IsSequence():
		out := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			if item.IsNull() {
				continue
			}
			out = append(out, mapping.Quote(item.String()))
		}
		return out
	}
	return nil
}

// isTrue reports whether n is the YAML boolean true.
func isTrue(n *compose.Node) bool {
	return n.IsScalar() && n.Type == compose.ScalarBool && n.Value == "true"
}

// displayName is the engine-side name of a network or volume: an external
// name override, then an explicit name, then the compose key.
func displayName(key string, n *compose.Node) string {
	if ext := compose.Resolve("external/name", n); ext.Truthy() {
		return ext.String()
	}
	if name := n.Get("name"); name.Truthy() {
		return name.String()
	}
	return key
}

// Network and volume create flags are always spelled in long form.

func networkCommand(key string, net *compose.Node, opts Options) string {
	a := &args{opts: opts}
	if net.IsMapping() {
		if driver := net.Get("driver"); driver.Truthy() {
			a.flag("driver", driver.String())
		}
		if isTrue(net.Get("attachable")) {
			a.flag("attachable", "")
		}
		if isTrue(net.Get("enable_ipv6")) {
			a.flag("ipv6", "")
		}
		if isTrue(net.Get("internal")) {
			a.flag("internal", "")
		}

		if ipam := net.Get("ipam"); ipam.IsMapping() {
			if driver := ipam.Get("driver"); driver.Truthy() {
				a.flag("ipam-driver", driver.String())
			}
			for _, opt := range pairs(ipam.Get("options")) {
				a.flag("ipam-opt", opt)
			}
			if configs := ipam.Get("config"); configs.IsSequence() {
				for _, c := range configs.Items {
					if !c.IsMapping() {
						continue
					}
					if v := c.Get("subnet"); v.Truthy() {
						a.flag("subnet", v.String())
					}
					if v := c.Get("ip_range"); v.Truthy() {
						a.flag("ip-range", v.String())
					}
					if v := c.Get("gateway"); v.Truthy() {
						a.flag("gateway", v.String())
					}
					for _, aux := range pairs(c.Get("aux_addresses")) {
						a.flag("aux-address", aux)
					}
				}
			}
		}

		for _, opt := range pairs(net.Get("driver_opts")) {
			a.flag("opt", opt)
		}
		for _, label := range pairs(net.Get("labels")) {
			a.flag("label", label)
		}
	}

	a.raw(displayName(key, net))
	return a.line(opts.Engine + " network create")
}

func volumeCommand(key string, vol *compose.Node, opts Options) string {
	a := &args{opts: opts}
	if vol.IsMapping() {
		if driver := vol.Get("driver"); driver.Truthy() {
			a.flag("driver", driver.String())
		}
		for _, opt := range pairs(vol.Get("driver_opts")) {
			a.flag("opt", opt)
		}
		for _, label := range pairs(vol.Get("labels")) {
			a.flag("label", label)
		}
	}

	a.raw(displayName(key, vol))
	return a.line(opts.Engine + " volume create")
}

// buildCommand renders the build command for a service with a build
// section. The second result is false when there is nothing to build.
func buildCommand(name string, svc *compose.Node, opts Options) (string, bool) {
	build := svc.Get("build")
	if !build.Truthy() {
		return "", false
	}

	a := &args{opts: opts}
	a.flag("tag/t", imageName(name, svc))

	context := "."
	switch {
	case build.IsScalar():
		context = build.String()
	case build.IsMapping():
		if v := build.Get("context"); v.Truthy() {
			context = v.String()
		}
		if v := build.Get("dockerfile"); v.Truthy() {
			a.flag("file/f", mapping.Quote(v.String()))
		}
		for _, arg := range pairs(build.Get("args")) {
			a.flag("build-arg", arg)
		}
		if v := build.Get("target"); v.Truthy() {
			a.flag("target", v.String())
		}
		for _, label := range pairs(build.Get("labels")) {
			a.flag("label", label)
		}
		for _, from := range pairs(build.Get("cache_from")) {
			a.flag("cache-from", from)
		}
		for _, host := range pairs(build.Get("extra_hosts")) {
			a.flag("add-host", host)
		}
		if v := build.Get("network"); v.Truthy() {
			a.flag("network", v.String())
		}
	}

	a.raw(mapping.Quote(context))
	return a.line(opts.Engine + " build"), true
}

// containerName is the name a run command gives the container.
func containerName(key string, svc *compose.Node) string {
	if name := svc.Get("container_name"); name.Truthy() {
		return name.String()
	}
	return key
}
