package mapping

import "strings"

// Entry maps one run flag onto a path inside a service definition.
type Entry struct {
	// Names is the flag name, or "long/short" when both forms exist.
	Names string
	Kind  Kind
	// Path is slash-separated and rooted at the service.
	Path string
}

// Long returns the long flag name.
func (e Entry) Long() string {
	long, _, _ := strings.Cut(e.Names, "/")
	return long
}

// Short returns the short flag name, or the long one when there is none.
func (e Entry) Short() string {
	if _, short, ok := strings.Cut(e.Names, "/"); ok {
		return short
	}
	return e.Names
}

// Root returns the first path segment, the service key the entry reads.
func (e Entry) Root() string {
	root, _, _ := strings.Cut(e.Path, "/")
	return root
}

// Table is the run flag mapping in emission order. Flags for one service key
// come out in the order listed here.
var Table = []Entry{
	{"add-host", Array, "extra_hosts"},
	{"blkio-weight", IntValue, "blkio_config/weight"},
	{"blkio-weight-device", DeviceBlockIOConfigWeight, "blkio_config/weight_device"},
	{"cap-add", Array, "cap_add"},
	{"cap-drop", Array, "cap_drop"},
	{"cgroup-parent", Value, "cgroup_parent"},
	{"cgroupns", Value, "cgroup"},
	{"cpu-period", Value, "cpu_period"},
	{"cpu-quota", Value, "cpu_quota"},
	{"cpu-rt-period", Value, "cpu_rt_period"},
	{"cpu-rt-runtime", Value, "cpu_rt_runtime"},
	{"cpu-shares/c", IntValue, "cpu_shares"},
	{"cpus", FloatValue, "deploy/resources/limits/cpus"},
	{"cpuset-cpus", Value, "cpuset"},
	{"device", Array, "devices"},
	{"device-cgroup-rule", Array, "device_cgroup_rules"},
	{"device-read-bps", DeviceBlockIOConfigRate, "blkio_config/device_read_bps"},
	{"device-read-iops", DeviceBlockIOConfigRate, "blkio_config/device_read_iops"},
	{"device-write-bps", DeviceBlockIOConfigRate, "blkio_config/device_write_bps"},
	{"device-write-iops", DeviceBlockIOConfigRate, "blkio_config/device_write_iops"},
	{"dns", Array, "dns"},
	{"dns-option", Array, "dns_opt"},
	{"dns-search", Array, "dns_search"},
	{"domainname", Value, "domainname"},
	{"entrypoint", Array, "entrypoint"},
	{"env-file", Array, "env_file"},
	{"env/e", ArrayAutoRepair, "environment"},
	{"expose", Array, "expose"},
	{"group-add", Array, "group_add"},
	{"health-cmd", Value, "healthcheck/test"},
	{"health-interval", Value, "healthcheck/interval"},
	{"health-retries", Value, "healthcheck/retries"},
	{"health-start-period", Value, "healthcheck/start_period"},
	{"health-timeout", Value, "healthcheck/timeout"},
	{"hostname/h", Value, "hostname"},
	{"init", Switch, "init"},
	{"interactive/i", Switch, "stdin_open"},
	{"ip", Value, "networks/:first:/ipv4_address"},
	{"ip6", Value, "networks/:first:/ipv6_address"},
	{"ipc", Value, "ipc"},
	{"isolation", Value, "isolation"},
	{"label/l", ArrayAutoRepair, "labels"},
	{"link", Array, "links"},
	{"link-local-ip", Array, "networks/:first:/link_local_ips"},
	{"log-driver", Value, "logging/driver"},
	{"log-opt", Array, "logging/options"},
	{"mac-address", Value, "mac_address"},
	{"memory/m", Value, "deploy/resources/limits/memory"},
	{"memory-reservation", Value, "deploy/resources/reservations/memory"},
	{"memory-swap", Value, "memswap_limit"},
	{"memory-swappiness", Value, "mem_swappiness"},
	{"mount", MapArray, "volumes"},
	{"name", Value, "container_name"},
	{"network/net", Networks, "network_mode"},
	{"network/net", Networks, "networks"},
	{"network-alias", Array, "networks/:first:/aliases"},
	{"no-healthcheck", Switch, "healthcheck/disable"},
	{"oom-kill-disable", Switch, "oom_kill_disable"},
	{"oom-score-adj", Value, "oom_score_adj"},
	{"pid", Value, "pid"},
	{"pids-limit", IntValue, "deploy/resources/limits/pids"},
	{"platform", Value, "platform"},
	{"privileged", Switch, "privileged"},
	{"publish/p", Array, "ports"},
	{"pull", Value, "pull_policy"},
	{"read-only", Switch, "read_only"},
	{"restart", Value, "restart"},
	{"runtime", Value, "runtime"},
	{"security-opt", Array, "security_opt"},
	{"shm-size", Value, "shm_size"},
	{"stop-signal", Value, "stop_signal"},
	{"stop-timeout", Value, "stop_grace_period"},
	{"storage-opt", Map, "storage_opt"},
	{"sysctl", ArrayAutoRepair, "sysctls"},
	{"tmpfs", Array, "tmpfs"},
	{"tty/t", Switch, "tty"},
	{"ulimit", Ulimits, "ulimits"},
	{"user/u", Value, "user"},
	{"userns", Value, "userns_mode"},
	{"uts", Value, "uts"},
	{"volume/v", Array, "volumes"},
	{"volumes-from", Array, "volumes_from"},
	{"workdir/w", Value, "working_dir"},
}
