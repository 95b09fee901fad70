package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type RegistryOptions struct {
	// Runtime adds the go runtime and process collectors
	Runtime   bool
	BuildInfo bool
	// ConstLabels are attached to every engine metric, e.g. the environment
	ConstLabels prometheus.Labels
}

// NewRegistry creates the registry served on the metrics listener. The returned
// registerer is the one to hand to NewManager.
func NewRegistry(opts RegistryOptions) (*prometheus.Registry, prometheus.Registerer) {
	promRegistry := prometheus.NewRegistry()

	if opts.BuildInfo {
		promRegistry.MustRegister(collectors.NewBuildInfoCollector())
	}
	if opts.Runtime {
		promRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if len(opts.ConstLabels) == 0 {
		return promRegistry, promRegistry
	}
	return promRegistry, prometheus.WrapRegistererWith(opts.ConstLabels, promRegistry)
}
