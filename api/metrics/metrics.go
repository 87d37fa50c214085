// Package metrics provides Prometheus metrics for envpage.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolve results
const (
	ResultOK      = "ok"
	ResultMissing = "missing"
)

// Render surfaces
const (
	SurfaceDocument = "document"
	SurfaceFragment = "fragment"
	SurfaceScript   = "script"
)

var (
	// ConfigResolveTotal counts TEST_ENV_VALUE resolutions by result.
	ConfigResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envpage_config_resolve_total",
		Help: "Total number of configuration resolutions, by result (ok/missing).",
	}, []string{"result"})

	// RenderTotal counts successful renders by surface.
	RenderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envpage_render_total",
		Help: "Total number of page renders, by surface.",
	}, []string{"surface"})

	// RenderErrorTotal counts failed renders by surface.
	RenderErrorTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envpage_render_error_total",
		Help: "Total number of failed page renders, by surface.",
	}, []string{"surface"})
)
