// SPDX-License-Identifier: MIT
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GenerationsTotal counts generated stylesheets by output shape
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twtheme_generations_total",
		Help: "Total theme stylesheets generated by shape",
	}, []string{"shape"})

	// GeneratedBytes tracks the size of the last stylesheet per shape
	GeneratedBytes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "twtheme_generated_bytes",
		Help: "Size of the most recent generated stylesheet by shape",
	}, []string{"shape"})

	// TransformsTotal counts CSS modules whose theme import was replaced
	TransformsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "twtheme_transforms_total",
		Help: "Total CSS modules rewritten with the theme",
	})

	// OverrideScanDuration tracks override scans
	OverrideScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "twtheme_override_scan_duration_seconds",
		Help:    "Time spent scanning stylesheets for static theme overrides",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	})

	// OverriddenColors is the size of the last override set
	OverriddenColors = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twtheme_overridden_colors",
		Help: "Palette colors overridden by the last scan",
	})

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twtheme_errors_total",
		Help: "Total errors by type",
	}, []string{"type"})

	// LiveReloadClients tracks connected live reload sockets
	LiveReloadClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twtheme_live_reload_clients",
		Help: "Current live reload websocket connections",
	})
)

// ObserveGeneration records one generated stylesheet.
func ObserveGeneration(shape string, css string) {
	GenerationsTotal.WithLabelValues(shape).Inc()
	GeneratedBytes.WithLabelValues(shape).Set(float64(len(css)))
}

// ObserveScan records an override scan that started at start.
func ObserveScan(start time.Time, found int) {
	OverrideScanDuration.Observe(time.Since(start).Seconds())
	OverriddenColors.Set(float64(found))
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
