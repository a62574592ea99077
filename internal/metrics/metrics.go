// Package metrics provides the prometheus instruments for the tool
// dispatcher and the handler that serves them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultPath is where the server mounts Handler.
const DefaultPath = "/metrics"

// Metrics is the struct that holds the tool call instruments. Run Init() on
// it. Each Metrics owns its own registry, so several may coexist in one
// process.
type Metrics struct {
	registry *prometheus.Registry

	toolCallTotal    *prometheus.CounterVec   // total of tool calls, by tool and outcome
	toolCallDuration *prometheus.HistogramVec // time spent in each tool
	nodesDecoded     prometheus.Counter       // distinct nodes in decoded expression params
	startTimeSeconds prometheus.Gauge         // process start time in seconds since unix epoch
}

// Init creates and registers the instruments.
func (obj *Metrics) Init() error {
	obj.registry = prometheus.NewRegistry()

	obj.toolCallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "symgraph_tool_calls_total",
			Help: "Number of tool calls that have run.",
		},
		// tool: requested tool name, "unknown" if it is not one we serve
		// errorful: did the call return an error
		[]string{"tool", "errorful"},
	)
	obj.toolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "symgraph_tool_call_duration_seconds",
			Help:    "Time spent handling a tool call.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"tool"},
	)
	obj.nodesDecoded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "symgraph_nodes_decoded_total",
			Help: "Number of distinct nodes built from expression params.",
		},
	)
	obj.startTimeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "symgraph_process_start_time_seconds",
			Help: "Start time of the process since unix epoch in seconds.",
		},
	)
	for _, c := range []prometheus.Collector{obj.toolCallTotal, obj.toolCallDuration, obj.nodesDecoded, obj.startTimeSeconds} {
		if err := obj.registry.Register(c); err != nil {
			return err
		}
	}
	obj.startTimeSeconds.SetToCurrentTime()
	return nil
}

// Registry exposes the private registry, mostly for tests.
func (obj *Metrics) Registry() *prometheus.Registry { return obj.registry }

// Handler serves the registry in the prometheus exposition format.
func (obj *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(obj.registry, promhttp.HandlerOpts{})
}

// UpdateToolCallTotal records one finished tool call.
func (obj *Metrics) UpdateToolCallTotal(tool string, errorful bool, elapsed time.Duration) {
	labels := prometheus.Labels{"tool": tool, "errorful": strconv.FormatBool(errorful)}
	obj.toolCallTotal.With(labels).Inc()
	obj.toolCallDuration.With(prometheus.Labels{"tool": tool}).Observe(elapsed.Seconds())
}

// AddNodesDecoded counts nodes built while decoding params.
func (obj *Metrics) AddNodesDecoded(n int) {
	obj.nodesDecoded.Add(float64(n))
}
