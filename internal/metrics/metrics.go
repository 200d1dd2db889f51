// Package metrics exposes the node's Prometheus instrumentation: request
// counts per HTTP route and outcome, and coordinator quorum outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequestsTotal counts every HTTP request handled by the node's router,
// labeled by route and final status class.
var HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spalhad_http_requests_total",
	Help: "Total HTTP requests handled, by route and status class.",
}, []string{"route", "status"})

// ReadConsensusTotal counts coordinator Get outcomes.
var ReadConsensusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spalhad_read_consensus_total",
	Help: "Coordinator read quorum outcomes.",
}, []string{"result"})

// WriteConsensusTotal counts coordinator Put outcomes.
var WriteConsensusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spalhad_write_consensus_total",
	Help: "Coordinator write quorum outcomes.",
}, []string{"result"})

// Handler serves the Prometheus exposition format for the default
// registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
