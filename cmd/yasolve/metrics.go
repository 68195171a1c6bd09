package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/lemaire-dev/yasolve/internal/search"
)

var (
	conflictsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "yasolve_conflicts_total",
		Help: "Conflicts encountered by the current or most recent solve.",
	})
	restartsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "yasolve_restarts_total",
		Help: "Full restarts performed by the current or most recent solve.",
	})
	decisionsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "yasolve_decisions_total",
		Help: "Decisions made by the current or most recent solve.",
	})
)

func init() {
	prometheus.MustRegister(conflictsTotal, restartsTotal, decisionsTotal)
}

// recordMetrics mirrors a Stats snapshot onto the registered gauges.
func recordMetrics(st search.Stats) {
	conflictsTotal.Set(float64(st.Conflicts))
	restartsTotal.Set(float64(st.Restarts))
	decisionsTotal.Set(float64(st.Decisions))
}

// serveMetrics starts a Prometheus /metrics endpoint on addr and returns a
// function the caller should defer to shut it down.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warnf("metrics server stopped: %s", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
}
