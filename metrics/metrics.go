// Package metrics exposes Prometheus instrumentation for the poll cycle.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	Polls        prometheus.Counter
	PollErrors   *prometheus.CounterVec // reason label: http_status|transport|decode
	PollDuration prometheus.Histogram

	UpcomingTrains prometheus.Gauge
	LastSuccess    prometheus.Gauge
	PollInterval   prometheus.Gauge // seconds
}

func NewCollector(pollInterval time.Duration) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Polls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arrivals_polls_total",
			Help: "Total poll cycles executed.",
		}),
		PollErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arrivals_poll_errors_total",
			Help: "Total poll cycles that published an error snapshot.",
		}, []string{"reason"}),
		PollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arrivals_poll_duration_seconds",
			Help:    "Duration of one fetch-decode-rank cycle.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		UpcomingTrains: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arrivals_upcoming_trains",
			Help: "Number of trains in the latest published snapshot.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arrivals_last_success_unixtime",
			Help: "Unix time of the last successful poll.",
		}),
		PollInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arrivals_poll_interval_seconds",
			Help: "Configured poll interval in seconds.",
		}),
	}

	reg.MustRegister(
		c.Polls, c.PollErrors, c.PollDuration,
		c.UpcomingTrains, c.LastSuccess, c.PollInterval,
	)

	c.PollInterval.Set(pollInterval.Seconds())

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
