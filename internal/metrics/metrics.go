package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "inotes",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Auth metrics

	RegistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "registrations_total",
		Help:      "Total successful registrations.",
	})

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	}, []string{"outcome"})

	EmailsSentTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "emails_sent_total",
		Help:      "Total outbound emails, by outcome.",
	}, []string{"outcome"})

	// Sweep metrics

	SessionsSweptTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "sessions_swept_total",
		Help:      "Total expired sessions removed by sweeps.",
	})

	ResetTokensSweptTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "inotes",
		Name:      "reset_tokens_swept_total",
		Help:      "Total expired reset tokens removed by sweeps.",
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		RegistrationsTotal,
		LoginsTotal,
		EmailsSentTotal,
		SessionsSweptTotal,
		ResetTokensSweptTotal,
	)
}
