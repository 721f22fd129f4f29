package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickpost", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickpost", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	AuthFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "quickpost", Name: "auth_failures_total", Help: "Number of requests rejected by Basic auth."},
	)
	Publishes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickpost", Name: "publish_total", Help: "Publish attempts by outcome (ok, invalid, remote_failure)."},
		[]string{"outcome"},
	)
	GitHubWrites = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "quickpost", Name: "github_write_seconds", Help: "Latency of Contents API writes by status class.", Buckets: prometheus.DefBuckets},
		[]string{"status"},
	)
	HookFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "quickpost", Name: "post_commit_hook_failures_total", Help: "Failed post-commit hooks by hook name."},
		[]string{"hook"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(AuthFailures)
	reg.MustRegister(Publishes)
	reg.MustRegister(GitHubWrites)
	reg.MustRegister(HookFailures)
}
