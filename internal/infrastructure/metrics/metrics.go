package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salachat",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salachat",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "salachat",
		Name:      "rooms_created_total",
		Help:      "Rooms created since startup.",
	})

	MessagesPosted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "salachat",
		Name:      "messages_posted_total",
		Help:      "Messages posted since startup.",
	})

	CodeRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "salachat",
		Name:      "room_code_retries_total",
		Help:      "Room code regenerations caused by a unique-index conflict.",
	})
)

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
