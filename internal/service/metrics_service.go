package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/anycanvas/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for Canvas traffic and provides a
// lightweight snapshot for the end-of-run summary.
type MetricsService struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	coursesFetched  prometheus.Gauge
	coursesCurrent  prometheus.Gauge

	requestCount         uint64
	requestFailures      uint64
	requestDurationTotal uint64
	fetched              int64
	current              int64
}

// NewMetricsService registers the Canvas collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "canvas_request_duration_seconds",
		Help:    "Duration of Canvas API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canvas_requests_total",
		Help: "Total number of Canvas API requests",
	}, []string{"method", "path", "status"})

	coursesFetched := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "canvas_courses_fetched",
		Help: "Courses returned by the last course listing",
	})

	coursesCurrent := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "canvas_courses_current",
		Help: "Courses whose term contains the present instant",
	})

	registry.MustRegister(requestDuration, requestTotal, coursesFetched, coursesCurrent)

	return &MetricsService{
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		coursesFetched:  coursesFetched,
		coursesCurrent:  coursesCurrent,
	}
}

// ObserveCanvasRequest records one Canvas request. A zero status marks a transport failure.
func (m *MetricsService) ObserveCanvasRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
	if status == 0 || status >= 400 {
		atomic.AddUint64(&m.requestFailures, 1)
	}
}

// RecordCourses stores the course counts of the latest retrieval.
func (m *MetricsService) RecordCourses(fetched, current int) {
	if m == nil {
		return
	}
	m.coursesFetched.Set(float64(fetched))
	m.coursesCurrent.Set(float64(current))
	atomic.StoreInt64(&m.fetched, int64(fetched))
	atomic.StoreInt64(&m.current, int64(current))
}

// Snapshot returns aggregated metrics for the run summary.
func (m *MetricsService) Snapshot() models.RunMetrics {
	if m == nil {
		return models.RunMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.RunMetrics{
		Requests:       requests,
		FailedRequests: atomic.LoadUint64(&m.requestFailures),
		AvgRequestMs:   avgRequestMs,
		CoursesFetched: int(atomic.LoadInt64(&m.fetched)),
		CoursesCurrent: int(atomic.LoadInt64(&m.current)),
	}
}
