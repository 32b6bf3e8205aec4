package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	snapshotLoadDuration         *prometheus.HistogramVec
	snapshotRecordsGauge         prometheus.Gauge
	snapshotSkippedRecordsGauge  prometheus.Gauge
	aggregationDurationHistogram *prometheus.HistogramVec
	activeStakeAccountsGauge     prometheus.Gauge
	activeStakeLamportsGauge     prometheus.Gauge
)

// Init initializes the metrics package. It is a no-op after the first call.
// Commands skip it entirely when metrics are disabled, so every Record*
// function tolerates an uninitialized package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10}

	snapshotLoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snapshot_load_duration_seconds",
			Help:    "Histogram of snapshot load durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	snapshotRecordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_records_count",
			Help: "Number of records decoded from the last loaded snapshot",
		},
	)

	snapshotSkippedRecordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_skipped_records_count",
			Help: "Number of malformed records skipped in the last loaded snapshot",
		},
	)

	aggregationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "Histogram of aggregation pass durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	activeStakeAccountsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_stake_accounts_count",
			Help: "Matching active stake accounts in the last report",
		},
	)

	activeStakeLamportsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_stake_lamports_total",
			Help: "Total active stake lamports in the last report",
		},
	)

	prometheus.MustRegister(
		snapshotLoadDuration,
		snapshotRecordsGauge,
		snapshotSkippedRecordsGauge,
		aggregationDurationHistogram,
		activeStakeAccountsGauge,
		activeStakeLamportsGauge,
	)
}

func RecordSnapshotLoad(d time.Duration, records, skipped int, failure bool) {
	if snapshotLoadDuration == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	snapshotLoadDuration.WithLabelValues(status.String()).Observe(d.Seconds())
	if !failure {
		snapshotRecordsGauge.Set(float64(records))
		snapshotSkippedRecordsGauge.Set(float64(skipped))
	}
}

func RecordAggregationDuration(d time.Duration, operation string, failure bool) {
	if aggregationDurationHistogram == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	aggregationDurationHistogram.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordActiveStake(accounts uint64, lamports float64) {
	if activeStakeAccountsGauge == nil {
		return
	}

	activeStakeAccountsGauge.Set(float64(accounts))
	activeStakeLamportsGauge.Set(lamports)
}
