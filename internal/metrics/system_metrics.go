package metrics

import (
	"runtime"
	"time"

	"github.com/Dhoini/Storefront-gateway/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SystemMetrics интерфейс для системных метрик процесса
type SystemMetrics interface {
	Record()
	StartRecording(interval time.Duration)
	Stop()
}

type systemMetrics struct {
	log         *logger.Logger
	goroutines  prometheus.Gauge
	memoryAlloc prometheus.Gauge
	memorySys   prometheus.Gauge
	gcRuns      prometheus.Gauge
	stopCh      chan struct{}
}

// NewSystemMetrics создает новые системные метрики
func NewSystemMetrics(registry *prometheus.Registry, log *logger.Logger) SystemMetrics {
	goroutines := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_goroutines",
			Help: "Current number of goroutines",
		},
	)

	memoryAlloc := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_memory_alloc_bytes",
			Help: "Currently allocated memory in bytes",
		},
	)

	memorySys := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_memory_sys_bytes",
			Help: "Total memory obtained from system in bytes",
		},
	)

	gcRuns := promauto.With(registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_gc_runs",
			Help: "Number of completed garbage collections",
		},
	)

	return &systemMetrics{
		log:         log,
		goroutines:  goroutines,
		memoryAlloc: memoryAlloc,
		memorySys:   memorySys,
		gcRuns:      gcRuns,
		stopCh:      make(chan struct{}),
	}
}

// Record записывает текущие значения системных метрик
func (m *systemMetrics) Record() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m.goroutines.Set(float64(runtime.NumGoroutine()))
	m.memoryAlloc.Set(float64(memStats.Alloc))
	m.memorySys.Set(float64(memStats.Sys))
	m.gcRuns.Set(float64(memStats.NumGC))
}

// StartRecording начинает запись метрик с заданным интервалом
func (m *systemMetrics) StartRecording(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Record()
			case <-m.stopCh:
				return
			}
		}
	}()
	m.log.Info("System metrics recording started with interval %s", interval)
}

// Stop останавливает запись метрик
func (m *systemMetrics) Stop() {
	close(m.stopCh)
	m.log.Info("System metrics recording stopped")
}
