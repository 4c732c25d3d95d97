package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Stock Metrics
var (
	DayTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDayTicks,
			Help:      HelpTextDayTicks,
		},
		[]string{LabelStatus},
	)

	ItemsAged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsAged,
			Help:      HelpTextItemsAged,
		},
		[]string{LabelCategory},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameTickDuration,
			Help:      HelpTextTickDuration,
			Buckets:   TickDurationBuckets,
		},
	)

	CurrentDay = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCurrentDay,
			Help:      HelpTextCurrentDay,
		},
	)

	ItemQuality = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameItemQuality,
			Help:      HelpTextItemQuality,
		},
		[]string{LabelItem},
	)

	ItemSellIn = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameItemSellIn,
			Help:      HelpTextItemSellIn,
		},
		[]string{LabelItem},
	)

	CatalogInserts = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogInserts,
			Help:      HelpTextCatalogInserts,
		},
	)
)

// RecordStock replaces the per-item gauges with the given snapshot.
// Items that left the stock stop being reported.
func RecordStock(items []domain.StockItem) {
	ItemQuality.Reset()
	ItemSellIn.Reset()
	for _, item := range items {
		ItemQuality.WithLabelValues(item.Name).Set(float64(item.Quality))
		ItemSellIn.WithLabelValues(item.Name).Set(float64(item.SellIn))
	}
}
