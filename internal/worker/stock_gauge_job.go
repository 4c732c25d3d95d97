package worker

import "context"

// GaugeRefresher republishes stock gauges
type GaugeRefresher interface {
	RefreshGauges(ctx context.Context) error
}

// StockGaugeJob refreshes the per-item Prometheus gauges when processed
type StockGaugeJob struct {
	refresher GaugeRefresher
}

// NewStockGaugeJob wraps refresher as a pool job
func NewStockGaugeJob(refresher GaugeRefresher) *StockGaugeJob {
	return &StockGaugeJob{refresher: refresher}
}

func (j *StockGaugeJob) Process(ctx context.Context) error {
	return j.refresher.RefreshGauges(ctx)
}
