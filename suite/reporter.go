package suite

import "go.uber.org/zap"

// Reporter receives the failures that the catalogue converts into Error
// results.
type Reporter interface {
	Report(indicatorName string, err error)
}

// NopReporter discards every report.
type NopReporter struct{}

func (NopReporter) Report(string, error) {}

// ZapReporter logs each failure at warn level.
type ZapReporter struct {
	logger *zap.Logger
}

// NewZapReporter returns a reporter writing to logger. A nil logger falls
// back to zap.NewNop.
func NewZapReporter(logger *zap.Logger) *ZapReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapReporter{logger: logger}
}

func (r *ZapReporter) Report(indicatorName string, err error) {
	r.logger.Warn("strategy evaluation failed",
		zap.String("strategy", indicatorName),
		zap.Error(err),
	)
}
