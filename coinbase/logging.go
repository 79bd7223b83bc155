package coinbase

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-btc-converter"
)

// loggingService decorates a coinbase.Service with logging.
// Rate fetches are logged at debug, failed fetches at error.
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, base btc.Currency) (rates btc.Rates, err error) {
	defer func(begin time.Time) {
		if err != nil {
			level.Error(s.logger).Log("msg", "rate fetch failed", "base", base, "took", time.Since(begin), "err", err)
			return
		}
		level.Debug(s.logger).Log("msg", "rates fetched", "base", base, "quotes", len(rates), "took", time.Since(begin))
	}(time.Now())
	return s.next.ExchangeRates(ctx, base)
}
