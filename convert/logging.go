package convert

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"go-btc-converter"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ToCurrency(ctx context.Context, currency btc.Currency, amount btc.Amount) (converted btc.Amount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "to_currency",
			"currency", currency,
			"amount", amount,
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ToCurrency(ctx, currency, amount)
}

func (s *loggingService) ToBtc(ctx context.Context, amount btc.Amount, currency btc.Currency) (converted btc.Amount, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "to_btc",
			"currency", currency,
			"amount", amount,
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ToBtc(ctx, amount, currency)
}

func (s *loggingService) Format(currency btc.Currency, value btc.Amount) (formatted btc.Amount, err error) {
	defer func() {
		if err != nil {
			s.logger.Log("method", "format", "currency", currency, "value", value, "err", err)
		}
	}()
	return s.next.Format(currency, value)
}

func (s *loggingService) Base() btc.Currency {
	return s.next.Base()
}

func (s *loggingService) IsCryptoCurrency(currency btc.Currency) bool {
	return s.next.IsCryptoCurrency(currency)
}

func (s *loggingService) IsFiatCurrency(currency btc.Currency) bool {
	return s.next.IsFiatCurrency(currency)
}
