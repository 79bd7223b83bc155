package convert

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go-btc-converter"
)

// instrumentingService decorates a convert.Service with request metrics
type instrumentingService struct {
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	next           Service
}

// NewInstrumentingService registers conversion metrics with reg and returns a Service recording them
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	requestCount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btcconv",
		Subsystem: "convert",
		Name:      "requests_total",
		Help:      "Number of conversions requested.",
	}, []string{"method", "error"})

	requestLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btcconv",
		Subsystem: "convert",
		Name:      "request_duration_seconds",
		Help:      "Time taken by conversions, including the rate lookup.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	reg.MustRegister(requestCount, requestLatency)

	return &instrumentingService{
		requestCount:   requestCount,
		requestLatency: requestLatency,
		next:           s,
	}
}

func (s *instrumentingService) ToCurrency(ctx context.Context, currency btc.Currency, amount btc.Amount) (converted btc.Amount, err error) {
	defer s.observe("to_currency", time.Now(), &err)
	return s.next.ToCurrency(ctx, currency, amount)
}

func (s *instrumentingService) ToBtc(ctx context.Context, amount btc.Amount, currency btc.Currency) (converted btc.Amount, err error) {
	defer s.observe("to_btc", time.Now(), &err)
	return s.next.ToBtc(ctx, amount, currency)
}

func (s *instrumentingService) Format(currency btc.Currency, value btc.Amount) (btc.Amount, error) {
	return s.next.Format(currency, value)
}

func (s *instrumentingService) Base() btc.Currency {
	return s.next.Base()
}

func (s *instrumentingService) IsCryptoCurrency(currency btc.Currency) bool {
	return s.next.IsCryptoCurrency(currency)
}

func (s *instrumentingService) IsFiatCurrency(currency btc.Currency) bool {
	return s.next.IsFiatCurrency(currency)
}

func (s *instrumentingService) observe(method string, begin time.Time, err *error) {
	s.requestCount.WithLabelValues(method, strconv.FormatBool(*err != nil)).Inc()
	s.requestLatency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}
