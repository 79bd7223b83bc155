package convert

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go-btc-converter"
)

func TestInstrumentingService(t *testing.T) {
	reg := prometheus.NewRegistry()
	service := NewInstrumentingService(reg, newTestService(btc.Rates{"USD": 40000.0}))
	metrics := service.(*instrumentingService)

	_, _ = service.ToCurrency(context.Background(), "USD", 1)
	_, _ = service.ToCurrency(context.Background(), "USD", 2)
	_, _ = service.ToBtc(context.Background(), 1, "EUR")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requestCount.WithLabelValues("to_currency", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestCount.WithLabelValues("to_btc", "true")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.requestLatency))

	assert.True(t, service.IsCryptoCurrency("BTC"))
	assert.Equal(t, btc.BTC, service.Base())
	formatted, err := service.Format("USD", 2.005)
	assert.NoError(t, err)
	assert.Equal(t, btc.Amount(2.01), formatted)
}

func TestInstrumentingService_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewInstrumentingService(reg, newTestService(nil))

	assert.Panics(t, func() {
		NewInstrumentingService(reg, newTestService(nil))
	})
}
