package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-btc-converter"
	"go-btc-converter/convert"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service convert.Service
	logger  log.Logger
	app     *fiber.App
}

// NewServer routes the conversion API to s. A nil gatherer leaves out /metrics.
func NewServer(s convert.Service, logger log.Logger, gatherer prometheus.Gatherer) *Server {
	server := &Server{
		Service: s,
		logger:  logger,
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
	}
	server.routes(gatherer)
	return server
}

func (s *Server) routes(gatherer prometheus.Gatherer) {
	s.app.Use(recover.New())
	s.app.Get("/api/to-currency", s.toCurrency)
	s.app.Get("/api/to-btc", s.toBtc)
	s.app.Get("/api/currencies/:code", s.classify)
	if gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// Listen serves HTTP on addr until Shutdown is called
func (s *Server) Listen(addr string) error {
	s.logger.Log("msg", "listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// response for marshalling JSON responses to return to clients
type response struct {
	Currency btc.Currency `json:"currency"`
	Amount   btc.Amount   `json:"amount"`
	Original btc.Amount   `json:"original"`
}

// toCurrency converts base asset amounts into the requested currency
func (s *Server) toCurrency(c *fiber.Ctx) error {
	currency := btc.Currency(c.Query("currency"))
	amount, err := convert.ParseAmount(c.Query("amount"))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.Service.ToCurrency(c.UserContext(), currency, amount)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(response{
		Currency: currency,
		Amount:   result,
		Original: amount,
	})
}

// toBtc converts amounts of the requested currency into the base asset
func (s *Server) toBtc(c *fiber.Ctx) error {
	currency := btc.Currency(c.Query("currency"))
	amount, err := convert.ParseAmount(c.Query("amount"))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.Service.ToBtc(c.UserContext(), amount, currency)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(response{
		Currency: s.Service.Base(),
		Amount:   result,
		Original: amount,
	})
}

func (s *Server) classify(c *fiber.Ctx) error {
	code := btc.Currency(c.Params("code"))
	return c.JSON(fiber.Map{
		"code":   code,
		"crypto": s.Service.IsCryptoCurrency(code),
		"fiat":   s.Service.IsFiatCurrency(code),
	})
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, convert.ErrInvalidAmount),
		errors.Is(err, convert.ErrInvalidCurrencyCode),
		errors.Is(err, convert.ErrInvalidRate),
		errors.Is(err, btc.ErrUnsupportedCurrency):
		status = http.StatusBadRequest
	default:
		s.logger.Log("msg", "failed conversion", "path", c.Path(), "err", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
