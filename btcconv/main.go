package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go-btc-converter"
	"go-btc-converter/coinbase"
	"go-btc-converter/config"
	"go-btc-converter/convert"
	"go-btc-converter/currency"
	"go-btc-converter/http"
	"golang.org/x/time/rate"
)

func main() {
	// a missing .env is fine, the environment and config file still apply
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "btcconv",
		Usage: "convert bitcoin amounts to and from other currencies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				EnvVars: []string{config.PathEnv},
			},
			&cli.StringFlag{
				Name:  "coinbase-url",
				Usage: "override the coinbase API base url",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "to-currency",
				Usage:     "convert an amount of the base asset into a currency",
				ArgsUsage: "[--] <amount>",
				Flags:     []cli.Flag{currencyFlag(), amountFlag()},
				Action: func(c *cli.Context) error {
					return convertAction(c, func(ctx context.Context, s convert.Service, code btc.Currency, amount btc.Amount) (btc.Amount, error) {
						return s.ToCurrency(ctx, code, amount)
					})
				},
			},
			{
				Name:      "to-btc",
				Usage:     "convert an amount of a currency into the base asset",
				ArgsUsage: "[--] <amount>",
				Flags:     []cli.Flag{currencyFlag(), amountFlag()},
				Action: func(c *cli.Context) error {
					return convertAction(c, func(ctx context.Context, s convert.Service, code btc.Currency, amount btc.Amount) (btc.Amount, error) {
						return s.ToBtc(ctx, amount, code)
					})
				},
			},
			{
				Name:      "classify",
				Usage:     "tell whether a currency code is crypto or fiat",
				ArgsUsage: "<code>",
				Action:    classifyAction,
			},
			{
				Name:   "serve",
				Usage:  "serve the conversion HTTP API",
				Action: serveAction,
			},
		},
	}
}

func currencyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "currency",
		Aliases:  []string{"c"},
		Usage:    "currency code, e.g. USD",
		Required: true,
	}
}

// amountFlag lets negative amounts through without a "--" separator
func amountFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "amount",
		Aliases: []string{"a"},
		Usage:   "amount to convert, used instead of the positional argument",
	}
}

// deps the wired services shared by every command
type deps struct {
	cfg      *config.Config
	logger   log.Logger
	registry *prometheus.Registry
	convert  convert.Service
}

func setup(c *cli.Context) (*deps, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if url := c.String("coinbase-url"); url != "" {
		cfg.Coinbase.URL = url
	}

	logger := newLogger(c.App.ErrWriter, cfg.Log)
	registry := prometheus.NewRegistry()
	base := btc.Currency(cfg.Base)

	coinbaseService := coinbase.NewService(
		coinbase.WithURL(cfg.Coinbase.URL),
		coinbase.WithTimeout(cfg.Coinbase.Timeout),
		coinbase.WithLimiter(rate.NewLimiter(rate.Limit(cfg.Coinbase.RequestsPerSecond), cfg.Coinbase.Burst)),
	)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_rest"), coinbaseService)

	convertService := convert.NewService(coinbase.NewRateProvider(coinbaseService, base), currency.Default, convert.WithBase(base))
	convertService = convert.NewLoggingService(level.Info(log.With(logger, "component", "convert")), convertService)
	convertService = convert.NewInstrumentingService(registry, convertService)

	return &deps{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		convert:  convertService,
	}, nil
}

func newLogger(w io.Writer, cfg config.Log) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.Level, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

type conversion func(ctx context.Context, s convert.Service, code btc.Currency, amount btc.Amount) (btc.Amount, error)

func convertAction(c *cli.Context, fn conversion) error {
	literal, err := amountArg(c)
	if err != nil {
		return err
	}
	amount, err := convert.ParseAmount(literal)
	if err != nil {
		return err
	}

	d, err := setup(c)
	if err != nil {
		return err
	}

	result, err := fn(c.Context, d.convert, btc.Currency(c.String("currency")), amount)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, strconv.FormatFloat(float64(result), 'f', -1, 64))
	return err
}

// amountArg takes the amount from --amount or from the single positional argument
func amountArg(c *cli.Context) (string, error) {
	if c.IsSet("amount") {
		if c.NArg() != 0 {
			return "", errors.New("amount given both as --amount and as an argument")
		}
		return c.String("amount"), nil
	}
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one amount argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}

func classifyAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one currency code, got %d", c.NArg())
	}
	code := btc.Currency(c.Args().First())

	kind := currency.Default.Kind(code)
	_, err := fmt.Fprintln(c.App.Writer, kind)
	if err != nil {
		return err
	}
	if kind == currency.Unknown {
		return fmt.Errorf("unknown currency code: %v", code)
	}
	return nil
}

func serveAction(c *cli.Context) error {
	d, err := setup(c)
	if err != nil {
		return err
	}

	server := http.NewServer(d.convert, log.With(d.logger, "component", "http"), d.registry)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- server.Listen(d.cfg.HTTP.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		d.logger.Log("msg", "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
