// Command statdump counts whitespace-separated tokens read from stdin and
// dumps the totals through the stats registry.
//
// Names given as arguments are registered up front, so they appear in the
// dump with value 0 even if they never occur in the input.
//
//	echo "rx tx rx drop" | statdump rx tx
package main

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ygrebnov/stats"
)

type config struct {
	LogLevel     string `env:"STATDUMP_LOG_LEVEL" envDefault:"info"`
	Order        string `env:"STATDUMP_ORDER" envDefault:"insertion"`
	MaxKeyLength int    `env:"STATDUMP_MAX_KEY_LENGTH" envDefault:"255"`
	// Textfile, when set, receives the counters in Prometheus text format.
	Textfile  string `env:"STATDUMP_TEXTFILE"`
	Namespace string `env:"STATDUMP_NAMESPACE" envDefault:"statdump"`
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	if err := run(cfg, os.Args[1:], os.Stdin, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("statdump failed")
	}
}

func run(cfg config, names []string, in io.Reader, logger zerolog.Logger) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}
	order, ok := stats.ParseDumpOrder(cfg.Order)
	if !ok {
		return errors.Errorf("unknown dump order %q", cfg.Order)
	}

	r := stats.NewBasicRegistry(
		stats.WithLogger(stats.NewZerologLogger(logger.Level(level))),
		stats.WithDumpOrder(order),
		stats.WithMaxKeyLength(cfg.MaxKeyLength),
	)
	defer r.Finalize()

	for _, name := range names {
		if name == "" {
			continue
		}
		// duplicates are reported by the registry and otherwise ignored
		r.AddEntry(name)
	}

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		r.Increment(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}

	r.Dump()

	if cfg.Textfile == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(stats.NewCollector(r, cfg.Namespace)); err != nil {
		return errors.Wrap(err, "register collector")
	}
	if err := prometheus.WriteToTextfile(cfg.Textfile, reg); err != nil {
		return errors.Wrap(err, "write textfile")
	}
	return nil
}
