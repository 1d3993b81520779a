package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/staticd"
	"github.com/indigo-web/staticd/config"
	"github.com/rs/zerolog"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "address to listen on")
		root     = flag.String("root", "", "directory to serve files from (overrides the config)")
		cfgPath  = flag.String("config", "", "path to a JSON config file")
		logLevel = flag.String("log-level", "info", "one of trace, debug, info, warn, error, disabled")
		pretty   = flag.Bool("pretty", false, "human-friendly colored logs instead of JSON")
	)
	flag.Parse()

	cfg := config.Default()
	if len(*cfgPath) > 0 {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	if len(*root) > 0 {
		cfg.Static.Root = *root
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}

	logger := zerolog.New(os.Stderr)
	if *pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	logger = logger.Level(level).With().Timestamp().Logger()

	app := staticd.New(*addr).
		Tune(cfg).
		Logger(logger)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		logger.Info().Stringer("signal", <-sig).Msg("shutting down")
		app.Stop()
	}()

	if err = app.Serve(nil); err != nil {
		log.Fatal(err)
	}
}
