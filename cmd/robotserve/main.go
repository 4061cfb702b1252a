package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"robocompany/config"
	"robocompany/fixture"
	"robocompany/logging"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// robotserve serves a local robots document for running the app without the gist
func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "listen address")
	file := flag.String("file", "robots.json", "robots document to serve")
	debug := flag.Bool("debug", false, "sets the log level to debug")
	flag.Parse()

	logging.SetupLogger(&config.CommandLineArguments{PrettyLogging: true, Debug: *debug})

	document, err := fixture.LoadRobotsDocument(*file)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("failed to load robots document")
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           fixture.NewRouter(document),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", *addr).Str("file", *file).Msgf("serving robots at http://%s/%s", *addr, "raw")

	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Stack().Err(err).Msg("server failed")
	}
}
