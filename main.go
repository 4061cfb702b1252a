package main

import (
	"context"
	"fmt"
	"os"
	"robocompany/config"
	"robocompany/logging"
	"robocompany/release"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

func main() {
	defer func() {
		err := recover()

		if err != nil {
			log.Fatal().Msgf("Panic: %+v \n Stack Trace: %s", err, debug.Stack())
		}
	}()

	cliArgs, err := config.GetCliArguments()
	if err != nil {
		// the flag package already printed the problem and the usage
		os.Exit(config.ExitCode(err))
	}

	if cliArgs.Version {
		version, err := release.GetSemanticVersion()
		if err != nil {
			fmt.Println(release.GetVersion())
			os.Exit(1)
		}
		fmt.Printf("v%s\n", version)
		os.Exit(0)
	}

	generalConfig, err := config.Load(cliArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	logging.SetupLogger(generalConfig.CommandLineArguments)

	log.Info().Str("version", release.GetVersion()).Str("baseURL", generalConfig.BaseURL()).Msg("Starting robocompany")

	app, err := NewApp(&generalConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("failed to set up app")
	}

	err = app.Run(context.Background())
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("app stopped with an error")
	}

	log.Info().Msg("Bye")
}
