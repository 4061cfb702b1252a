package logging

import (
	"fmt"
	"io"
	"os"
	"robocompany/common"
	"robocompany/config"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

func SetupLogger(cliArgs *config.CommandLineArguments) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	writers := make([]io.Writer, 0, 2)

	// the terminal belongs to the screens, so the console writer is opt-in
	if cliArgs.PrettyLogging {
		writers = append(writers, newConsoleWriter(os.Stderr))
	}

	if cliArgs.LogFileLocation != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename: cliArgs.LogFileLocation,
			MaxSize:  10,
		})
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	logger := zerolog.New(writer).With().Caller().Timestamp().Stack().Logger()
	log.Logger = logger

	if cliArgs.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	prettyArgs, err := common.PrettyFormat(*cliArgs)
	if err != nil {
		prettyArgs = fmt.Sprintf("%+v", *cliArgs)
	}

	log.Debug().Msgf("robocompany CLI Arguments:\n %s", prettyArgs)
}

func newConsoleWriter(out *os.File) zerolog.ConsoleWriter {
	colored := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	return zerolog.ConsoleWriter{Out: out, NoColor: !colored}
}
