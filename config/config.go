package config

import (
	"flag"
	"os"
	"path/filepath"
	"robocompany/common"
	"robocompany/errdefs"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// FileConfig types for the optional .ini config file
type FileConfig struct {
	BaseURL       string
	FetchTimeout  uint
	LogFile       string
	Debug         *bool
	PrettyLogging *bool
}

type CommandLineArguments struct {
	ConfigFileLocation string
	BaseURL            string
	FetchTimeout       uint
	LogFileLocation    string
	Debug              bool
	PrettyLogging      bool
	Version            bool

	// names of the flags that were passed explicitly, these win over the config file
	explicit map[string]bool
}

type Config struct {
	FileConfig           *FileConfig
	CommandLineArguments *CommandLineArguments
}

func New(cliArgs *CommandLineArguments, fileConfig *FileConfig) Config {
	if fileConfig == nil {
		fileConfig = &FileConfig{}
	}

	return Config{
		FileConfig:           fileConfig,
		CommandLineArguments: cliArgs,
	}
}

// BaseURL is the root the robots resource is resolved against
func (c *Config) BaseURL() string {
	if c.CommandLineArguments.BaseURL != "" {
		return c.CommandLineArguments.BaseURL
	}
	return common.DefaultRobotsBaseURL
}

// FetchTimeout returns 0 when requests should not time out
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.CommandLineArguments.FetchTimeout) * time.Millisecond
}

func GetCliArguments() (*CommandLineArguments, error) {
	return ParseCliArguments(os.Args[1:])
}

// ExitCode is the process status for an error returned by ParseCliArguments.
// Asking for help is not a failure.
func ExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func ParseCliArguments(args []string) (*CommandLineArguments, error) {
	defaultLogFilePath := ""

	homeDir, err := os.UserHomeDir()
	if err == nil {
		defaultLogFilePath = filepath.Join(homeDir, ".robocompany", "robocompany.log")
	}

	flags := flag.NewFlagSet("robocompany", flag.ContinueOnError)
	cfgFile := flags.String("config", "", "optional .ini configuration file")
	baseURL := flags.String("baseURL", common.DefaultRobotsBaseURL, "base URL the robots document is fetched from")
	fetchTimeout := flags.Uint("fetchTimeout", 0, "timeout of the robots request in milliseconds (0 means no timeout)")
	logFile := flags.String("logFile", defaultLogFilePath, "log file used by the app (empty disables file logging)")
	debug := flags.Bool("debug", false, "sets the log level to debug")
	prettyLogging := flags.Bool("prettyLogging", false, "enables the pretty console writing, intended for debugging")
	version := flags.Bool("version", false, "displays the current version of the app")

	err = flags.Parse(args)
	if err != nil {
		return nil, err
	}

	cliArgs := CommandLineArguments{
		ConfigFileLocation: *cfgFile,
		BaseURL:            *baseURL,
		FetchTimeout:       *fetchTimeout,
		LogFileLocation:    *logFile,
		Debug:              *debug,
		PrettyLogging:      *prettyLogging,
		Version:            *version,
		explicit:           make(map[string]bool),
	}

	flags.Visit(func(f *flag.Flag) {
		cliArgs.explicit[f.Name] = true
	})

	return &cliArgs, nil
}

// Load reads the config file referenced by the arguments, if any, and merges it
// into the arguments. Flags passed on the command line take precedence.
func Load(cliArgs *CommandLineArguments) (Config, error) {
	if cliArgs.ConfigFileLocation == "" {
		return New(cliArgs, nil), nil
	}

	fileConfig, err := LoadFileConfig(cliArgs.ConfigFileLocation)
	if err != nil {
		return Config{}, err
	}

	cliArgs.merge(fileConfig)

	return New(cliArgs, fileConfig), nil
}

// LoadFileConfig populates a FileConfig struct from a given path
func LoadFileConfig(path string) (*FileConfig, error) {
	if path == "" {
		return nil, errdefs.ErrConfigNotProvided
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %s", path)
	}

	fileConfig := FileConfig{}

	robots := file.Section("robots")
	fileConfig.BaseURL = robots.Key("base_url").String()
	if robots.HasKey("fetch_timeout") {
		fileConfig.FetchTimeout, err = robots.Key("fetch_timeout").Uint()
		if err != nil {
			return nil, errors.Wrap(errdefs.ErrFailedToParse, "robots.fetch_timeout")
		}
	}

	logSection := file.Section("log")
	fileConfig.LogFile = logSection.Key("file").String()

	if logSection.HasKey("debug") {
		debug, err := logSection.Key("debug").Bool()
		if err != nil {
			return nil, errors.Wrap(errdefs.ErrFailedToParse, "log.debug")
		}
		fileConfig.Debug = &debug
	}

	if logSection.HasKey("pretty") {
		pretty, err := logSection.Key("pretty").Bool()
		if err != nil {
			return nil, errors.Wrap(errdefs.ErrFailedToParse, "log.pretty")
		}
		fileConfig.PrettyLogging = &pretty
	}

	return &fileConfig, nil
}

func (args *CommandLineArguments) merge(fileConfig *FileConfig) {
	if fileConfig.BaseURL != "" && !args.explicit["baseURL"] {
		args.BaseURL = fileConfig.BaseURL
	}

	if fileConfig.FetchTimeout != 0 && !args.explicit["fetchTimeout"] {
		args.FetchTimeout = fileConfig.FetchTimeout
	}

	if fileConfig.LogFile != "" && !args.explicit["logFile"] {
		args.LogFileLocation = fileConfig.LogFile
	}

	if fileConfig.Debug != nil && !args.explicit["debug"] {
		args.Debug = *fileConfig.Debug
	}

	if fileConfig.PrettyLogging != nil && !args.explicit["prettyLogging"] {
		args.PrettyLogging = *fileConfig.PrettyLogging
	}
}
