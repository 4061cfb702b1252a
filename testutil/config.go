package testutil

import (
	"robocompany/config"
)

// DefaultTestConfig returns a minimal test configuration
func DefaultTestConfig() *config.Config {
	generalConfig := config.New(&config.CommandLineArguments{
		BaseURL:       "http://127.0.0.1:0/",
		PrettyLogging: true,
		Debug:         true,
	}, nil)
	return &generalConfig
}

// TestConfigBuilder provides a fluent interface for building test configs
type TestConfigBuilder struct {
	config *config.Config
}

// NewTestConfigBuilder creates a new builder with default values
func NewTestConfigBuilder() *TestConfigBuilder {
	return &TestConfigBuilder{
		config: DefaultTestConfig(),
	}
}

// WithBaseURL sets the robots base URL
func (b *TestConfigBuilder) WithBaseURL(url string) *TestConfigBuilder {
	b.config.CommandLineArguments.BaseURL = url
	return b
}

// WithFetchTimeout sets the request timeout in milliseconds
func (b *TestConfigBuilder) WithFetchTimeout(timeout uint) *TestConfigBuilder {
	b.config.CommandLineArguments.FetchTimeout = timeout
	return b
}

// WithLogFile sets the log file location
func (b *TestConfigBuilder) WithLogFile(path string) *TestConfigBuilder {
	b.config.CommandLineArguments.LogFileLocation = path
	return b
}

// WithDebug sets debug mode
func (b *TestConfigBuilder) WithDebug(debug bool) *TestConfigBuilder {
	b.config.CommandLineArguments.Debug = debug
	return b
}

// Build returns the configured config
func (b *TestConfigBuilder) Build() *config.Config {
	return b.config
}
