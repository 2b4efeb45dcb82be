package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vk/extpointgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are environment-variable fallbacks for flags the user did not
// pass explicitly.
type envDefaults struct {
	ManifestPath string `env:"EXTPOINT_MANIFESTS"`
	LogFormat    string `env:"EXTPOINT_LOG_FORMAT"`
	LogLevel     string `env:"EXTPOINT_LOG_LEVEL"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("extpointgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ExtPointGo - An extension discovery, linking, and loading orchestrator.

Usage:
  extpointgo [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifests", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict", false, "Exit non-zero when any extension fails to link or load.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flags beat environment; environment beats built-in defaults.
	passed := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	path := defaults.ManifestPath
	if *manifestFlag != "" {
		path = *manifestFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifest path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if !passed["log-format"] && defaults.LogFormat != "" {
		logFormat = strings.ToLower(defaults.LogFormat)
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if !passed["log-level"] && defaults.LogLevel != "" {
		logLevel = strings.ToLower(defaults.LogLevel)
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Strict:       *strictFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
