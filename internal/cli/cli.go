package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/visgallery/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("visgallery", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
visgallery - a gallery of data visualizations behind stable short URLs.

Usage:
  visgallery [options] [CATALOG_PATH]

Arguments:
  CATALOG_PATH
    Path to a catalog file (.hcl, .yaml) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", "", "Path to the catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog file or directory (shorthand).")
	viewsFlag := flagSet.String("views", "views", "Directory holding <slug>.html view modules.")
	thumbnailsFlag := flagSet.String("thumbnails", "thumbnails", "Directory holding thumbnail images.")
	staticFlag := flagSet.String("static", "", "Directory served under /static/. Empty disables it.")
	addrFlag := flagSet.String("addr", ":8080", "Address the gallery listens on.")
	basePathFlag := flagSet.String("base-path", os.Getenv("BASE_URL"), "Path prefix every route is mounted under. Defaults to $BASE_URL.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the health check and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	checkFlag := flagSet.Bool("check", false, "Validate and reconcile the catalog, print a summary and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *catalogFlag != "" {
		path = *catalogFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Catalog path determined.", "path", path)

	if path == "" {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CatalogPath:     path,
		ViewsPath:       *viewsFlag,
		ThumbnailsPath:  *thumbnailsFlag,
		StaticPath:      *staticFlag,
		Addr:            *addrFlag,
		BasePath:        *basePathFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		CheckOnly:       *checkFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
