package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/visgallery/internal/app"
	"github.com/vk/visgallery/internal/cli"
	"github.com/vk/visgallery/internal/config"
	"github.com/vk/visgallery/internal/hcl_adapter"
	"github.com/vk/visgallery/internal/yaml_adapter"
)

// main is the entrypoint for the visgallery server.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on catalog defects; turn that into an ordinary error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	loader := config.MultiLoader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
	gallery := app.NewApp(ctx, outW, appConfig, loader, nil)

	if appConfig.CheckOnly {
		gallery.PrintSummary(outW)
		return nil
	}
	return gallery.Run(ctx)
}
