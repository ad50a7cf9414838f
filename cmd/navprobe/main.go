package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/vk/visgallery/internal/ctxlog"
	"github.com/vk/visgallery/internal/navprobe"
)

// main is the entrypoint for the live navigation probe.
func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "Gallery URL including the base path.")
	pathFlag := flag.String("path", "/", "Path to navigate to.")
	nameFlag := flag.String("name", "", "Route name to navigate to. Overrides -path.")
	timeoutFlag := flag.Duration("timeout", 15*time.Second, "How long to wait for the connection and the reply.")
	insecureFlag := flag.Bool("insecure", false, "Skip TLS certificate verification.")
	verboseFlag := flag.Bool("v", false, "Log at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reply, err := navprobe.Run(ctxlog.WithLogger(ctx, logger), navprobe.Options{
		URL:                *urlFlag,
		Path:               *pathFlag,
		Name:               *nameFlag,
		Timeout:            *timeoutFlag,
		InsecureSkipVerify: *insecureFlag,
	})
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(reply.Summary())
	if reply.Event == "nav_error" {
		stop()
		os.Exit(1)
	}
}
