package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/heartmarshall/emotion-diary/internal/cli"
	"github.com/heartmarshall/emotion-diary/internal/client"
	"github.com/heartmarshall/emotion-diary/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Describe(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := client.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	gate := session.New(session.NewDiskStore(cfg.SessionDir()), logger.With("component", "session"))
	defer gate.Close()

	stopWatch := cli.WatchSession(gate, logger)
	defer stopWatch()

	api := client.New(cfg.APIURL, gate, cfg.Timeout, logger)
	app := cli.NewApp(api, cfg.Location, level, os.Stdin, color.Output)
	return cli.NewRootCommand(app).ExecuteContext(ctx)
}
