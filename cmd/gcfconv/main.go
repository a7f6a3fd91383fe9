// Command gcfconv converts YAML, TOML and JSON configuration files into the
// GCF format.
//
//	gcfconv [--from yaml|toml|json] [--output FILE] [--check] [--watch] INPUT
//
// Without --output the document is written to standard output.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KimNorgaard/go-gcf/internal/config"
	xlog "github.com/KimNorgaard/go-gcf/internal/log"
	"github.com/KimNorgaard/go-gcf/internal/watch"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli"
)

var (
	fromFlag = cli.StringFlag{
		Name:   "from, f",
		Usage:  "input format: yaml, toml or json (default: from the file extension)",
		EnvVar: "GCFCONV_FROM",
	}
	outputFlag = cli.StringFlag{
		Name:   "output, o",
		Usage:  "write the document to `FILE` instead of standard output",
		EnvVar: "GCFCONV_OUTPUT",
	}
	checkFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "print a diff and fail if --output is not up to date; nothing is written",
	}
	watchFlag = cli.BoolFlag{
		Name:  "watch, w",
		Usage: "convert again whenever the input file changes",
	}
	logLevelFlag = cli.StringFlag{
		Name:   "log-level",
		Usage:  "log level (debug, info, warn, error)",
		Value:  "warn",
		EnvVar: "GCFCONV_LOG_LEVEL",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "gcfconv"
	app.Usage = "convert configuration files to GCF"
	app.ArgsUsage = "INPUT"
	app.Version = "v0.1.0"
	app.Flags = []cli.Flag{fromFlag, outputFlag, checkFlag, watchFlag, logLevelFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gcfconv:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Config{
		Input:    c.Args().First(),
		Output:   c.String("output"),
		Format:   config.Format(c.String("from")),
		Check:    c.Bool("check"),
		Watch:    c.Bool("watch"),
		LogLevel: c.String("log-level"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := xlog.Configure(xlog.Config{Level: cfg.LogLevel, Service: "gcfconv"}); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv := &converter{
		cfg:    cfg,
		stdout: os.Stdout,
		color:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		logger: xlog.WithComponent("convert"),
	}
	if err := conv.run(ctx); err != nil && !cfg.Watch {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	w := &watch.Watcher{
		Path:     cfg.Input,
		OnChange: conv.run,
		Logger:   xlog.WithComponent("watch"),
	}
	return w.Run(ctx)
}
