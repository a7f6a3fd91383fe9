package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/KimNorgaard/go-gcf"
	"github.com/KimNorgaard/go-gcf/internal/config"
	"github.com/KimNorgaard/go-gcf/internal/diff"
	"github.com/KimNorgaard/go-gcf/tree"
	"github.com/rs/zerolog"
)

// errOutOfDate is returned by a check run when the output file differs from
// the freshly rendered document.
var errOutOfDate = errors.New("output is out of date")

type converter struct {
	cfg    config.Config
	stdout io.Writer
	color  bool
	logger zerolog.Logger
}

// load reads the input document and builds a tree from it.
func (c *converter) load() (*tree.Buffer, error) {
	format, err := c.cfg.ResolveFormat()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	switch format {
	case config.FormatYAML:
		return tree.FromYAML(data)
	case config.FormatTOML:
		return tree.FromTOML(data)
	case config.FormatJSON:
		return tree.FromJSON(data)
	}
	return nil, fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
}

// run performs one conversion according to the configuration.
func (c *converter) run(_ context.Context) error {
	buf, err := c.load()
	if err != nil {
		c.logger.Error().Err(err).Str("event", "gcfconv.load_failed").Str("input", c.cfg.Input).Msg("cannot load input")
		return err
	}

	opts := []gcf.Option{gcf.Logger(c.logger)}
	switch {
	case c.cfg.Check:
		err = c.check(buf.Root(), opts)
	case c.cfg.Output == "":
		err = c.writeStdout(buf.Root(), opts)
	default:
		err = gcf.WriteFile(c.cfg.Output, buf.Root(), opts...)
	}
	if err != nil && !errors.Is(err, errOutOfDate) {
		c.logger.Error().Err(err).Str("event", "gcfconv.convert_failed").Str("input", c.cfg.Input).Msg("conversion failed")
		return err
	}

	c.logger.Info().
		Str("event", "gcfconv.converted").
		Str("input", c.cfg.Input).
		Str("output", c.cfg.Output).
		Bool("check", c.cfg.Check).
		Msg("conversion finished")
	return err
}

func (c *converter) writeStdout(root gcf.Group, opts []gcf.Option) error {
	bw := bufio.NewWriter(c.stdout)
	opts = append(opts, gcf.Target("stdout"))
	if err := gcf.NewEncoder(bw, opts...).Encode(root); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &gcf.WriteTargetError{Target: "stdout", Err: err}
	}
	return nil
}

// check renders the document in memory and prints a diff against the
// current output file. A missing output file counts as empty.
func (c *converter) check(root gcf.Group, opts []gcf.Option) error {
	want, err := gcf.Marshal(root, opts...)
	if err != nil {
		return err
	}
	have, err := os.ReadFile(c.cfg.Output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read output: %w", err)
	}

	d := diff.Lines(string(have), string(want), c.color)
	if d == "" {
		return nil
	}
	if _, err := io.WriteString(c.stdout, d); err != nil {
		return err
	}
	return errOutOfDate
}
