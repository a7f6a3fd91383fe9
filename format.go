package gcf

import (
	"fmt"
	"io"
	"strings"
)

// IndentUnit is the indentation added for each nesting level.
const IndentUnit = "    "

// formatter writes the lines of one document.
type formatter struct {
	w      io.Writer
	opts   *options
	n      int64
	groups int
	keys   int
}

func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, opts: opts}
}

func (f *formatter) write(s string) error {
	n, err := io.WriteString(f.w, s)
	f.n += int64(n)
	if err != nil {
		return &WriteTargetError{Target: f.opts.target, Err: err}
	}
	return nil
}

// linePrefix returns the indentation for a line at the given nesting level.
func linePrefix(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, level)
}

func (f *formatter) writeGroup(g Group, level int) error {
	if g.Path() == RootPath {
		return f.writeSubGroups(g, level)
	}

	prefix := linePrefix(level)
	name := g.Name()
	f.groups++

	if err := f.write(prefix + "[" + name + "]\n"); err != nil {
		return err
	}
	if err := f.writeKeys(g, prefix); err != nil {
		return err
	}
	if err := f.writeSubGroups(g, level+1); err != nil {
		return err
	}
	return f.write(prefix + "[/" + name + "]\n")
}

func (f *formatter) writeKeys(g Group, prefix string) error {
	for _, key := range g.Keys() {
		v, err := g.Value(key)
		if err != nil {
			return fmt.Errorf("gcf: read key %q of %s: %w", key, g.Path(), err)
		}
		if !v.IsValid() {
			return fmt.Errorf("%w: key %q of %s", ErrInvalidValue, key, g.Path())
		}
		f.keys++
		if err := f.write(IndentUnit + prefix + key + " = " + encodeValue(v) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeSubGroups(g Group, level int) error {
	for _, child := range g.Groups() {
		if err := f.writeGroup(child, level); err != nil {
			return err
		}
	}
	return nil
}
