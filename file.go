package gcf

import (
	"bufio"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFile writes the GCF encoding of the tree rooted at root to the named
// file, replacing it atomically. The file is either fully written or left
// untouched; a failed attempt never leaves a partial document behind.
//
// Every failure is reported as a *WriteTargetError naming the absolute path.
func WriteFile(path string, root Group, opts ...Option) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &WriteTargetError{Target: path, Err: err}
	}

	// Later options win, so the path always names the target.
	opts = append(opts[:len(opts):len(opts)], Target(abs))
	o, err := newOptions(opts)
	if err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(abs,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return &WriteTargetError{Target: abs, Err: err}
	}
	defer func() {
		// No-op once the file has been committed.
		if err := pending.Cleanup(); err != nil {
			o.logger.Debug().Err(err).Str("path", abs).Msg("cleanup pending file")
		}
	}()

	bw := bufio.NewWriter(pending)
	if err := NewEncoder(bw, opts...).Encode(root); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return &WriteTargetError{Target: abs, Err: err}
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return &WriteTargetError{Target: abs, Err: err}
	}

	o.logger.Debug().
		Str("event", "gcf.file_written").
		Str("path", abs).
		Msg("file replaced")
	return nil
}
