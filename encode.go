package gcf

import (
	"io"
)

// Encoder writes GCF documents to an output stream.
//
// An Encoder keeps no state between calls to Encode. It does not close or
// flush w; the caller owns the stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the GCF encoding of the tree rooted at root to the stream.
//
// If root is the root group its children are written at the top level.
// Any other group is written as a single top-level block.
//
// The first failed write aborts encoding and is returned as a
// *WriteTargetError. Bytes already written are not rolled back.
func (e *Encoder) Encode(root Group) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	f := newFormatter(e.w, o)
	if err := f.writeGroup(root, 0); err != nil {
		o.logger.Debug().
			Err(err).
			Str("event", "gcf.encode_failed").
			Str("target", o.target).
			Int64("bytes", f.n).
			Msg("encoding aborted")
		return err
	}

	o.logger.Debug().
		Str("event", "gcf.encode_done").
		Str("target", o.target).
		Int("groups", f.groups).
		Int("keys", f.keys).
		Int64("bytes", f.n).
		Msg("document written")
	return nil
}
