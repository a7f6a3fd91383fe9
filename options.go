package gcf

import (
	"fmt"

	"github.com/rs/zerolog"
)

const defaultTarget = "stream"

// Option configures an Encoder.
type Option func(*options) error

type options struct {
	target string
	logger zerolog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		target: defaultTarget,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Target returns an Option that sets the identifier reported by a
// WriteTargetError, typically a file path. The default is "stream".
func Target(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("gcf: target must not be empty")
		}
		o.target = name
		return nil
	}
}

// Logger returns an Option that sets the logger used for debug events.
// Encoding is silent by default.
func Logger(l zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = l
		return nil
	}
}
