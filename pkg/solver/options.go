package solver

import (
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/tourbound/tourbound/pkg/errors"
)

// Options configures a solve run.
type Options struct {
	// Workers is the number of search goroutines. Zero means one per
	// available CPU.
	Workers int

	// Logger receives run-level progress messages. Nil means the default
	// logger.
	Logger *log.Logger
}

// SetDefaults fills in zero-valued fields.
func (o *Options) SetDefaults() {
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Validate checks the options after defaults have been applied.
func (o *Options) Validate() error {
	if o.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidWorkers, "worker count must be at least 1, got %d", o.Workers)
	}
	return nil
}
