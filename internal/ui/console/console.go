package console

import (
	"fmt"
	"io"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/runner"
)

// NewReporter picks the reporter for opts.Format. Count takes precedence
// over the line-oriented output of the plain format.
func NewReporter(w io.Writer, opts config.Options) (runner.Reporter, error) {
	switch opts.Format {
	case "", config.FormatPlain:
		if opts.CountOnly() {
			return &countReporter{w: w}, nil
		}
		return &plainReporter{w: w, numbers: opts.WithLineNumbers()}, nil
	case config.FormatTable:
		return &tableReporter{w: w, countOnly: opts.CountOnly()}, nil
	case config.FormatJSON, config.FormatYAML:
		return &structuredReporter{w: w, format: opts.Format, countOnly: opts.CountOnly()}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", opts.Format)
	}
}
