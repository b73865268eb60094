package runner

import (
	"errors"
	"io/fs"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
)

var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

type Runner struct {
	fsys FileSystem
	rep  Reporter
}

func New(fsys FileSystem, rep Reporter) *Runner {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &Runner{fsys: fsys, rep: rep}
}

// Run reads cfg.FilePath, searches it and reports every match. A read
// failure is returned before anything is reported.
func (r *Runner) Run(cfg config.Config) error {
	contents, err := r.read(cfg.FilePath)
	if err != nil {
		return err
	}
	mode := search.ModeFor(cfg.IgnoreCase)
	logging.Debug("searching",
		zap.String("query", cfg.Query),
		zap.String("path", cfg.FilePath),
		zap.Stringer("mode", mode),
		zap.Int("bytes", len(contents)))
	matches := search.Matches(cfg.Query, contents, mode)
	for _, m := range matches {
		r.rep.Line(m)
	}
	logging.Debug("search done", zap.Int("matches", len(matches)))
	return r.rep.Flush()
}

func (r *Runner) read(path string) (string, error) {
	b, err := r.fsys.ReadFile(path)
	if err != nil {
		logging.Debug("read failed", zap.String("path", path), zap.Error(err))
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &fs.PathError{Op: "read", Path: path, Err: ErrInvalidEncoding}
	}
	return string(b), nil
}
