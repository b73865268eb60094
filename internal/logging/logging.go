package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()
var logfile *os.File

type Options struct {
	Verbose bool
	// File, when set, receives every entry as JSON.
	File string
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// Init replaces the no-op logger. Console output is limited to warnings
// unless Verbose is set; stdout is never written.
func Init(opts Options) error {
	Close()
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}
	level := zap.WarnLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(w)), level),
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logfile = f
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(f), zap.DebugLevel))
	}
	logger = zap.New(zapcore.NewTee(cores...)).With(zap.String("run", uuid.NewString()))
	return nil
}

func Close() {
	_ = logger.Sync()
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
	logger = zap.NewNop()
}

func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { logger.Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }
