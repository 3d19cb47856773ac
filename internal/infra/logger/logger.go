package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// File, when set, sends logs to a size-rotated file instead of Stderr.
	File  string
	Debug bool

	// Stderr defaults to os.Stderr; tests swap it.
	Stderr io.Writer
}

const (
	maxSizeMB  = 10
	maxBackups = 4
)

var (
	mu       sync.RWMutex
	global   = slog.New(slog.NewJSONHandler(io.Discard, nil))
	closer   io.Closer
	logPath  string
	initedAt time.Time
)

// Setup installs the process logger. Without --debug only warnings and errors
// are emitted, so a normal run stays quiet.
func Setup(cfg Config) (func() error, error) {
	var out io.Writer = cfg.Stderr
	if out == nil {
		out = os.Stderr
	}

	var c io.Closer
	path := ""
	if cfg.File != "" {
		path = filepath.Clean(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
		}
		out, c = lj, lj
	}

	level := slog.LevelWarn
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {

			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	closer = c
	logPath = path
	initedAt = time.Now().UTC()
	mu.Unlock()

	l.Debug("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if closer != nil {
			cerr = closer.Close()
		}
		closer = nil
		logPath = ""
		initedAt = time.Time{}
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the rotated log file, or "" when logging to stderr.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	closer = nil
	logPath = ""
	initedAt = time.Time{}
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if initedAt.IsZero() {
		return errors.New("logger not initialized")
	}
	return nil
}
