// Package log writes the command line messages, either as tagged plain text lines or as JSON records through zap.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Level selects which messages are written
//
//	0: quiet   - only errors
//	1: normal  - errors, warnings and info
//	2: verbose - everything including debug
var Level = 1

// JSON writes messages through the zap logger instead of as plain text.
var JSON = false

var (
	mu     sync.Mutex
	wr     io.Writer
	tty    bool
	logger *zap.SugaredLogger
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput sets the writer of plain text messages, colors are used when it is a terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	f, ok := w.(*os.File)
	tty = ok && term.IsTerminal(int(f.Fd()))
	wr = w
}

// Build sets up the zap logger that writes JSON records to stderr.
func Build() error {
	zcfg := zap.NewProductionConfig()
	zcfg.Level.SetLevel(zap.DebugLevel) // filtering is done by Level
	zcfg.DisableCaller = true
	zcfg.DisableStacktrace = true

	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Set(l.Sugar())
	return nil
}

// Set replaces the zap logger.
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Sync flushes the zap logger, if any.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		_ = logger.Sync()
	}
}

func write(level int, tag, color, format string, args ...interface{}) {
	if Level < level {
		return
	}
	msg := fmt.Sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()
	if JSON && logger != nil {
		switch tag {
		case "ERRO":
			logger.Error(msg)
		case "WARN":
			logger.Warn(msg)
		case "DEBU":
			logger.Debug(msg)
		default:
			logger.Info(msg)
		}
		return
	}

	b := []byte(time.Now().Format("2006/01/02 15:04:05"))
	b = append(b, ' ')
	if tty {
		b = append(b, color...)
	}
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, ']')
	if tty {
		b = append(b, "\x1b[0m"...)
	}
	b = append(b, ' ')
	b = append(b, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		b = append(b, '\n')
	}
	_, _ = wr.Write(b)
}

// Errorf writes an error message, which is shown at every level.
func Errorf(format string, args ...interface{}) {
	write(0, "ERRO", "\x1b[1m\x1b[31m", format, args...)
}

// Warnf writes a warning.
func Warnf(format string, args ...interface{}) {
	write(1, "WARN", "\x1b[33m", format, args...)
}

// Infof writes an informational message.
func Infof(format string, args ...interface{}) {
	write(1, "INFO", "\x1b[36m", format, args...)
}

// Printf is an alias of Infof.
func Printf(format string, args ...interface{}) {
	Infof(format, args...)
}

// Debugf writes a message shown only in verbose mode.
func Debugf(format string, args ...interface{}) {
	write(2, "DEBU", "\x1b[35m", format, args...)
}

// Fatalf writes an error message and exits.
func Fatalf(format string, args ...interface{}) {
	Errorf(format, args...)
	Sync()
	os.Exit(1)
}
