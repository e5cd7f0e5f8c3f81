package nftoken

import (
	"io"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// DefaultLogger is used for all contexts that have not
// set anything themselves.
var DefaultLogger = NewNopLogger()

// Logger is what we expect the hosting environment to provide for
// structured logging. It is a leveled facade over go-kit style
// key-value loggers.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})

	// With returns a new contextual logger with keyvals prepended to
	// those passed to calls to Info, Debug or Error.
	With(keyvals ...interface{}) Logger
}

type kitLogger struct {
	srcLogger kitlog.Logger
}

// NewLogfmtLogger returns a logger that encodes keyvals to the writer
// in logfmt format.
func NewLogfmtLogger(w io.Writer) Logger {
	return &kitLogger{
		srcLogger: kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w)),
	}
}

// NewNopLogger returns a logger that doesn't do anything.
func NewNopLogger() Logger {
	return &kitLogger{srcLogger: kitlog.NewNopLogger()}
}

func (l *kitLogger) Debug(msg string, keyvals ...interface{}) {
	lWithLevel := level.Debug(l.srcLogger)
	if err := kitlog.With(lWithLevel, "msg", msg).Log(keyvals...); err != nil {
		errLogger := level.Error(l.srcLogger)
		kitlog.With(errLogger, "msg", msg).Log("err", err)
	}
}

func (l *kitLogger) Info(msg string, keyvals ...interface{}) {
	lWithLevel := level.Info(l.srcLogger)
	if err := kitlog.With(lWithLevel, "msg", msg).Log(keyvals...); err != nil {
		errLogger := level.Error(l.srcLogger)
		kitlog.With(errLogger, "msg", msg).Log("err", err)
	}
}

func (l *kitLogger) Error(msg string, keyvals ...interface{}) {
	lWithLevel := level.Error(l.srcLogger)
	if err := kitlog.With(lWithLevel, "msg", msg).Log(keyvals...); err != nil {
		kitlog.With(lWithLevel, "msg", msg).Log("err", err)
	}
}

func (l *kitLogger) With(keyvals ...interface{}) Logger {
	return &kitLogger{srcLogger: kitlog.With(l.srcLogger, keyvals...)}
}
