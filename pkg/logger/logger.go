package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled printf-style logger. Consumer packages declare their own
// minimal Logger interfaces and accept this type by reference; it is
// constructed exactly once in main and never kept as package-level state.
type Logger struct {
	zl    *zap.Logger
	sugar *zap.SugaredLogger
}

// New creates a logger writing to the given file (stdout when empty) at the
// given level ("debug", "info", "warn", "error").
func New(file, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	var sink zapcore.WriteSyncer
	var encoder zapcore.Encoder

	if file == "" {
		sink = zapcore.Lock(os.Stdout)
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", file, err)
		}
		sink = zapcore.Lock(f)
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, sink, lvl)
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{zl: zl, sugar: zl.Sugar()}, nil
}

// Debug logs a formatted message at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info logs a formatted message at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn logs a formatted message at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error logs a formatted message at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal logs a formatted message and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close flushes buffered log entries.
func (l *Logger) Close() error {
	return l.zl.Sync()
}
