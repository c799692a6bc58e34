package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger printf-style logger used by every layer of the service.
// Writes to stdout and, when a file path is configured, to that file as well.
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New creates a logger with the given output file (may be empty) and level (debug, info, warn, error)
func New(filePath, level string) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
		}
		lvl = parsed
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.AddSync(os.Stdout)

	var file *os.File
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %q: %w", filePath, err)
		}
		file = f
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(f))
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, lvl)

	return &Logger{
		sugar: zap.New(core).Sugar(),
		file:  file,
	}, nil
}

// NewNop returns a logger that discards everything (tests)
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal logs and terminates the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close flushes buffered entries and closes the log file
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
