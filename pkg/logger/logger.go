package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values default to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a leveled printf-style logger writing to stdout and,
// optionally, to a file.
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a logger. When file is non-empty the output is duplicated
// into that file (created/appended).
func New(file string, level string) (*Logger, error) {
	l := &Logger{level: ParseLevel(level)}

	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", file, err)
		}
		l.file = f
		w = io.MultiWriter(os.Stdout, f)
	}

	l.out = log.New(w, "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) logf(lv Level, tag, format string, v ...interface{}) {
	if lv < l.level {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.logf(LevelDebug, "[DEBUG]", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.logf(LevelInfo, "[INFO]", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.logf(LevelWarn, "[WARN]", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.logf(LevelError, "[ERROR]", format, v...) }

// Fatal logs the message and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL]", format, v...)
	os.Exit(1)
}
