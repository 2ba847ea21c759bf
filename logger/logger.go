// Package logger carries the logging surface shared by the sankhya
// binaries. Server-side code logs structured events straight through
// logharbour; the writer and file loggers cover CLI diagnostics, where
// a JSON event stream would get in the way.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/remiges-tech/logharbour/logharbour"
)

// Logger is an interface that represents a logger.
type Logger interface {
	Log(message string) error
}

// StdLogger writes plain lines to a writer.
type StdLogger struct {
	Out io.Writer
}

// NewLogger creates a StdLogger on the given writer.
func NewLogger(w io.Writer) *StdLogger {
	return &StdLogger{Out: w}
}

func (sl *StdLogger) Log(message string) error {
	_, err := fmt.Fprintln(sl.Out, message)
	return err
}

// FileLogger appends timestamped lines to a file.
type FileLogger struct {
	FilePath string
}

// NewFileLogger creates a FileLogger appending to the given path.
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{FilePath: path}
}

func (fl *FileLogger) Log(message string) error {
	if fl.FilePath == "" {
		return fmt.Errorf("FilePath cannot be empty")
	}

	file, err := os.OpenFile(fl.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := log.New(file, "", log.LstdFlags)
	logger.Println(message)

	return nil
}

// LogHarbour adapts a logharbour logger to the Logger interface.
type LogHarbour struct {
	*logharbour.Logger
}

func (lh *LogHarbour) Log(message string) error {
	lh.Info().LogActivity(message, nil)
	return nil
}

// NewLogHarbour builds a logharbour logger for app writing to w, with
// stderr as the fallback sink.
func NewLogHarbour(app string, w io.Writer) *LogHarbour {
	fallbackWriter := logharbour.NewFallbackWriter(w, os.Stderr)
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	return &LogHarbour{logharbour.NewLogger(lctx, app, fallbackWriter)}
}

// LoadLogger creates the default logger for a binary. By default that is
// a LogHarbour logger on stdout.
func LoadLogger(appName string) Logger {
	return NewLogHarbour(appName, os.Stdout)
}
