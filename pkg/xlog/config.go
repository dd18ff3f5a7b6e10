package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging config.
func NewConfig() Config {
	return Config{
		Level:        slog.LevelInfo,
		AddSource:    true,
		AttrReplacer: NormalizeSourceAttrReplacer(),
		StdFormat:    "text",
		StdWriter:    os.Stdout,
		Path:         "",
		MaxSize:      30,
		MaxAge:       0,
		MaxBackups:   0,
		Compress:     false,
	}
}

// Config is the logging config.
type Config struct {
	// Level is the minimum level to output, defaults to LevelInfo.
	Level slog.Level
	// AddSource enables logging the file and position of the caller.
	AddSource bool
	// AttrReplacer rewrites specific attributes, defaults to NormalizeSourceAttrReplacer.
	AttrReplacer AttrReplacer

	// StdFormat is the format of the standard output, oneof ["text", "json"].
	StdFormat string
	// StdWriter is the io.Writer of the standard output, defaults to os.Stdout.
	StdWriter io.Writer

	// Path is the log file path. Empty disables file output.
	Path string
	// MaxSize is the maximum size in MB of a single log file before it gets rotated, defaults to 30 MB.
	MaxSize int
	// MaxAge is the maximum number of days to retain old log files, defaults to unlimited.
	MaxAge int
	// MaxBackups is the maximum number of old log files to retain, defaults to unlimited.
	MaxBackups int
	// Compress enables compression of rotated log files, disabled by default.
	Compress bool
}

// BuildHandler creates a new slog.Handler with config.
func (c *Config) BuildHandler() slog.Handler {
	opts := c.buildHandlerOptions()
	if c.StdFormat == "json" {
		writer := c.StdWriter
		if fw := c.buildFileWriter(); fw != nil {
			writer = io.MultiWriter(c.StdWriter, c.buildFileWriter())
		}
		return NewLeveledHandlerCreator(JSONHandlerCreator)(writer, opts)
	}

	// console output format as "text"
	handlers := []slog.Handler{}

	stdHandler := NewLeveledHandlerCreator(TextHandlerCreator)(c.StdWriter, opts)
	handlers = append(handlers, stdHandler)

	if fw := c.buildFileWriter(); fw != nil {
		fileHandler := NewLeveledHandlerCreator(JSONHandlerCreator)(fw, opts)
		handlers = append(handlers, fileHandler)
	}
	return MultiHandler(handlers...)
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		// no log file path configured
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

func (c *Config) buildHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   c.AddSource,
		Level:       c.Level,
		ReplaceAttr: c.AttrReplacer,
	}
}
