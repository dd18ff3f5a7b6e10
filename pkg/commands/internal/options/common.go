// Package options defines shared flag sets for the cli commands.
package options

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/atref/pkg/xlog"
)

// NewCommonOptions returns a *CommonOptions with default values.
func NewCommonOptions() *CommonOptions {
	return &CommonOptions{}
}

// CommonOptions are options that are common to all commands.
type CommonOptions struct {
	Debug   bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *CommonOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Sources:     cli.EnvVars("ATREF_DEBUG"),
			Usage:       "enable debug mode",
			Destination: &o.Debug,
			Persistent:  true,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Sources:     cli.EnvVars("ATREF_LOG_FILE"),
			Usage:       "write json logs to the file specified",
			Destination: &o.LogFile,
			Persistent:  true,
		},
	}
}

// ConfigureLogger rebuilds the default logger from the options.
func (o *CommonOptions) ConfigureLogger() {
	c := xlog.NewConfig()
	if o.Debug {
		c.Level = slog.LevelDebug
	}
	c.Path = o.LogFile
	xlog.SetDefault(xlog.New(c))
}
