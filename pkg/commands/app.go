// Package commands assembles the cli commands of the application.
package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/atref/pkg/commands/internal/options"
	"github.com/wuxler/atref/pkg/commands/nsid"
	"github.com/wuxler/atref/pkg/commands/ref"
)

// NewApp assembles the root command of the application.
func NewApp(name string) *cli.Command {
	common := options.NewCommonOptions()
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate and inspect AT Protocol namespaced identifiers",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags:                 common.Flags(),
		Before: func(ctx context.Context, cmd *cli.Command) error {
			common.ConfigureLogger()
			return nil
		},
		Commands: []*cli.Command{
			NewVersionCommand().ToCLI(),
			nsid.New().ToCLI(),
			ref.New().ToCLI(),
		},
	}
}
