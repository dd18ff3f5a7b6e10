// Package ref provides commands to parse and compose NSID references.
package ref

import (
	"github.com/urfave/cli/v3"
)

// New creates a new RefCommand.
func New() *RefCommand {
	return &RefCommand{}
}

// RefCommand is the group command for NSID reference operations.
type RefCommand struct{}

// ToCLI tranforms to a *cli.Command.
func (c *RefCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "ref",
		Usage: "Parse and compose NSID references",
		Commands: []*cli.Command{
			NewParseCommand().ToCLI(),
			NewJoinCommand().ToCLI(),
		},
	}
}
