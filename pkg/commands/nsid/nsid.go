// Package nsid provides commands to validate and inspect namespaced
// identifiers.
package nsid

import (
	"github.com/urfave/cli/v3"
)

// New creates a new NSIDCommand.
func New() *NSIDCommand {
	return &NSIDCommand{}
}

// NSIDCommand is the group command for namespaced identifier operations.
type NSIDCommand struct{}

// ToCLI tranforms to a *cli.Command.
func (c *NSIDCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "nsid",
		Usage: "Validate and inspect namespaced identifiers",
		Commands: []*cli.Command{
			NewCheckCommand().ToCLI(),
			NewInspectCommand().ToCLI(),
		},
	}
}
