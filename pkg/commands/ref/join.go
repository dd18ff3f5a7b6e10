package ref

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/atref/pkg/cmdhelper"
	"github.com/wuxler/atref/pkg/nsid"
)

// NewJoinCommand returns a join command with default values.
func NewJoinCommand() *JoinCommand {
	return &JoinCommand{}
}

// JoinCommand composes a fully-qualified reference from an NSID and an
// optional fragment.
type JoinCommand struct{}

// ToCLI tranforms to a *cli.Command.
func (c *JoinCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "join",
		Usage:     "Compose a fully-qualified reference from an NSID and an optional fragment",
		ArgsUsage: "NSID [FRAGMENT]",
		Before:    cli.BeforeFunc(cmdhelper.RangeArgs(1, 2)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *JoinCommand) Run(_ context.Context, cmd *cli.Command) error {
	id, err := nsid.Parse(cmd.Args().First())
	if err != nil {
		return err
	}

	full := id.FullReference()
	if cmd.Args().Len() == 2 {
		raw := cmd.Args().Get(1)
		if !strings.HasPrefix(raw, "#") {
			raw = "#" + raw
		}
		frag, err := nsid.ParseFragment(raw)
		if err != nil {
			return err
		}
		full = id.WithFragment(frag)
	}
	cmdhelper.Fprintf(cmd.Writer, "%s", full)
	return nil
}
