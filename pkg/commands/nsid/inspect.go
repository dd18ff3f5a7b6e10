package nsid

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/atref/pkg/cmdhelper"
	"github.com/wuxler/atref/pkg/errdefs"
	"github.com/wuxler/atref/pkg/nsid"
)

// NewInspectCommand returns an inspect command with default values.
func NewInspectCommand() *InspectCommand {
	return &InspectCommand{
		Format: "text",
	}
}

// InspectCommand shows the structure of a namespaced identifier.
type InspectCommand struct {
	Format string
}

// ToCLI tranforms to a *cli.Command.
func (c *InspectCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the structure of a namespaced identifier",
		ArgsUsage: "NSID",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *InspectCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
	}
}

type inspectOutput struct {
	NSID      string   `json:"nsid" yaml:"nsid"`
	Authority string   `json:"authority" yaml:"authority"`
	Name      string   `json:"name" yaml:"name"`
	Segments  []string `json:"segments" yaml:"segments"`
}

// Run implements *cli.Command Action function.
func (c *InspectCommand) Run(_ context.Context, cmd *cli.Command) error {
	id, err := nsid.Parse(cmd.Args().First())
	if err != nil {
		return err
	}
	output := inspectOutput{
		NSID:      id.String(),
		Authority: id.Authority(),
		Name:      id.Name(),
		Segments:  slices.Collect(id.Segments()),
	}

	switch c.Format {
	case "text":
		cmdhelper.Fprintf(cmd.Writer, "NSID      : %s", output.NSID)
		cmdhelper.Fprintf(cmd.Writer, "Authority : %s", output.Authority)
		cmdhelper.Fprintf(cmd.Writer, "Name      : %s", output.Name)
		for i, segment := range output.Segments {
			cmdhelper.Fprintf(cmd.Writer, "Segment %d : %s", i, segment)
		}
	case "json":
		content, err := cmdhelper.PrettifyJSON(output)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", content)
	case "yaml", "yml":
		content, err := yaml.Marshal(output)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(cmd.Writer, string(content)); err != nil {
			return err
		}
	default:
		return errdefs.Newf(errdefs.ErrUnsupported, "unknown output format %q", c.Format)
	}
	return nil
}
