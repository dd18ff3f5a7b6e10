package ref

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/atref/pkg/cmdhelper"
	"github.com/wuxler/atref/pkg/errdefs"
	"github.com/wuxler/atref/pkg/nsid"
)

// NewParseCommand returns a parse command with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Format: "text",
	}
}

// ParseCommand parses a reference and reports its shape and parts.
type ParseCommand struct {
	Format string
}

// ToCLI tranforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse an NSID reference, either fully-qualified or relative",
		ArgsUsage: "REF",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ParseCommand) Flags() []cli.Flag {
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

type parseOutput struct {
	Kind     string `json:"kind" yaml:"kind"`
	NSID     string `json:"nsid,omitempty" yaml:"nsid,omitempty"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Run implements *cli.Command Action function.
func (c *ParseCommand) Run(_ context.Context, cmd *cli.Command) error {
	parsed, err := nsid.ParseReference(cmd.Args().First())
	if err != nil {
		return err
	}

	var output parseOutput
	switch v := parsed.(type) {
	case nsid.FullReference:
		output.Kind = "full"
		output.NSID = v.NSID().String()
		if frag, ok := v.Fragment(); ok {
			output.Fragment = frag.String()
		}
	case nsid.Fragment:
		output.Kind = "relative"
		output.Fragment = v.String()
	}

	switch c.Format {
	case "text":
		cmdhelper.Fprintf(cmd.Writer, "Kind     : %s", output.Kind)
		if output.NSID != "" {
			cmdhelper.Fprintf(cmd.Writer, "NSID     : %s", output.NSID)
		}
		if output.Fragment != "" {
			cmdhelper.Fprintf(cmd.Writer, "Fragment : %s", output.Fragment)
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
