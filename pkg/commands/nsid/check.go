package nsid

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/atref/pkg/cmdhelper"
	"github.com/wuxler/atref/pkg/errdefs"
	"github.com/wuxler/atref/pkg/nsid"
	"github.com/wuxler/atref/pkg/xlog"
)

// NewCheckCommand returns a check command with default values.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{fs: afero.NewOsFs()}
}

// CheckCommand validates namespaced identifiers given as arguments or read
// from an input file.
type CheckCommand struct {
	InputFile string
	Quiet     bool

	fs afero.Fs
}

// ToCLI tranforms to a *cli.Command.
func (c *CheckCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate namespaced identifiers",
		ArgsUsage: "[NSID...]",
		Flags:     c.Flags(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *CheckCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       `read newline-delimited identifiers from the file specified, "-" for stdin`,
			Destination: &c.InputFile,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "only report invalid identifiers",
			Destination: &c.Quiet,
		},
	}
}

// Run implements *cli.Command Action function.
func (c *CheckCommand) Run(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if c.InputFile != "" {
		fromFile, err := c.readInputFile(cmd)
		if err != nil {
			return err
		}
		inputs = append(inputs, fromFile...)
	}
	if len(inputs) == 0 {
		return errdefs.Newf(errdefs.ErrInvalidParameter, "no identifiers provided")
	}

	invalid := 0
	for _, input := range inputs {
		if _, err := nsid.Parse(input); err != nil {
			invalid++
			reason := strings.ReplaceAll(err.Error(), "\n", ": ")
			cmdhelper.Fprintf(cmd.Writer, "invalid\t%s\t(%s)", input, reason)
			continue
		}
		if !c.Quiet {
			cmdhelper.Fprintf(cmd.Writer, "ok\t%s", input)
		}
	}
	xlog.C(ctx).Debugf("checked %d identifiers, %d invalid", len(inputs), invalid)
	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers are invalid", invalid, len(inputs))
	}
	return nil
}

func (c *CheckCommand) readInputFile(cmd *cli.Command) ([]string, error) {
	var r io.Reader
	if c.InputFile == "-" {
		r = cmd.Reader
	} else {
		f, err := c.fs.Open(c.InputFile)
		if err != nil {
			return nil, errdefs.NewE(errdefs.ErrInvalidParameter, err)
		}
		defer f.Close() //nolint:errcheck // read-only file
		r = f
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}
