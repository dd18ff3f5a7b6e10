package nsid

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheck(t *testing.T, c *CheckCommand, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := c.ToCLI()
	buf := &bytes.Buffer{}
	cmd.Writer = buf
	cmd.Reader = strings.NewReader(stdin)
	err := cmd.Run(context.Background(), append([]string{"check"}, args...))
	return buf.String(), err
}

func TestCheckCommand_Args(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	output, err := runCheck(t, c, "", "com.example.fooBar", "a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "ok\tcom.example.fooBar\nok\ta.b.c\n", output)
}

func TestCheckCommand_InvalidInputs(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	output, err := runCheck(t, c, "", "com.example.fooBar", "com.example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 identifiers are invalid")
	assert.Contains(t, output, "ok\tcom.example.fooBar")
	assert.Contains(t, output, "invalid\tcom.example")
}

func TestCheckCommand_Quiet(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	output, err := runCheck(t, c, "", "-q", "com.example.fooBar", "com.example")
	require.Error(t, err)
	assert.NotContains(t, output, "ok\t")
	assert.Contains(t, output, "invalid\tcom.example")
}

func TestCheckCommand_InputFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "com.example.fooBar\n\nnet.users.bob.ping\n"
	require.NoError(t, afero.WriteFile(fs, "ids.txt", []byte(content), 0o644))

	c := &CheckCommand{fs: fs}
	output, err := runCheck(t, c, "", "-i", "ids.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok\tcom.example.fooBar\nok\tnet.users.bob.ping\n", output)
}

func TestCheckCommand_InputFileMissing(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	_, err := runCheck(t, c, "", "-i", "missing.txt")
	assert.Error(t, err)
}

func TestCheckCommand_Stdin(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	output, err := runCheck(t, c, "a.b.c\ncn.8.lex.stuff\n", "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "ok\ta.b.c\nok\tcn.8.lex.stuff\n", output)
}

func TestCheckCommand_NoInputs(t *testing.T) {
	c := &CheckCommand{fs: afero.NewMemMapFs()}
	_, err := runCheck(t, c, "")
	assert.Error(t, err)
}
