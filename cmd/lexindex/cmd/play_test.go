package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordinalab/lexindex/internal/exitcode"
)

func TestPlayCmd_RequiresTerminal(t *testing.T) {
	// Given: output captured in a buffer, which is not a terminal
	isolateConfig(t)

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"play"})

	// When: executing
	err := cmd.Execute()

	// Then: the playground refuses to draw into a pipe
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	assert.Equal(t, exitcode.Usage, exitcode.FromError(err))
}

func TestPlayCmd_HasCountFlag(t *testing.T) {
	// Given: the play command
	cmd := NewRootCmd()
	playCmd, _, err := cmd.Find([]string{"play"})
	require.NoError(t, err)

	// Then: the seed count defaults to the configured value
	flag := playCmd.Flags().Lookup("count")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
	assert.Equal(t, "n", flag.Shorthand)
}

func TestPlayCmd_ShowsKeybindingsInHelp(t *testing.T) {
	// Given: the play command
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"play", "--help"})

	// When: asking for help
	err := cmd.Execute()

	// Then: the keybindings are documented
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "insert above")
	assert.Contains(t, buf.String(), "q quit")
}
