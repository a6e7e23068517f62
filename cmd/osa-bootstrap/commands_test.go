// cmd/osa-bootstrap/commands_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test CLI wiring

package osabootstrap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdHasAllSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"run", "wrapper", "genconfig", "version", "completion"} {
		assert.True(t, names[expected], "missing subcommand %q", expected)
	}
}

func TestRootWithoutSubcommandFails(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestCompletionGeneratesBash(t *testing.T) {
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"completion", "bash"})

	require.NoError(t, root.Execute())
	assert.True(t, strings.Contains(out.String(), "osa-bootstrap"))
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"completion", "powershell"})

	assert.Error(t, root.Execute())
}
