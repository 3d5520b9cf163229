package parse

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmaia/sped-consolidate/cmd/root"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cmd := root.Cmd
	if !cmd.HasSubCommands() {
		cmd.AddCommand(Cmd)
	}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return buf.String(), err
}

func TestParseCommand(t *testing.T) {
	content := strings.Join([]string{
		"|0000|017|01012023|31122023|0|EMPRESA DEMO LTDA|12345678000195|SP|",
		"|E110|1000,00|0|0|0|200,00|0|0|0|0|0|0|0|0|0|",
		"garbage line",
	}, "\n")
	path := filepath.Join(t.TempDir(), "efd.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "parse", "-i", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Detected variant: efd-icms")
	assert.Contains(t, out, "EMPRESA DEMO LTDA")
	assert.Contains(t, out, "Lines processed: 3 (errors: 1), valid records: 2, record types: 2")
	assert.Contains(t, out, "E110: 1")
}

func TestParseCommandMissingFile(t *testing.T) {
	_, err := execute(t, "parse", "-i", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestParseCommandNoValidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing here\n"), 0644))

	_, err := execute(t, "parse", "-i", path)
	assert.Error(t, err)
}
