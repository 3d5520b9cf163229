package consolidate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmaia/sped-consolidate/cmd/root"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cmd := root.Cmd
	if !cmd.HasSubCommands() {
		cmd.AddCommand(Cmd)
	}
	// Flags are bound to package-level vars; reset any value set by a
	// previous test so each Execute starts from the defaults.
	Cmd.Flags().Visit(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestConsolidateCommandWritesReport(t *testing.T) {
	dir := t.TempDir()
	icms := writeFixture(t, dir, "efd.txt", strings.Join([]string{
		"|0000|017|01012026|31122026|0|EMPRESA DEMO LTDA|12345678000195|SP|",
		"|E110|1000,00|0|0|0|200,00|0|0|0|0|0|0|0|0|0|",
	}, "\n"))
	out := filepath.Join(dir, "report.json")

	err := execute(t, "consolidate", "--efd-icms", icms, "-f", "json", "-o", out)

	require.NoError(t, err)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "EMPRESA DEMO LTDA")
	assert.Contains(t, string(content), `"icms": "1000"`)
}

func TestConsolidateCommandMissingInputFile(t *testing.T) {
	err := execute(t, "consolidate", "--ecd", filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestConsolidateCommandNoInputsYieldsZeroDataset(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.yaml")

	err := execute(t, "consolidate", "-f", "yaml", "-o", out)

	require.NoError(t, err)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "gross: \"0\"")
}
