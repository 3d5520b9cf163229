package root

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestExecuteBuildsContainer(t *testing.T) {
	chdir(t, t.TempDir())
	Cmd.SetArgs([]string{})

	err := Execute()

	require.NoError(t, err)
	require.NotNil(t, App)
	assert.NotNil(t, App.Parser())
	assert.NotNil(t, App.Consolidator())
}

func TestSetScheduleFunc(t *testing.T) {
	chdir(t, t.TempDir())
	SetScheduleFunc(func(int) decimal.Decimal { return decimal.NewFromFloat(0.25) })
	t.Cleanup(func() { SetScheduleFunc(nil) })

	Cmd.SetArgs([]string{})
	require.NoError(t, Execute())
	assert.NotNil(t, App)
}
