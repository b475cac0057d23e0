package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/dispatchbench/report"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := newRootCmd(logger, &out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--groups", "class,shuffle", "--kinds", "3")
	require.NoError(t, err)

	assert.Equal(t,
		"class:\n  class_1\n  class_2\n  class_3\nshuffle:\n  shuffle_2\n  shuffle_3\n",
		out)
}

func TestListCommandUnknownGroup(t *testing.T) {
	_, err := execute(t, "list", "--groups", "nope")
	assert.Error(t, err)
}

func TestRunCommandJSON(t *testing.T) {
	out, err := execute(t, "run",
		"--size", "200",
		"--bench", "^class_2$",
		"--benchtime", "2ms",
		"--json",
	)
	require.NoError(t, err)

	var run report.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run))

	require.Len(t, run.Results, 1)
	assert.Equal(t, "class_2", run.Results[0].Name)
	assert.Equal(t, 300, run.Results[0].Sum)
	assert.Equal(t, 200, run.Settings.Size)
	assert.NotEmpty(t, run.ID)
}

func TestRunCommandTable(t *testing.T) {
	out, err := execute(t, "run",
		"--size", "100",
		"--groups", "shuffle",
		"--kinds", "2",
		"--benchtime", "2ms",
	)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "## Benchmark Results"))
	assert.Contains(t, out, "shuffle_2")
	assert.Contains(t, out, "1.00x")
}

func TestRunCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"size: 50\nbench: \"^elements_range_slice$\"\nbenchtime: 2ms\njson: true\n",
	), 0o644))

	out, err := execute(t, "run", "--config", path, "--size", "40")
	require.NoError(t, err)

	var run report.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run))

	require.Len(t, run.Results, 1)
	assert.Equal(t, "elements_range_slice", run.Results[0].Name)
	assert.Equal(t, 40, run.Settings.Size, "flag overrides file")
	assert.Equal(t, 40, run.Results[0].Elements)
}

func TestRunCommandNamedCases(t *testing.T) {
	out, err := execute(t, "run",
		"--size", "30",
		"--benchtime", "2ms",
		"--json",
		"shuffle_3", "class_1",
	)
	require.NoError(t, err)

	var run report.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run))

	require.Len(t, run.Results, 2)
	assert.Equal(t, "shuffle_3", run.Results[0].Name)
	assert.Equal(t, 60, run.Results[0].Sum)
	assert.Equal(t, "class_1", run.Results[1].Name)

	_, err = execute(t, "list", "no_such_case")
	assert.Error(t, err)
}

func TestRunCommandCPUProfile(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "run",
		"--size", "100",
		"--benchtime", "2ms",
		"--cpuprofile", dir,
		"class_1",
	)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)

	assert.Contains(t, out, "| 0 | Processor0 | 1 |")
	assert.Contains(t, out, "| 19 | Processor19 | 43 |")
	assert.Equal(t, 22, strings.Count(out, "\n"))
}

func TestRunCommandInvalidSettings(t *testing.T) {
	_, err := execute(t, "run", "--kinds", "21")
	assert.Error(t, err)

	_, err = execute(t, "run", "--bench", "no_such_case")
	assert.Error(t, err)
}
