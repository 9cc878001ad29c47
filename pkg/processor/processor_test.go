package processor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pathfix/win2nix/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return logger.WithContext(context.Background())
}

func newProcessor(t *testing.T, opts Options, console *bytes.Buffer) *Processor {
	t.Helper()
	opts.Formatter = status.NewDefaultFileFormatter()
	opts.Console = console
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_RequiresFormatter(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatter is required")
}

func TestProcessFile_RewritesQuotedPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "settings.ini", `EnginePath="C:\\Games\\Engine\\bin.exe"`)

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Replacements)
	assert.True(t, result.Changed)
	assert.Equal(t, `EnginePath="C:/Games/Engine/bin.exe"`, readTestFile(t, path))
}

func TestProcessFile_DryRunLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	original := `EnginePath="C:\\Games\\Engine\\bin.exe"`
	path := writeTestFile(t, dir, "settings.ini", original)

	var console bytes.Buffer
	p := newProcessor(t, Options{DryRun: true}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Replacements)
	assert.Equal(t, original, readTestFile(t, path))
}

func TestProcessFile_ZeroReplacementsNoWrite(t *testing.T) {
	dir := t.TempDir()
	original := `msg = "Line1\nLine2"`
	path := writeTestFile(t, dir, "code.cs", original)
	before, err := os.Stat(path)
	require.NoError(t, err)

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Replacements)
	assert.False(t, result.Changed)
	assert.Equal(t, original, readTestFile(t, path))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestProcessFile_PreservesFileMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "private.ini")
	require.NoError(t, os.WriteFile(path, []byte(`p="C:\\X\\y.txt"`), 0o600))

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	require.True(t, result.Changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestProcessFile_AggressiveMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "build.bat", `copy Foo\Bar\Baz.txt %DEST%`)

	var console bytes.Buffer
	p := newProcessor(t, Options{Aggressive: true}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Replacements, 1)
	assert.Equal(t, `copy Foo/Bar/Baz.txt %DEST%`, readTestFile(t, path))
}

func TestProcessFile_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.ini")
	// "path=\"C:\\café\"" in Latin-1: 0xE9 is not valid UTF-8
	content := append([]byte(`path="C:\\caf`), 0xE9, '"')
	require.NoError(t, os.WriteFile(path, content, 0o644))

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	result, err := p.ProcessFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Replacements)
	// written back as UTF-8
	assert.Equal(t, `path="C:/café"`, readTestFile(t, path))
}

func TestRun_SequentialTotalsAndErrorIsolation(t *testing.T) {
	dir := t.TempDir()
	changed := writeTestFile(t, dir, "a.ini", `p="C:\\X\\y.txt"`)
	untouched := writeTestFile(t, dir, "b.ini", `p="nothing here"`)
	missing := filepath.Join(dir, "missing.ini")

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	totals, err := p.Run(testContext(t), []string{changed, missing, untouched})
	require.NoError(t, err)

	assert.Equal(t, 3, totals.FilesProcessed)
	assert.Equal(t, 1, totals.FilesChanged)
	assert.Equal(t, 1, totals.Replacements)
	assert.Equal(t, 1, totals.FilesSkipped)

	out := console.String()
	assert.Contains(t, out, "[FIX]")
	assert.Contains(t, out, "[SKIP]")
	assert.Contains(t, out, "missing.ini")
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeTestFile(t, dir, "a.ini", `p="C:\\A\\a.txt"`),
		writeTestFile(t, dir, "b.ini", `p="C:\\B\\b.txt"; q='C\D'`),
		writeTestFile(t, dir, "c.ini", `no paths at all`),
		writeTestFile(t, dir, "d.ini", `p="E\F"`),
	}

	var console bytes.Buffer
	p := newProcessor(t, Options{Parallel: 4}, &console)

	totals, err := p.Run(testContext(t), paths)
	require.NoError(t, err)

	assert.Equal(t, 4, totals.FilesProcessed)
	assert.Equal(t, 3, totals.FilesChanged)
	assert.Equal(t, 4, totals.Replacements)
	assert.Equal(t, 0, totals.FilesSkipped)

	assert.Equal(t, `p="C:/A/a.txt"`, readTestFile(t, paths[0]))
	assert.Equal(t, `p="C:/B/b.txt"; q='C/D'`, readTestFile(t, paths[1]))
	assert.Equal(t, `p="E/F"`, readTestFile(t, paths[3]))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	var console bytes.Buffer
	p := newProcessor(t, Options{}, &console)

	_, err := p.Run(ctx, []string{"whatever.ini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}
