package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVerifyCommandsGoModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))

	cmds := DetectVerifyCommands(dir)
	require.Len(t, cmds, 2)
	assert.Equal(t, "go-vet", cmds[0].ID)
	assert.Equal(t, "go-test", cmds[1].ID)
}

func TestDetectVerifyCommandsPackageScripts(t *testing.T) {
	dir := t.TempDir()
	pkg := `{"scripts":{"test":"vitest","lint":"eslint .","deploy":"true"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0o644))

	cmds := DetectVerifyCommands(dir)
	require.Len(t, cmds, 2)
	// Stable ordering regardless of map iteration: lint before test.
	assert.Equal(t, "npm-lint", cmds[0].ID)
	assert.Equal(t, "npm-test", cmds[1].ID)
	assert.Equal(t, []string{"run", "lint"}, cmds[0].Args)
}

func TestDetectVerifyCommandsEmptyDir(t *testing.T) {
	assert.Empty(t, DetectVerifyCommands(t.TempDir()))
}

func TestDetectVerifyCommandsDeterministic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\n"), 0o644))

	first := DetectVerifyCommands(dir)
	second := DetectVerifyCommands(dir)
	assert.Equal(t, first, second)
	require.Len(t, first, 4)
	assert.Equal(t, "go-vet", first[0].ID)
	assert.Equal(t, "cargo-check", first[2].ID)
}

func TestRunVerifyCommandCapturesOutput(t *testing.T) {
	dir := t.TempDir()
	result := runVerifyCommand(context.Background(), dir, VerifyCommand{
		ID: "echo", Label: "echo", Cmd: "/bin/sh", Args: []string{"-c", "echo ok; echo warn >&2"},
	})
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "ok\n", result.Stdout)
	assert.Equal(t, "warn\n", result.Stderr)
	assert.Equal(t, dir, result.Cwd)
	assert.Empty(t, result.Error)
}

func TestRunVerifyCommandNonZeroExit(t *testing.T) {
	result := runVerifyCommand(context.Background(), t.TempDir(), VerifyCommand{
		ID: "fail", Label: "fail", Cmd: "/bin/sh", Args: []string{"-c", "exit 4"},
	})
	assert.Equal(t, 4, result.ExitCode)
}

func TestRunVerifyCommandMissingBinary(t *testing.T) {
	result := runVerifyCommand(context.Background(), t.TempDir(), VerifyCommand{
		ID: "missing", Label: "missing", Cmd: "definitely-not-a-binary-xyz",
	})
	assert.Equal(t, -1, result.ExitCode)
	assert.NotEmpty(t, result.Error)
}

func TestRunVerifyCommandCapsOutput(t *testing.T) {
	result := runVerifyCommand(context.Background(), t.TempDir(), VerifyCommand{
		ID: "big", Label: "big", Cmd: "/bin/sh",
		Args: []string{"-c", "head -c 30000 /dev/zero | tr '\\0' 'y'"},
	})
	assert.Len(t, result.Stdout, verifyOutputCap)
}

func TestCollectEvidenceEmptyNonGitDir(t *testing.T) {
	ev := CollectEvidence(context.Background(), t.TempDir())
	assert.Empty(t, ev.Commands)
	assert.Empty(t, ev.Results)
	assert.Empty(t, ev.Git.StatusPorcelain)
	assert.Empty(t, ev.Git.DiffStat)
}

func TestTruncateChars(t *testing.T) {
	assert.Equal(t, "abc", truncateChars("abc", 10))
	assert.Equal(t, "ab", truncateChars("abcdef", 2))
	assert.Equal(t, "", truncateChars("", 5))
}

func TestHeadLines(t *testing.T) {
	in := strings.Repeat("line\n", 10)
	assert.Equal(t, 3, strings.Count(headLines(in, 3), "line"))
	assert.Equal(t, "", headLines("", 5))
	assert.Equal(t, "a\nb", headLines("a\nb\n", 5))
}
