package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// verifyOutputCap bounds captured stdout/stderr per verification command.
const verifyOutputCap = 20_000

// perCommandTimeout bounds one detected verification command.
const perCommandTimeout = 5 * time.Minute

// VerifyCommand is one detected verification invocation.
type VerifyCommand struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Cmd   string   `json:"cmd"`
	Args  []string `json:"args"`
}

// VerifyResult is the outcome of running one VerifyCommand.
type VerifyResult struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Cmd        string   `json:"cmd"`
	Args       []string `json:"args"`
	Cwd        string   `json:"cwd"`
	ExitCode   int      `json:"exit_code"`
	Stdout     string   `json:"stdout"`
	Stderr     string   `json:"stderr"`
	DurationMs int64    `json:"duration_ms"`
	Error      string   `json:"error,omitempty"`
}

// GitSummary is the working repository's change summary. Both fields may
// be empty (not a git repo, or git unavailable).
type GitSummary struct {
	StatusPorcelain string `json:"status_porcelain"`
	DiffStat        string `json:"diff_stat"`
}

// Evidence is the local verification evidence embedded in the verifier
// prompt and persisted with the iteration artifacts.
type Evidence struct {
	Commands []VerifyCommand `json:"commands"`
	Results  []VerifyResult  `json:"results"`
	Git      GitSummary      `json:"git"`
}

// DetectVerifyCommands inspects dir for well-known build files and returns
// the verification commands to run. Detection is deterministic and the
// ordering is stable.
func DetectVerifyCommands(dir string) []VerifyCommand {
	var cmds []VerifyCommand

	if fileExists(filepath.Join(dir, "go.mod")) {
		cmds = append(cmds,
			VerifyCommand{ID: "go-vet", Label: "go vet", Cmd: "go", Args: []string{"vet", "./..."}},
			VerifyCommand{ID: "go-test", Label: "go test", Cmd: "go", Args: []string{"test", "./..."}},
		)
	}
	if scripts := readPackageScripts(filepath.Join(dir, "package.json")); scripts != nil {
		for _, name := range []string{"lint", "typecheck", "test", "build"} {
			if _, ok := scripts[name]; ok {
				cmds = append(cmds, VerifyCommand{
					ID:    "npm-" + name,
					Label: "npm run " + name,
					Cmd:   "npm",
					Args:  []string{"run", name},
				})
			}
		}
	}
	if fileExists(filepath.Join(dir, "Cargo.toml")) {
		cmds = append(cmds,
			VerifyCommand{ID: "cargo-check", Label: "cargo check", Cmd: "cargo", Args: []string{"check"}},
			VerifyCommand{ID: "cargo-test", Label: "cargo test", Cmd: "cargo", Args: []string{"test"}},
		)
	}
	if fileExists(filepath.Join(dir, "pyproject.toml")) {
		cmds = append(cmds, VerifyCommand{ID: "pytest", Label: "pytest", Cmd: "pytest", Args: nil})
	}
	return cmds
}

// CollectEvidence runs the detected verification commands in dir and
// gathers the git summary. Command failures are recorded, never returned.
func CollectEvidence(ctx context.Context, dir string) Evidence {
	ev := Evidence{Commands: DetectVerifyCommands(dir)}
	for _, cmd := range ev.Commands {
		ev.Results = append(ev.Results, runVerifyCommand(ctx, dir, cmd))
	}
	ev.Git = GitSummary{
		StatusPorcelain: runGit(ctx, dir, "status", "--porcelain"),
		DiffStat:        runGit(ctx, dir, "diff", "--stat"),
	}
	return ev
}

func runVerifyCommand(ctx context.Context, dir string, vc VerifyCommand) VerifyResult {
	result := VerifyResult{ID: vc.ID, Label: vc.Label, Cmd: vc.Cmd, Args: vc.Args, Cwd: dir}

	cmdCtx, cancel := context.WithTimeout(ctx, perCommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, vc.Cmd, vc.Args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result.DurationMs = time.Since(start).Milliseconds()
	result.Stdout = truncateChars(stdout.String(), verifyOutputCap)
	result.Stderr = truncateChars(stderr.String(), verifyOutputCap)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Error = err.Error()
		}
	}
	return result
}

func runGit(ctx context.Context, dir string, args ...string) string {
	cmdCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return string(out)
}

func readPackageScripts(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}
	return pkg.Scripts
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// truncateChars caps s at max runes-as-bytes; decisions and evidence are
// ASCII-dominated so byte truncation is acceptable.
func truncateChars(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
