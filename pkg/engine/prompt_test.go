package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agx-dev/agx/pkg/taskservice"
)

func TestBuildExecutePromptFirstIteration(t *testing.T) {
	p := BuildExecutePrompt(1, "Task context here.", "")
	assert.True(t, strings.HasPrefix(p, "Task context here."))
	assert.Contains(t, p, defaultExecuteInstruction)
}

func TestBuildExecutePromptLaterIterations(t *testing.T) {
	p := BuildExecutePrompt(2, "Task context here.", "Fix the failing test.")
	assert.Equal(t, "Fix the failing test.", p)
	assert.NotContains(t, p, "Task context here.")
}

func TestAugmentNextPrompt(t *testing.T) {
	prev := Decision{
		Decision:    DecisionNotDone,
		Summary:     "implemented half",
		Explanation: "tests missing",
		FinalResult: "partial",
	}
	p := AugmentNextPrompt("Write the tests.", prev)
	assert.Contains(t, p, "- decision: not_done")
	assert.Contains(t, p, "- summary: implemented half")
	assert.Contains(t, p, "- explanation: tests missing")
	assert.Contains(t, p, "- final_result: partial")
	assert.True(t, strings.HasSuffix(p, "Write the tests."))
}

func TestBuildVerifyPromptIncludesEvidence(t *testing.T) {
	task := &taskservice.Task{Title: "Fix login", Slug: "fix-login", Stage: taskservice.StageExecution}
	ev := Evidence{
		Results: []VerifyResult{
			{Label: "go test", ExitCode: 1, DurationMs: 820},
		},
		Git: GitSummary{StatusPorcelain: " M auth.go\n", DiffStat: " auth.go | 4 +-\n"},
	}

	p := BuildVerifyPrompt(task, ev, 6000)
	assert.Contains(t, p, "slug fix-login")
	assert.Contains(t, p, "go test => exit=1 820ms")
	assert.Contains(t, p, " M auth.go")
	assert.Contains(t, p, "implementation_summary_md")
	assert.Contains(t, p, `"decision"`)
}

func TestBuildVerifyPromptTruncates(t *testing.T) {
	task := &taskservice.Task{Title: "T", Slug: "t", Stage: taskservice.StageExecution}
	ev := Evidence{Git: GitSummary{StatusPorcelain: strings.Repeat("M very/long/path\n", 70)}}

	p := BuildVerifyPrompt(task, ev, 500)
	assert.Len(t, p, 500)
}

func TestBuildVerifyPromptAbbreviatesGitStatus(t *testing.T) {
	task := &taskservice.Task{Title: "T", Slug: "t", Stage: taskservice.StageExecution}
	ev := Evidence{Git: GitSummary{StatusPorcelain: strings.Repeat("M f\n", 200)}}

	p := BuildVerifyPrompt(task, ev, 100_000)
	assert.Equal(t, gitStatusMaxLines, strings.Count(p, "M f"))
}
