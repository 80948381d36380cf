package engine

import (
	"fmt"
	"strings"

	"github.com/agx-dev/agx/pkg/taskservice"
)

// Verifier prompt abbreviation limits.
const (
	gitStatusMaxLines = 80
	gitDiffMaxLines   = 60
)

// defaultExecuteInstruction seeds iteration 1 when no prior decision
// carried a next_prompt.
const defaultExecuteInstruction = "Pick the next most valuable step toward completing the task and do it."

// stageObjectives describe what each stage is trying to achieve; embedded
// in the verifier prompt so the adjudication is stage-aware.
var stageObjectives = map[string]string{
	taskservice.StageIdeation:     "Clarify the task into a concrete, actionable goal.",
	taskservice.StagePlanning:     "Produce a concrete implementation plan for the task.",
	taskservice.StageExecution:    "Implement the planned changes in the working repository.",
	taskservice.StageVerification: "Confirm the implemented changes satisfy the task.",
}

// stageRequirements name the evidence a done decision must carry per stage.
var stageRequirements = map[string]string{
	taskservice.StagePlanning:     "A done decision must include plan_md.",
	taskservice.StageExecution:    "A done decision must include implementation_summary_md.",
	taskservice.StageVerification: "A done decision must include verification_md.",
}

// BuildExecutePrompt assembles the per-iteration execute prompt. Iteration 1
// carries the initial prompt context; later iterations carry the previous
// decision's next_prompt.
func BuildExecutePrompt(iteration int, initialContext, nextPrompt string) string {
	instruction := nextPrompt
	if instruction == "" {
		instruction = defaultExecuteInstruction
	}
	if iteration == 1 && initialContext != "" {
		return initialContext + "\n\n" + instruction
	}
	return instruction
}

// AugmentNextPrompt prefixes the next execute prompt with bullets
// summarizing the previous iteration's decision so the provider keeps
// context across iterations.
func AugmentNextPrompt(nextPrompt string, prev Decision) string {
	var b strings.Builder
	b.WriteString("Context from the previous iteration:\n")
	fmt.Fprintf(&b, "- decision: %s\n", prev.Decision)
	fmt.Fprintf(&b, "- summary: %s\n", prev.Summary)
	fmt.Fprintf(&b, "- explanation: %s\n", prev.Explanation)
	fmt.Fprintf(&b, "- final_result: %s\n", prev.FinalResult)
	b.WriteString("\n")
	b.WriteString(nextPrompt)
	return b.String()
}

// BuildVerifyPrompt assembles the verifier prompt: task identity, stage
// objective and completion requirement, abbreviated local verification
// evidence, and the JSON response contract. The result is truncated to
// maxChars.
func BuildVerifyPrompt(task *taskservice.Task, evidence Evidence, maxChars int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are verifying task %q (slug %s) in stage %q.\n", task.Title, task.Slug, task.Stage)
	if obj, ok := stageObjectives[task.Stage]; ok {
		fmt.Fprintf(&b, "Stage objective: %s\n", obj)
	}
	if req, ok := stageRequirements[task.Stage]; ok {
		fmt.Fprintf(&b, "Completion requirement: %s\n", req)
	}

	b.WriteString("\nLocal verification evidence:\n")
	if len(evidence.Results) == 0 {
		b.WriteString("(no verification commands detected)\n")
	}
	for _, result := range evidence.Results {
		fmt.Fprintf(&b, "%s => exit=%d %dms\n", result.Label, result.ExitCode, result.DurationMs)
	}
	if status := headLines(evidence.Git.StatusPorcelain, gitStatusMaxLines); status != "" {
		b.WriteString("\ngit status --porcelain:\n")
		b.WriteString(status)
		b.WriteString("\n")
	}
	if diff := headLines(evidence.Git.DiffStat, gitDiffMaxLines); diff != "" {
		b.WriteString("\ngit diff --stat:\n")
		b.WriteString(diff)
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with a single JSON object with fields: ")
	b.WriteString(`{"done": boolean, "decision": "done|blocked|not_done|failed", `)
	b.WriteString(`"explanation": string, "final_result": string, "next_prompt": string, "summary": string}`)
	b.WriteString(". Optional fields: plan_md, implementation_summary_md, verification_md.\n")

	return truncateChars(b.String(), maxChars)
}

// headLines keeps at most max lines of s, trimming the trailing newline.
func headLines(s string, max int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	return strings.Join(lines, "\n")
}
