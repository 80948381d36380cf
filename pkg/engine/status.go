package engine

import "github.com/agx-dev/agx/pkg/taskservice"

// BuildCloudTaskTerminalPatch aligns the remote task's status with a stage
// completion. Returns nil when no repair is needed. Pure.
//
// A done decision promotes the task to the done stage even when the stage
// machine only advanced to an intermediate stage, so board status and stage
// cannot drift apart.
func BuildCloudTaskTerminalPatch(decision, newStage, nowIso string) *taskservice.TaskPatch {
	completed := taskservice.StatusCompleted
	failed := taskservice.StatusFailed
	blocked := taskservice.StatusBlocked
	doneStage := taskservice.StageDone

	switch {
	case newStage == taskservice.StageDone:
		return &taskservice.TaskPatch{Status: &completed, CompletedAt: &nowIso}
	case decision == DecisionDone:
		return &taskservice.TaskPatch{Stage: &doneStage, Status: &completed, CompletedAt: &nowIso}
	case decision == DecisionFailed:
		return &taskservice.TaskPatch{Status: &failed, CompletedAt: &nowIso}
	case decision == DecisionBlocked:
		return &taskservice.TaskPatch{Status: &blocked}
	default:
		return nil
	}
}
