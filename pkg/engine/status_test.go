package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agx-dev/agx/pkg/taskservice"
)

const patchNow = "2020-01-01T00:00:00.000Z"

func TestTerminalPatchDoneDecisionPromotesStage(t *testing.T) {
	patch := BuildCloudTaskTerminalPatch("done", "progress", patchNow)
	require.NotNil(t, patch)
	require.NotNil(t, patch.Stage)
	assert.Equal(t, "done", *patch.Stage)
	require.NotNil(t, patch.Status)
	assert.Equal(t, taskservice.StatusCompleted, *patch.Status)
	require.NotNil(t, patch.CompletedAt)
	assert.Equal(t, patchNow, *patch.CompletedAt)
}

func TestTerminalPatchNonTerminalPassthrough(t *testing.T) {
	assert.Nil(t, BuildCloudTaskTerminalPatch("not_done", "execution", patchNow))
}

func TestTerminalPatchTable(t *testing.T) {
	decisions := []string{"done", "blocked", "not_done", "failed"}
	stages := []string{"ideation", "planning", "execution", "verification", "done"}

	for _, decision := range decisions {
		for _, stage := range stages {
			patch := BuildCloudTaskTerminalPatch(decision, stage, patchNow)

			switch {
			case stage == "done":
				require.NotNil(t, patch, "%s/%s", decision, stage)
				assert.Equal(t, taskservice.StatusCompleted, *patch.Status)
				assert.Equal(t, patchNow, *patch.CompletedAt)
			case decision == "done":
				require.NotNil(t, patch, "%s/%s", decision, stage)
				assert.Equal(t, "done", *patch.Stage)
				assert.Equal(t, taskservice.StatusCompleted, *patch.Status)
			case decision == "failed":
				require.NotNil(t, patch, "%s/%s", decision, stage)
				assert.Equal(t, taskservice.StatusFailed, *patch.Status)
				assert.Equal(t, patchNow, *patch.CompletedAt)
			case decision == "blocked":
				require.NotNil(t, patch, "%s/%s", decision, stage)
				assert.Equal(t, taskservice.StatusBlocked, *patch.Status)
				assert.Nil(t, patch.CompletedAt)
			default:
				assert.Nil(t, patch, "%s/%s", decision, stage)
			}
		}
	}
}

func TestTerminalPatchIsPure(t *testing.T) {
	first := BuildCloudTaskTerminalPatch("failed", "execution", patchNow)
	second := BuildCloudTaskTerminalPatch("failed", "execution", patchNow)
	assert.Equal(t, first, second)
}
