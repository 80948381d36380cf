package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecisionTakesLastObject(t *testing.T) {
	stdout := `thinking...
{"decision":"not_done","explanation":"first pass"}
more text
{"done":true,"decision":"done","explanation":"all green","final_result":"shipped","summary":"ok","next_prompt":""}`

	d, ok := ParseDecision(stdout, "")
	require.True(t, ok)
	assert.Equal(t, "done", d.Decision)
	assert.Equal(t, "all green", d.Explanation)
}

func TestParseDecisionSkipsNestedObjects(t *testing.T) {
	stdout := `{"decision":"done","explanation":"x","meta":{"nested":"object"}}`
	d, ok := ParseDecision(stdout, "")
	require.True(t, ok)
	assert.Equal(t, "done", d.Decision)
	require.Contains(t, d.Extra, "meta")
}

func TestParseDecisionFallsBackToStderr(t *testing.T) {
	d, ok := ParseDecision("no json here", `{"decision":"blocked","explanation":"creds missing"}`)
	require.True(t, ok)
	assert.Equal(t, "blocked", d.Decision)
}

func TestParseDecisionNoJSON(t *testing.T) {
	_, ok := ParseDecision("plain text", "also plain")
	assert.False(t, ok)
}

func TestParseDecisionIgnoresMalformed(t *testing.T) {
	stdout := `{"decision": broken} {"decision":"done","explanation":"after malformed"}`
	d, ok := ParseDecision(stdout, "")
	require.True(t, ok)
	assert.Equal(t, "done", d.Decision)
}

func TestNormalizeDecisionClampsUnknown(t *testing.T) {
	d := NormalizeDecision(Decision{Decision: "maybe"})
	assert.Equal(t, DecisionFailed, d.Decision)
	assert.False(t, d.Done)
}

func TestNormalizeDecisionFillsFallbacks(t *testing.T) {
	d := NormalizeDecision(Decision{Decision: DecisionNotDone})
	assert.NotEmpty(t, d.Explanation)
	assert.NotEmpty(t, d.FinalResult)
	assert.NotEmpty(t, d.Summary)
	assert.NotEmpty(t, d.NextPrompt)
}

func TestNormalizeDecisionDoneNeedsNoNextPrompt(t *testing.T) {
	d := NormalizeDecision(Decision{Decision: DecisionDone})
	assert.True(t, d.Done)
	assert.Empty(t, d.NextPrompt)
}

func TestNormalizeDecisionIdempotent(t *testing.T) {
	inputs := []Decision{
		{},
		{Decision: "weird", Explanation: "x"},
		{Decision: DecisionDone, Done: false},
		{Decision: DecisionNotDone, NextPrompt: "keep going"},
		{Decision: DecisionBlocked, Explanation: "stuck", FinalResult: "r", Summary: "s", NextPrompt: "n"},
	}
	for _, in := range inputs {
		once := NormalizeDecision(in)
		twice := NormalizeDecision(once)
		assert.Equal(t, once, twice)
	}
}

func TestEnforceStageRequirementDowngrades(t *testing.T) {
	d := EnforceStageRequirement("execution", Decision{Decision: DecisionDone, Explanation: "looks done"})
	assert.Equal(t, DecisionNotDone, d.Decision)
	assert.False(t, d.Done)
	assert.Contains(t, d.Explanation, "implementation_summary_md")
	assert.NotEmpty(t, d.NextPrompt)
}

func TestEnforceStageRequirementAcceptsEvidence(t *testing.T) {
	d := EnforceStageRequirement("execution", Decision{
		Decision:                DecisionDone,
		ImplementationSummaryMD: "# Changes\n...",
	})
	assert.Equal(t, DecisionDone, d.Decision)
}

func TestEnforceStageRequirementUnknownStage(t *testing.T) {
	d := EnforceStageRequirement("ideation", Decision{Decision: DecisionDone})
	assert.Equal(t, DecisionDone, d.Decision)
}

func TestDecisionMarshalPreservesExtra(t *testing.T) {
	var d Decision
	require.NoError(t, json.Unmarshal([]byte(`{"decision":"done","confidence":0.9}`), &d))
	require.Contains(t, d.Extra, "confidence")

	out, err := json.Marshal(d)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, 0.9, raw["confidence"])
	assert.Equal(t, "done", raw["decision"])
}
