// Package engine runs the execute/verify iteration loop for one claimed
// task: provider spawns, local verification evidence, decision
// adjudication, and artifact persistence.
package engine

import (
	"encoding/json"
	"strings"
)

// Decision values.
const (
	DecisionDone    = "done"
	DecisionBlocked = "blocked"
	DecisionNotDone = "not_done"
	DecisionFailed  = "failed"
)

// Deterministic fallbacks filled in by NormalizeDecision.
const (
	fallbackExplanation = "No explanation provided."
	fallbackFinalResult = "No final result provided."
	fallbackSummary     = "No summary provided."
	fallbackNextPrompt  = "Continue with the next most valuable step toward completing the task."
)

// Decision is the verifier's adjudication payload. LLM output is free-form
// JSON, so unknown fields are kept in Extra for forward compatibility; all
// consumers go through NormalizeDecision.
type Decision struct {
	Done                    bool   `json:"done"`
	Decision                string `json:"decision"`
	Explanation             string `json:"explanation"`
	FinalResult             string `json:"final_result"`
	NextPrompt              string `json:"next_prompt"`
	Summary                 string `json:"summary"`
	PlanMD                  string `json:"plan_md,omitempty"`
	ImplementationSummaryMD string `json:"implementation_summary_md,omitempty"`
	VerificationMD          string `json:"verification_md,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// knownDecisionKeys are the fields owned by the Decision struct; anything
// else lands in Extra.
var knownDecisionKeys = map[string]bool{
	"done": true, "decision": true, "explanation": true,
	"final_result": true, "next_prompt": true, "summary": true,
	"plan_md": true, "implementation_summary_md": true, "verification_md": true,
}

// UnmarshalJSON decodes the known fields and stashes the rest in Extra.
func (d *Decision) UnmarshalJSON(data []byte) error {
	type alias Decision
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Decision(a)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		if knownDecisionKeys[key] {
			continue
		}
		if d.Extra == nil {
			d.Extra = make(map[string]json.RawMessage)
		}
		d.Extra[key] = val
	}
	return nil
}

// MarshalJSON emits the known fields plus any Extra fields.
func (d Decision) MarshalJSON() ([]byte, error) {
	type alias Decision
	data, err := json.Marshal(alias(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return data, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, val := range d.Extra {
		if _, taken := merged[key]; !taken {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}

// FailedDecision builds a normalized failed decision with the given
// explanation.
func FailedDecision(explanation string) Decision {
	return NormalizeDecision(Decision{Decision: DecisionFailed, Explanation: explanation})
}

// ParseDecision extracts the last well-formed JSON object from the
// verifier's stdout, falling back to stderr. ok is false when neither
// stream contains one.
func ParseDecision(stdout, stderr string) (Decision, bool) {
	for _, text := range []string{stdout, stderr} {
		if raw, found := lastJSONObject(text); found {
			var d Decision
			if err := json.Unmarshal(raw, &d); err == nil {
				return d, true
			}
		}
	}
	return Decision{}, false
}

// lastJSONObject scans text for complete JSON objects and returns the last
// one. Objects nested inside an already-consumed object are skipped.
func lastJSONObject(text string) (json.RawMessage, bool) {
	var last json.RawMessage
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil && len(raw) > 0 && raw[0] == '{' {
			last = raw
			i += int(dec.InputOffset()) - 1
		}
	}
	return last, last != nil
}

// NormalizeDecision clamps the decision field to the allowed set and fills
// deterministic fallbacks for the required text fields. It is idempotent.
func NormalizeDecision(d Decision) Decision {
	switch d.Decision {
	case DecisionDone, DecisionBlocked, DecisionNotDone, DecisionFailed:
	default:
		d.Decision = DecisionFailed
	}
	d.Done = d.Decision == DecisionDone

	if strings.TrimSpace(d.Explanation) == "" {
		d.Explanation = fallbackExplanation
	}
	if strings.TrimSpace(d.FinalResult) == "" {
		d.FinalResult = fallbackFinalResult
	}
	if strings.TrimSpace(d.Summary) == "" {
		d.Summary = fallbackSummary
	}
	if !d.Done && strings.TrimSpace(d.NextPrompt) == "" {
		d.NextPrompt = fallbackNextPrompt
	}
	return d
}

// stageEvidence names the artifact a stage must produce before a claimed
// done is accepted.
var stageEvidence = map[string]struct {
	missing func(Decision) bool
	name    string
}{
	"planning":     {func(d Decision) bool { return strings.TrimSpace(d.PlanMD) == "" }, "plan_md"},
	"execution":    {func(d Decision) bool { return strings.TrimSpace(d.ImplementationSummaryMD) == "" }, "implementation_summary_md"},
	"verification": {func(d Decision) bool { return strings.TrimSpace(d.VerificationMD) == "" }, "verification_md"},
}

// EnforceStageRequirement downgrades a claimed done to not_done when the
// stage's required evidence is missing. Pure; the result is normalized.
func EnforceStageRequirement(stage string, d Decision) Decision {
	if d.Decision == DecisionDone {
		if req, ok := stageEvidence[stage]; ok && req.missing(d) {
			d.Decision = DecisionNotDone
			d.Done = false
			d.Explanation = "Claimed done without required " + req.name + " evidence for the " + stage + " stage. " + d.Explanation
			d.NextPrompt = "Produce the missing " + req.name + " content and re-verify."
		}
	}
	return NormalizeDecision(d)
}
