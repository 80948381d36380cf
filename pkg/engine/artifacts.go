package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agx-dev/agx/pkg/store"
)

// defaultPlan stands in when the decision carries no plan_md.
const defaultPlan = "# Plan\n\nNo plan was produced for this iteration.\n"

// persistIterationArtifacts writes the iteration's artifacts under the run
// container. Failures are logged to daemon/artifact_errors.log and never
// abort the loop.
func (e *Engine) persistIterationArtifacts(execRun, verifyRun *store.Run, d Decision, ev Evidence) {
	containerDir := execRun.ContainerDir()

	plan := d.PlanMD
	if plan == "" {
		plan = defaultPlan
	}
	if err := e.store.WritePlan(execRun, plan); err != nil {
		e.logArtifactError(containerDir, "plan/plan.md", err)
	}

	if d.ImplementationSummaryMD != "" {
		if err := e.store.WriteArtifact(execRun, "implementation_summary.md", []byte(d.ImplementationSummaryMD)); err != nil {
			e.logArtifactError(containerDir, "implementation_summary.md", err)
		}
	}

	if verifyRun == nil {
		return
	}

	if d.VerificationMD != "" {
		if err := e.store.WriteArtifact(verifyRun, "verification.md", []byte(d.VerificationMD)); err != nil {
			e.logArtifactError(containerDir, "verification.md", err)
		}
	}

	payload, err := json.MarshalIndent(ev, "", "  ")
	if err == nil {
		err = e.store.WriteArtifact(verifyRun, "verify_commands.json", payload)
	}
	if err != nil {
		e.logArtifactError(containerDir, "verify_commands.json", err)
	}

	for i, result := range ev.Results {
		base := fmt.Sprintf("verify_results/%02d-%s", i+1, result.ID)
		if err := e.store.WriteArtifact(verifyRun, base+".stdout.txt", []byte(result.Stdout)); err != nil {
			e.logArtifactError(containerDir, base+".stdout.txt", err)
		}
		if err := e.store.WriteArtifact(verifyRun, base+".stderr.txt", []byte(result.Stderr)); err != nil {
			e.logArtifactError(containerDir, base+".stderr.txt", err)
		}
	}

	if err := e.store.WriteArtifact(verifyRun, "git_status.txt", []byte(ev.Git.StatusPorcelain)); err != nil {
		e.logArtifactError(containerDir, "git_status.txt", err)
	}
	if err := e.store.WriteArtifact(verifyRun, "git_diffstat.txt", []byte(ev.Git.DiffStat)); err != nil {
		e.logArtifactError(containerDir, "git_diffstat.txt", err)
	}
}

// logArtifactError appends an ISO-timestamped line to the container's
// daemon/artifact_errors.log. Best effort.
func (e *Engine) logArtifactError(containerDir, artifact string, cause error) {
	e.logger.Warn("Artifact write failed", "artifact", artifact, "error", cause)

	logPath := filepath.Join(containerDir, "daemon", "artifact_errors.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(f, "%s %s: %v\n", ts, artifact, cause)
}
