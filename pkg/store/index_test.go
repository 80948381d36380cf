package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunIndexEntryClassifiesKinds(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")

	require.NoError(t, s.WritePrompt(run, "prompt text", map[string]any{"event": "prompt"}))
	require.NoError(t, s.WriteOutput(run, "output text"))
	require.NoError(t, s.WriteArtifact(run, "implementation_summary.md", []byte("summary")))

	entry, err := s.BuildRunIndexEntry(run, 5*1024*1024)
	require.NoError(t, err)

	assert.Equal(t, run.Meta.RunID, entry.RunID)
	assert.Equal(t, StageExecute, entry.Stage)

	kinds := map[string]string{}
	for _, me := range entry.ArtifactManifest {
		switch {
		case strings.HasSuffix(me.Key, "prompt.md"):
			kinds["prompt.md"] = me.Kind
		case strings.HasSuffix(me.Key, "output.md"):
			kinds["output.md"] = me.Kind
		case strings.HasSuffix(me.Key, "events.ndjson"):
			kinds["events.ndjson"] = me.Kind
		case strings.HasSuffix(me.Key, "implementation_summary.md"):
			kinds["implementation_summary.md"] = me.Kind
		}
	}
	assert.Equal(t, ManifestKindPrompt, kinds["prompt.md"])
	assert.Equal(t, ManifestKindOutput, kinds["output.md"])
	assert.Equal(t, ManifestKindEvents, kinds["events.ndjson"])
	assert.Equal(t, ManifestKindArtifact, kinds["implementation_summary.md"])
}

func TestBuildRunIndexEntryLocalURIs(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")
	require.NoError(t, s.WriteOutput(run, "x"))

	entry, err := s.BuildRunIndexEntry(run, 0)
	require.NoError(t, err)
	require.NotEmpty(t, entry.ArtifactManifest)
	for _, me := range entry.ArtifactManifest {
		assert.True(t, strings.HasPrefix(me.Key, "local://"), "key %q", me.Key)
	}
}

func TestBuildRunIndexEntryOmitsSHAForLargeFiles(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")
	require.NoError(t, s.WriteArtifact(run, "big.bin", make([]byte, 2048)))
	require.NoError(t, s.WriteArtifact(run, "small.txt", []byte("tiny")))

	entry, err := s.BuildRunIndexEntry(run, 1024)
	require.NoError(t, err)

	for _, me := range entry.ArtifactManifest {
		if strings.HasSuffix(me.Key, "big.bin") {
			assert.Empty(t, me.SHA256)
			assert.Equal(t, int64(2048), me.Bytes)
		}
		if strings.HasSuffix(me.Key, "small.txt") {
			assert.Len(t, me.SHA256, 64)
		}
	}
}

func TestBuildRunIndexEntrySortedByKey(t *testing.T) {
	s := newTestStore(t)
	run := createTestRun(t, s, StageExecute, "")
	require.NoError(t, s.WriteArtifact(run, "z.txt", []byte("z")))
	require.NoError(t, s.WriteArtifact(run, "a.txt", []byte("a")))

	entry, err := s.BuildRunIndexEntry(run, 0)
	require.NoError(t, err)
	for i := 1; i < len(entry.ArtifactManifest); i++ {
		assert.LessOrEqual(t, entry.ArtifactManifest[i-1].Key, entry.ArtifactManifest[i].Key)
	}
}
