package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Manifest entry kinds.
const (
	ManifestKindArtifact = "artifact"
	ManifestKindPrompt   = "prompt"
	ManifestKindOutput   = "output"
	ManifestKindEvents   = "events"
)

// ManifestEntry describes one file produced by a run.
type ManifestEntry struct {
	Kind   string `json:"kind"`
	Key    string `json:"key"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256,omitempty"`
}

// RunIndexEntry summarizes a finished run for the completion payload.
type RunIndexEntry struct {
	RunID            string          `json:"run_id"`
	Stage            Stage           `json:"stage"`
	Engine           string          `json:"engine,omitempty"`
	Model            string          `json:"model,omitempty"`
	Status           RunStatus       `json:"status"`
	CreatedAt        string          `json:"created_at"`
	ArtifactManifest []ManifestEntry `json:"artifact_manifest"`
}

// BuildRunIndexEntry walks the run container and assembles the manifest.
// Files larger than shaMaxBytes skip digesting; the entry is still listed.
// Entries are sorted by key for stable output.
func (s *Store) BuildRunIndexEntry(run *Run, shaMaxBytes int64) (RunIndexEntry, error) {
	entry := RunIndexEntry{
		RunID:            run.Meta.RunID,
		Stage:            run.Meta.Stage,
		Engine:           run.Meta.Engine,
		Model:            run.Meta.Model,
		Status:           run.Meta.Status,
		CreatedAt:        run.Meta.CreatedAt,
		ArtifactManifest: []ManifestEntry{},
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	walkErr := filepath.WalkDir(run.ContainerDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if strings.HasSuffix(path, ".tmp") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		me := ManifestEntry{
			Kind:  manifestKind(d.Name()),
			Key:   localURI(host, path),
			Bytes: info.Size(),
		}
		if shaMaxBytes <= 0 || info.Size() <= shaMaxBytes {
			sum, err := fileSHA256(path)
			if err != nil {
				return err
			}
			me.SHA256 = sum
		}
		entry.ArtifactManifest = append(entry.ArtifactManifest, me)
		return nil
	})
	if walkErr != nil {
		return entry, fmt.Errorf("walk run container: %w", walkErr)
	}

	sort.Slice(entry.ArtifactManifest, func(i, j int) bool {
		return entry.ArtifactManifest[i].Key < entry.ArtifactManifest[j].Key
	})
	return entry, nil
}

func manifestKind(name string) string {
	switch name {
	case "prompt.md":
		return ManifestKindPrompt
	case "output.md":
		return ManifestKindOutput
	case "events.ndjson":
		return ManifestKindEvents
	default:
		return ManifestKindArtifact
	}
}

// localURI builds the local://<host><abs-path> key for a manifest entry.
func localURI(host, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "local://" + host + abs
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
