package version

import (
	"strings"
	"testing"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version must have a default value")
	}
	// Color escapes aside, the default carries the dev suffix.
	if !strings.Contains(Version, "-dev") {
		t.Errorf("default Version = %q, want a -dev suffix", Version)
	}
}

func TestBuildMetadataOverride(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("override failed: commit=%q date=%q", GitCommit, BuildDate)
	}
}
