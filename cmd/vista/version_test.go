package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vista/internal/version"
)

func TestCollectVersionInfo(t *testing.T) {
	origVersion, origCommit := version.Version, version.GitCommit
	defer func() {
		version.Version, version.GitCommit = origVersion, origCommit
	}()

	version.Version = "  1.2.3  "
	version.GitCommit = "abc123"
	info := collectVersionInfo()
	if info.Version != "1.2.3" {
		t.Errorf("version = %q, want trimmed %q", info.Version, "1.2.3")
	}
	if info.GitCommit != "abc123" {
		t.Errorf("commit = %q", info.GitCommit)
	}

	version.Version = ""
	if got := collectVersionInfo().Version; got != "dev" {
		t.Errorf("empty version = %q, want dev fallback", got)
	}
}

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: ""}

	var buf bytes.Buffer
	renderVersionPretty(&buf, info, true, true)
	out := buf.String()
	if !strings.Contains(out, "vista 1.2.3") {
		t.Errorf("missing version line:\n%s", out)
	}
	if !strings.Contains(out, "commit: abc123") {
		t.Errorf("missing commit line:\n%s", out)
	}
	if !strings.Contains(out, "built:  unknown") {
		t.Errorf("empty build date must render as unknown:\n%s", out)
	}

	buf.Reset()
	renderVersionPretty(&buf, info, false, false)
	if strings.Contains(buf.String(), "commit:") {
		t.Errorf("commit shown without --hash:\n%s", buf.String())
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, info, true, false); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if payload.Tool != "vista" || payload.Version != "1.2.3" || payload.GitCommit != "abc123" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.BuildDate != "" {
		t.Errorf("build date must be omitted without --date, got %q", payload.BuildDate)
	}
}

func TestVersionCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "version" {
			return
		}
	}
	t.Error("version subcommand not registered on the root command")
}
