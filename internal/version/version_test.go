package version

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit and BuildDate are optional
	_ = GitCommit
	_ = BuildDate
}

func TestPretty(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	defer func() {
		Version = origVersion
		color.NoColor = origNoColor
	}()
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Pretty(); got != tt.want {
			t.Errorf("Pretty() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestPrettyColored(t *testing.T) {
	origVersion := Version
	origNoColor := color.NoColor
	defer func() {
		Version = origVersion
		color.NoColor = origNoColor
	}()
	color.NoColor = false

	Version = "1.2.3"
	got := Pretty()
	for _, prefix := range []string{"\x1b[33;1m1", "\x1b[32;1m2", "\x1b[34;1m3"} {
		if !strings.Contains(got, prefix) {
			t.Fatalf("Pretty() = %q, missing %q", got, prefix)
		}
	}
	if plain := ansi.ReplaceAllString(got, ""); plain != "1.2.3" {
		t.Fatalf("Pretty() without escapes = %q", plain)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides not applied: %q %q %q", Version, GitCommit, BuildDate)
	}
}
