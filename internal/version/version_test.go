package version

import (
	"strings"
	"testing"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestCurrentTrims(t *testing.T) {
	withVersion(t, " 1.2.3 ")
	origCommit := GitCommit
	GitCommit = "abc123\n"
	t.Cleanup(func() { GitCommit = origCommit })

	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123" {
		t.Fatalf("info = %+v", info)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		name    string
		version string
		enabled bool
		plain   bool
	}{
		{"disabled", "1.2.3-dev", false, true},
		{"enabled", "1.2.3-dev", true, false},
		{"not semver", "nightly", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version)
			got := Colored(tt.enabled)
			if tt.plain {
				if got != tt.version {
					t.Fatalf("got %q, want %q", got, tt.version)
				}
				return
			}
			if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-dev") {
				t.Fatalf("expected colored output, got %q", got)
			}
		})
	}
}

func TestDefaultVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}
