package version

import (
	"runtime/debug"
	"testing"
)

func stubBuild(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	origRead, origVersion, origCommit := readBuildInfo, Version, Commit
	t.Cleanup(func() {
		readBuildInfo, Version, Commit = origRead, origVersion, origCommit
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetWithoutBuildInfo(t *testing.T) {
	stubBuild(t, nil)
	Version, Commit = "1.2.3", ""

	info := Get()
	if info.Version != "1.2.3" {
		t.Errorf("expected 1.2.3, got %q", info.Version)
	}
	if got := info.String(); got != "1.2.3" {
		t.Errorf("expected plain version, got %q", got)
	}
}

func TestGetFromVCSSettings(t *testing.T) {
	stubBuild(t, &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	Version, Commit = "1.2.3", ""

	info := Get()
	if info.Commit != "0123456" {
		t.Errorf("expected truncated commit, got %q", info.Commit)
	}
	if !info.Dirty {
		t.Error("expected dirty build")
	}
	if got := info.String(); got != "1.2.3-0123456-dirty (go1.26.0)" {
		t.Errorf("unexpected version string %q", got)
	}
}

func TestLinkTimeCommitWins(t *testing.T) {
	stubBuild(t, &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fedcba9876"}},
	})
	Version, Commit = "2.0.0", "abc1234"

	if got := Get().Short(); got != "2.0.0-abc1234" {
		t.Errorf("expected link time commit, got %q", got)
	}
}
