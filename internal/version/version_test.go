package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date

	Version = "1.0.0"
	Commit = "abc123def456"
	Date = "2024-01-01T12:00:00Z"

	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	info := GetInfo()

	if info.Version != "1.0.0" {
		t.Errorf("GetInfo().Version = %v, want 1.0.0", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("GetInfo().Commit = %v, want abc123def456", info.Commit)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GetInfo().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "abcdef1234567890",
		Date:      "2024-01-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()

	if !strings.Contains(s, "auctionctl 1.2.3") {
		t.Errorf("String() should contain the version, got: %s", s)
	}
	if !strings.Contains(s, "abcdef12") {
		t.Errorf("String() should contain the short commit, got: %s", s)
	}
	if strings.Contains(s, "abcdef1234567890") {
		t.Errorf("String() should truncate the commit, got: %s", s)
	}
}

func TestShort(t *testing.T) {
	info := Info{Version: "1.2.3"}
	if info.Short() != "1.2.3" {
		t.Errorf("Short() = %v, want 1.2.3", info.Short())
	}
}

func TestUserAgent(t *testing.T) {
	orig := Version
	Version = "1.2.3"
	defer func() { Version = orig }()

	if got := UserAgent(); got != "auctionctl/1.2.3" {
		t.Errorf("UserAgent() = %v, want auctionctl/1.2.3", got)
	}
}
