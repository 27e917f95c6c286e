package version

import "testing"

func TestString(t *testing.T) {
	oldCommit, oldBuild := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = oldCommit, oldBuild })

	Commit = "0123456789abcdef"
	BuildTime = "2026-10-19T12:00:00Z"

	want := "crudgen dev (commit: 0123456, built: 2026-10-19T12:00:00Z)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestShortCommit_Short(t *testing.T) {
	oldCommit := Commit
	t.Cleanup(func() { Commit = oldCommit })

	Commit = "abc"
	if got := shortCommit(); got != "abc" {
		t.Errorf("shortCommit() = %q, want %q", got, "abc")
	}
}
