package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckSource(t *testing.T) {
	dir := t.TempDir()
	if r := CheckSource(dir); !r.Passed {
		t.Fatalf("expected existing dir to pass: %+v", r)
	}

	missing := filepath.Join(dir, "missing")
	if r := CheckSource(missing); r.Passed || !strings.Contains(r.Detail, "does not exist") {
		t.Fatalf("expected missing dir to fail: %+v", r)
	}

	file := filepath.Join(dir, "disc.iso")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckSource(file); r.Passed || !strings.Contains(r.Detail, "not a directory") {
		t.Fatalf("expected file to fail: %+v", r)
	}
}

func TestCheckDestinationMissingUsesParent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "CNG", "discs", "images")

	r := CheckDestination(target)
	if !r.Passed {
		t.Fatalf("expected creatable destination to pass: %+v", r)
	}
	if !strings.Contains(r.Detail, "will be created") {
		t.Fatalf("expected creation detail, got %q", r.Detail)
	}
}

func TestCheckDestinationBlockedByFile(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "CNG")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r := CheckDestination(filepath.Join(blocker, "images")); r.Passed {
		t.Fatalf("expected file in path to fail: %+v", r)
	}
}

func TestErr(t *testing.T) {
	if err := Err([]Result{{Name: "a", Passed: true}}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	err := Err([]Result{{Name: "a", Passed: true}, {Name: "b", Detail: "broken"}})
	if err == nil || !strings.Contains(err.Error(), "b: broken") {
		t.Fatalf("unexpected error: %v", err)
	}
}
