package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ACADCALC_PORT", "")
	t.Setenv("ACADCALC_GROUPS_FILE", "")
	t.Setenv("ACADCALC_LOG_LEVEL", "error")

	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCLIToAcademic(t *testing.T) {
	out, err := run(t, "--hours", "1", "--group", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Academic hours: 4\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Program level") {
		t.Errorf("level printed below threshold:\n%s", out)
	}
}

func TestCLIToAcademicWithLevel(t *testing.T) {
	out, err := run(t, "--hours", "100", "--group", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6000 / 45 = 133.3
	if !strings.Contains(out, "Academic hours: 133.3") || !strings.Contains(out, "Advanced level") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCLIToRegular(t *testing.T) {
	out, err := run(t, "--academic", "2", "-g", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Regular time: 1h 30m") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCLIErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"--hours", "-1"},
		{"--academic", "-2"},
		{"--hours", "1", "--group", "6"},
		{"--hours", "1", "--academic", "2"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestCLIListings(t *testing.T) {
	out, err := run(t, "--groups", "--levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"[0]", "1.5-3 years", "[5]", "Expert level"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestCLIGroupsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.yaml")
	data := "groups:\n  - label: seniors\n    unit_minutes: 50\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--groups-file", path, "--minutes", "100", "--group", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "seniors") || !strings.Contains(out, "Academic hours: 2\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCLIVersion(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "acadcalc v"+appVersion {
		t.Errorf("unexpected version output %q", out)
	}
}
