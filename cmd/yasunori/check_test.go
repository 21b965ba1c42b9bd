package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/yasunori/internal/output"
)

func TestCheck_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "yasunori.toml", helloDocument)

	stdout, _, err := execute(t, "check", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Entries: 1", "With IDs: 1", "1 entries OK"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("check output should contain %q:\n%s", want, stdout)
		}
	}
}

func TestCheck_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "yasunori.toml", "extra = 1\n"+helloDocument)

	stdout, _, err := execute(t, "check", "--json", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Entries int      `json:"entries"`
		WithIDs int      `json:"with_ids"`
		Unknown []string `json:"unknown"`
		Valid   bool     `json:"valid"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, stdout)
	}
	if !result.Valid || result.Entries != 1 || result.WithIDs != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(result.Unknown) != 1 || result.Unknown[0] != "extra" {
		t.Errorf("Unknown = %v, want [extra]", result.Unknown)
	}
}

func TestCheck_Invalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[[entries]]\ntitle = \"t\"\nat = \"a\"\nsenpan = \"s\"\n")

	stdout, stderr, err := execute(t, "check", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, `"date": missing required field`) {
		t.Errorf("stderr = %q", stderr)
	}
	if strings.Contains(stdout, "OK") {
		t.Errorf("invalid document reported OK: %q", stdout)
	}
}

func TestCheck_Strict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "yasunori.toml", "extra = 1\n"+helloDocument)

	if _, _, err := execute(t, "check", path); err != nil {
		t.Fatalf("unknown keys should only warn without --strict: %v", err)
	}

	stdout, stderr, err := execute(t, "check", "--strict", path)
	if err == nil {
		t.Fatal("expected error with --strict")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "unknown keys: extra") {
		t.Errorf("stderr = %q", stderr)
	}
	if stdout != "" {
		t.Errorf("nothing should be written to stdout on error: %q", stdout)
	}
}
