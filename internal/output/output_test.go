package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"status":  "ok",
		"entries": 3,
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["status"] != "ok" {
		t.Errorf("status = %v, want %q", result["status"], "ok")
	}
	if result["entries"] != float64(3) {
		t.Errorf("entries = %v, want 3", result["entries"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewSystemErrorWithCause("file does not exist: entries.toml", os.ErrNotExist))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "file does not exist: entries.toml" {
		t.Errorf("error = %v", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitSystemError {
		t.Errorf("code = %v, want %d", result["code"], ExitSystemError)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	err := printer.Success(map[string]any{"message": "3 entries OK"})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	if !strings.Contains(buf.String(), "3 entries OK") {
		t.Errorf("output = %q, want to contain '3 entries OK'", buf.String())
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(errors.New("unable to parse document"))

	if out.Len() != 0 {
		t.Errorf("human errors should not go to stdout: %q", out.String())
	}
	got := errOut.String()
	if got != "Error: unable to parse document\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	doc := "# doc\n"
	printer.Println(doc)

	if buf.String() != "# doc\n\n" {
		t.Errorf("output = %q, want %q", buf.String(), "# doc\n\n")
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("Entries", "3")

	if buf.String() != "Entries: 3\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Entries: 3\n")
	}
}

func TestPrinter_Stderr(t *testing.T) {
	var out, errOut bytes.Buffer
	NewPrinter(&out, false, false).WithStderr(&errOut).Stderr("rendered %d entries\n", 2)
	if errOut.String() != "rendered 2 entries\n" {
		t.Errorf("stderr = %q", errOut.String())
	}

	errOut.Reset()
	NewPrinter(&out, true, false).WithStderr(&errOut).Stderr("hidden\n")
	if errOut.Len() != 0 || out.Len() != 0 {
		t.Errorf("Stderr should be a no-op in JSON mode, got %q / %q", out.String(), errOut.String())
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	jsonPrinter := NewPrinter(&buf, true, false)
	if !jsonPrinter.IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}

	humanPrinter := NewPrinter(&buf, false, false)
	if humanPrinter.IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Warn("unknown key %q ignored", "entries.extra")

	output := buf.String()
	if !strings.Contains(output, "Warning") {
		t.Errorf("output should contain 'Warning': %q", output)
	}
	if !strings.Contains(output, "entries.extra") {
		t.Errorf("output should contain message: %q", output)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("unknown key")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["warning"] != "unknown key" {
		t.Errorf("warning = %v, want %q", result["warning"], "unknown key")
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitUserError {
		t.Errorf("code = %d, want %d", parsed.Code, ExitUserError)
	}
}
