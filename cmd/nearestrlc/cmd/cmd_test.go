package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
)

const inventoryTOML = `
[quantize]
unit = "Ω"

[[inventory]]
name = "drawer"
tolerance_percent = 10.0
values = [1.0, 2.2, 4.7]
`

// execute runs the CLI in isolation from the user's environment.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"CONFIG", "LOG_LEVEL", "LOG_FORMAT", "TOLERANCE", "UNIT"} {
		t.Setenv("NEARESTRLC_"+key, "")
	}

	rootCmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestQuantizePlain(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"E48 tie", []string{"quantize", "4990", "--tol", "2p0", "--plain"}, "4870\n"},
		{"E48 upper", []string{"quantize", "4995", "-t", "2p0", "--plain"}, "5110\n"},
		{"RKM input", []string{"quantize", "4k7", "--tol", "5p0", "--plain"}, "4700\n"},
		{"several values", []string{"quantize", "--tol", "E12", "--plain", "--", "4700", "-3333"}, "4700\n-3300\n"},
		{"exact", []string{"quantize", "1234.5", "--tol", "exact", "--plain"}, "1234.5\n"},
		{"config default 5p0", []string{"quantize", "12345", "--plain"}, "12000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestQuantizeTable(t *testing.T) {
	out, _, err := execute(t, "", "quantize", "4990", "--tol", "2p0")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"VALUE", "NEAREST", "4.99 kΩ", "4.87 kΩ", "2p0", "E48"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuantizeAll(t *testing.T) {
	out, _, err := execute(t, "", "quantize", "7404", "--all", "--plain")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"7404", "6800", "6800", "7500", "7500", "7320", "7410"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestQuantizeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code rlcerror.Code
	}{
		{"unknown tolerance", []string{"quantize", "100", "--tol", "15p0"}, rlcerror.CodeInvalidTolerance},
		{"bad value", []string{"quantize", "abc"}, rlcerror.CodeInvalidFormat},
		{"unknown inventory", []string{"quantize", "100", "--series", "shelf"}, rlcerror.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			if !rlcerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}

	if _, _, err := execute(t, "", "quantize"); err == nil {
		t.Error("quantize without values should fail")
	}
}

func TestInventoryFromConfig(t *testing.T) {
	cfgPath := writeFile(t, "nearestrlc.toml", inventoryTOML)

	out, _, err := execute(t, "", "--config", cfgPath, "quantize", "3500", "--series", "drawer", "--plain")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "4700\n" {
		t.Errorf("output = %q, want 4700", out)
	}

	out, _, err = execute(t, "", "--config", cfgPath, "series", "drawer", "--plain")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "1\n2.2\n4.7\n" {
		t.Errorf("output = %q", out)
	}
}

func TestSeries(t *testing.T) {
	out, _, err := execute(t, "", "series", "E6", "--plain")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "1\n1.5\n2.2\n3.3\n4.7\n6.8\n" {
		t.Errorf("series E6 = %q", out)
	}

	out, _, err = execute(t, "", "series", "10p0", "--from", "3k", "--to", "6k", "--plain")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "3300\n3900\n4700\n5600\n" {
		t.Errorf("series 10p0 3k..6k = %q", out)
	}

	out, _, err = execute(t, "", "series", "5p0", "--decade", "3")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"E24 (5%)", "1.00 kΩ", "9.10 kΩ"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSeriesErrors(t *testing.T) {
	if _, _, err := execute(t, "", "series", "exact"); !rlcerror.HasCode(err, rlcerror.CodeInvalidTolerance) {
		t.Errorf("series exact error = %v", err)
	}
	if _, _, err := execute(t, "", "series", "E7"); !rlcerror.HasCode(err, rlcerror.CodeInvalidTolerance) {
		t.Errorf("series E7 error = %v", err)
	}
	if _, _, err := execute(t, "", "series", "E12", "--from", "6k", "--to", "3k"); !rlcerror.HasCode(err, rlcerror.CodeValueOutOfRange) {
		t.Errorf("inverted span error = %v", err)
	}
	if _, _, err := execute(t, "", "series", "E12", "--from", "3k"); err == nil {
		t.Error("--from without --to should fail")
	}
}

func TestBatchJSON(t *testing.T) {
	path := writeFile(t, "values.txt", "# bench values\n4990\n\n4k7\n")

	out, _, err := execute(t, "", "batch", path, "--tol", "2p0", "--format", "json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var doc struct {
		RunID   string   `json:"run_id"`
		Results []result `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if _, err := uuid.Parse(doc.RunID); err != nil {
		t.Errorf("run_id %q is not a UUID: %v", doc.RunID, err)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(doc.Results))
	}
	if doc.Results[0].Quantized != 4870 || doc.Results[1].Quantized != 4640 {
		t.Errorf("quantized = %v, %v, want 4870, 4640", doc.Results[0].Quantized, doc.Results[1].Quantized)
	}
	if doc.Results[1].Input != "4k7" || doc.Results[1].Series != "E48" {
		t.Errorf("result = %+v", doc.Results[1])
	}
}

func TestBatchFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml list", "values.yaml", "- 4700\n- 3k3\n- 100n\n"},
		{"yaml map", "values.yml", "values:\n  - 4700\n  - 3k3\n  - 100n\n"},
		{"toml", "values.toml", "values = [4700, \"3k3\", 100e-9]\n"},
		{"text", "values.list", "4700\n3k3\n100n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			out, _, err := execute(t, "", "batch", path, "--tol", "E12", "--format", "csv")
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			if len(lines) != 4 {
				t.Fatalf("got %d CSV lines, want 4:\n%s", len(lines), out)
			}
			if !strings.HasPrefix(lines[0], "VALUE,TOLERANCE") {
				t.Errorf("CSV header = %q", lines[0])
			}
			if !strings.Contains(lines[3], "100 nΩ") {
				t.Errorf("last row = %q", lines[3])
			}
		})
	}
}

func TestBatchStdinTable(t *testing.T) {
	out, _, err := execute(t, "470\n1k\n", "batch", "-", "--tol", "20p0")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"470 Ω", "1.00 kΩ", "E6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(strings.ToLower(out), "run ") {
		t.Errorf("output missing run caption:\n%s", out)
	}
}

func TestBatchErrors(t *testing.T) {
	if _, _, err := execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt")); !rlcerror.HasCode(err, rlcerror.CodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}

	bad := writeFile(t, "bad.txt", "4700\nfour\n")
	_, _, err := execute(t, "", "batch", bad)
	if !rlcerror.HasCode(err, rlcerror.CodeInvalidFormat) {
		t.Errorf("bad value error = %v", err)
	}
	if e, ok := err.(*rlcerror.Error); !ok || e.Details()["line"] != 2 {
		t.Errorf("bad value error does not carry line 2: %v", err)
	}

	empty := writeFile(t, "empty.txt", "# nothing\n")
	if _, _, err := execute(t, "", "batch", empty); !rlcerror.HasCode(err, rlcerror.CodeInvalidInput) {
		t.Errorf("empty file error = %v", err)
	}

	good := writeFile(t, "good.txt", "4700\n")
	if _, _, err := execute(t, "", "batch", good, "--format", "xml"); !rlcerror.HasCode(err, rlcerror.CodeInvalidInput) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestVerboseJSONLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "quantize", "4990", "--tol", "2p0", "--plain", "--verbose", "--log-format", "json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(stderr, `"message":"value quantized"`) {
		t.Errorf("stderr missing debug log line:\n%s", stderr)
	}
	if !strings.Contains(stderr, `"logger":"quantize"`) {
		t.Errorf("stderr missing logger name:\n%s", stderr)
	}
}

func TestBatchLogsCorrelationID(t *testing.T) {
	path := writeFile(t, "values.txt", "4700\n")
	out, stderr, err := execute(t, "", "batch", path, "--format", "json", "--log-format", "json", "--verbose")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var doc struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if !strings.Contains(stderr, `"correlation_id":"`+doc.RunID+`"`) {
		t.Errorf("log lines do not carry run id %s:\n%s", doc.RunID, stderr)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "nearestrlc v") {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil || info["version"] == "" {
		t.Errorf("version --json = %q (%v)", out, err)
	}
}

func TestInvalidLogFormat(t *testing.T) {
	if _, _, err := execute(t, "", "version", "--log-format", "xml"); !rlcerror.HasCode(err, rlcerror.CodeInvalidInput) {
		t.Errorf("error = %v", err)
	}
}
