package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbakisahin/sisecam-summarize-3/pkg/cmpreport/xlsx"
)

const recordJSON = `{
	"keyword": "flood",
	"date": "2024-01-01",
	"url": "http://a",
	"neighbor_urls": ["http://b", "http://c"],
	"individual_comparisons": ["diff1", "diff2"],
	"combined_comparison": "summary"
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose = "", false
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := filepath.Join(dir, "record.json")
	if err := os.WriteFile(input, []byte(recordJSON), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.xlsx")

	if _, err := execute(t, "render", input, "-o", output, "--lang", "tr"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	wb, err := xlsx.Inspect(output)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if got := wb.Sheets[0].Row(2).C["1"]; got != "Çevre" {
		t.Errorf("Expected Turkish directorate, got %q", got)
	}
}

func TestRenderCommandBatch(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	var inputs []string
	for _, name := range []string{"a.json", "b.json"} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(recordJSON), 0644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, p)
	}
	outDir := t.TempDir()

	args := append([]string{"render", "--output-dir", outDir}, inputs...)
	if _, err := execute(t, args...); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, name := range []string{"a.xlsx", "b.xlsx"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRenderCommandStrict(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := filepath.Join(dir, "record.json")
	if err := os.WriteFile(input, []byte(recordJSON), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "render", input, "-o", filepath.Join(dir, "x.xlsx"), "--strict")
	if err == nil || !strings.Contains(err.Error(), "directorate is required") {
		t.Errorf("expected directorate error, got %v", err)
	}
}

func TestInspectAndPreviewCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := filepath.Join(dir, "record.json")
	if err := os.WriteFile(input, []byte(recordJSON), 0644); err != nil {
		t.Fatal(err)
	}
	report := filepath.Join(dir, "r.xlsx")
	if _, err := execute(t, "render", input, "-o", report); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out, err := execute(t, "inspect", report)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if !strings.Contains(out, `"book_name":"r.xlsx"`) || !strings.Contains(out, "http://c") {
		t.Errorf("unexpected inspect output: %s", out)
	}

	out, err = execute(t, "preview", input)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(out, "Comparison Report: flood") || !strings.Contains(out, "Similar Document 2") {
		t.Errorf("unexpected preview output: %s", out)
	}
}

func TestBatchDestination(t *testing.T) {
	tests := []struct {
		dir, input, expected string
	}{
		{"out", "in/record.json", filepath.Join("out", "record.xlsx")},
		{".", "a.b.yaml", "a.b.xlsx"},
		{"/tmp", "/data/x", filepath.Join("/tmp", "x.xlsx")},
	}
	for _, tt := range tests {
		if got := batchDestination(tt.dir, tt.input); got != tt.expected {
			t.Errorf("batchDestination(%q, %q) = %q, expected %q", tt.dir, tt.input, got, tt.expected)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "cmpreport ") {
		t.Errorf("unexpected version output: %q", out)
	}
}
