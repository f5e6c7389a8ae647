package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/loadaudit-go/internal/testkit"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cfgPath := filepath.Join(t.TempDir(), "loadaudit.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cmd.SetArgs(append(args, "--config", cfgPath))
	err := cmd.Execute()
	return out.String(), err
}

func TestReportJSON(t *testing.T) {
	path := testkit.WriteSample(t, t.TempDir())

	out, err := execute(t, "report", "--file", path, "--format", "json", "--status", "overage")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	if len(report.Records) != 1 || report.Records[0].ID != "2001" {
		t.Errorf("Expected only 2001, got %+v", report.Records)
	}
}

func TestReportText(t *testing.T) {
	path := testkit.WriteSample(t, t.TempDir())

	out, err := execute(t, "report", "-f", path, "-q", "1023")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Ana García López") || strings.Contains(out, "Marta Ruiz Soto") {
		t.Errorf("Unexpected text output:\n%s", out)
	}
}

func TestReportOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := testkit.WriteSample(t, dir)
	target := filepath.Join(dir, "report.json")

	if _, err := execute(t, "report", "-f", path, "--format", "json", "-o", target); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if _, err := execute(t, "report", "-f", path, "--format", "xml"); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestReportMissingFile(t *testing.T) {
	_, err := execute(t, "report", "-f", filepath.Join(t.TempDir(), "DZITAS TITULARES 2025B.xlsx"))
	if err == nil {
		t.Fatal("Expected error for missing workbook")
	}
	if !strings.Contains(err.Error(), `please provide the file "DZITAS TITULARES 2025B.xlsx"`) {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestReportInvalidFilters(t *testing.T) {
	path := testkit.WriteSample(t, t.TempDir())

	if _, err := execute(t, "report", "-f", path, "--status", "bogus"); err == nil {
		t.Error("Expected error for invalid status")
	}
	if _, err := execute(t, "report", "-f", path, "--sort", "bogus"); err == nil {
		t.Error("Expected error for invalid sort")
	}
}

func TestMissingConfigFile(t *testing.T) {
	path := testkit.WriteSample(t, t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"report", "-f", path, "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestCommandsDoNotShareState(t *testing.T) {
	path := testkit.WriteSample(t, t.TempDir())

	if _, err := execute(t, "report", "-f", path, "--format", "json", "-q", "1023"); err != nil {
		t.Fatalf("report failed: %v", err)
	}
	out, err := execute(t, "report", "-f", path, "--format", "json")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, out)
	}
	if len(report.Records) != 3 {
		t.Errorf("Expected 3 records without a query, got %d", len(report.Records))
	}
}
