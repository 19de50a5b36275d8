package command

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var runLine = regexp.MustCompile(`^run [0-9A-Z]{26}: (\d+) iterations in `)

func TestRun_PositionalRepeat(t *testing.T) {
	out, err := runApp(t, "run", "--capacity", "8", "7")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	m := runLine.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("unexpected output %q", out)
	}
	if m[1] != "7" {
		t.Errorf("iterations = %s, want 7", m[1])
	}
}

func TestRun_RepeatFlag(t *testing.T) {
	out, err := runApp(t, "run", "--repeat", "3", "--capacity", "2")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if m := runLine.FindStringSubmatch(out); m == nil || m[1] != "3" {
		t.Errorf("output = %q, want 3 iterations", out)
	}
}

func TestRun_PositionalWinsOverFlag(t *testing.T) {
	out, err := runApp(t, "run", "--repeat", "50", "--capacity", "4", "2")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if m := runLine.FindStringSubmatch(out); m == nil || m[1] != "2" {
		t.Errorf("output = %q, want 2 iterations", out)
	}
}

func TestRun_InvalidRepeat(t *testing.T) {
	_, err := runApp(t, "run", "lots")
	if err == nil || !strings.Contains(err.Error(), "invalid repeat count") {
		t.Errorf("run error = %v, want invalid repeat count", err)
	}
}

func TestRun_InvalidCapacity(t *testing.T) {
	_, err := runApp(t, "run", "--capacity", "0", "1")
	if err == nil || !strings.Contains(err.Error(), "driver.capacity") {
		t.Errorf("run error = %v, want driver.capacity error", err)
	}
}

func TestRun_ConfigFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
driver:
  repeat: 4
  capacity: 16
log:
  level: error
`)
	t.Setenv("CHAINMAP_DRIVER_REPEAT", "5")

	out, err := runApp(t, "--config", path, "run")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if m := runLine.FindStringSubmatch(out); m == nil || m[1] != "5" {
		t.Errorf("output = %q, want 5 iterations from env", out)
	}
}

func TestRun_MetricsFile(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "driver.prom")

	if _, err := runApp(t, "run", "--capacity", "32", "--metrics-file", metricsFile, "3"); err != nil {
		t.Fatalf("run error = %v", err)
	}

	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "chainmap_driver_iterations_total 3") {
		t.Errorf("metrics file missing iteration count:\n%s", data)
	}
	if !strings.Contains(string(data), `chainmap_map_capacity{map="driver"} 32`) {
		t.Errorf("metrics file missing map capacity:\n%s", data)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	_, err := runApp(t, "--config", "/nonexistent/driver.yaml", "run", "1")
	if err == nil {
		t.Error("run with a missing config file should fail")
	}
}
