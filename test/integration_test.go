// ABOUTME: Integration tests for fittrack CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Redirect data and config into temp dirs
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Add an exercise
	output, err := run("exercise", "add", "Squat", "--category", "legs")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added Squat") {
		t.Errorf("Expected 'Added Squat' in output, got: %s", output)
	}

	// Create a routine
	output, err = run("routine", "add", "Leg Day", "--exercise", "Squat:3x5")
	if err != nil {
		t.Fatalf("Failed to add routine: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added routine Leg Day") {
		t.Errorf("Expected routine confirmation, got: %s", output)
	}

	output, err = run("routine", "list")
	if err != nil {
		t.Fatalf("Failed to list routines: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Leg Day") {
		t.Errorf("Expected 'Leg Day' in routine list, got: %s", output)
	}

	// Log a session
	output, err = run("log", "Leg Day", "--set", "Squat:100x5", "--set", "Squat:100x5")
	if err != nil {
		t.Fatalf("Failed to log session: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Leg Day") {
		t.Errorf("Expected log confirmation, got: %s", output)
	}

	// History shows the session
	output, err = run("history", "--full")
	if err != nil {
		t.Fatalf("Failed to list history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Leg Day") {
		t.Errorf("Expected 'Leg Day' in history, got: %s", output)
	}
	if !strings.Contains(output, "Squat") {
		t.Errorf("Expected 'Squat' in full history, got: %s", output)
	}

	// Body measurements
	output, err = run("measure", "add", "weight", "82.5")
	if err != nil {
		t.Fatalf("Failed to add measurement: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added weight") {
		t.Errorf("Expected 'Added weight' in output, got: %s", output)
	}

	output, err = run("measure", "list")
	if err != nil {
		t.Fatalf("Failed to list measurements: %v\n%s", err, output)
	}
	if !strings.Contains(output, "82.50") {
		t.Errorf("Expected measurement value in output, got: %s", output)
	}

	// Markdown export includes the session
	output, err = run("export", "--format", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "# Fittrack Export") {
		t.Errorf("Expected markdown header, got: %s", output)
	}
	if !strings.Contains(output, "Leg Day") {
		t.Errorf("Expected session in markdown export, got: %s", output)
	}

	// Sync status without configuration
	output, err = run("sync", "status")
	if err != nil {
		t.Fatalf("Failed to get sync status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "not configured") {
		t.Errorf("Expected unconfigured notice, got: %s", output)
	}

	// Deleting a routine hides it from the list
	output, err = run("routine", "delete", "Leg Day")
	if err != nil {
		t.Fatalf("Failed to delete routine: %v\n%s", err, output)
	}
	output, err = run("routine", "list")
	if err != nil {
		t.Fatalf("Failed to list routines: %v\n%s", err, output)
	}
	if strings.Contains(output, "Leg Day") {
		t.Errorf("Expected deleted routine to be hidden, got: %s", output)
	}
}
