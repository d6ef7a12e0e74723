// Package integration provides end-to-end tests for the larder library and
// CLI.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// larderBin is the path to the built larder binary.
	larderBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// BuildError wraps a build error with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up to go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// Result holds the outcome of one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv is an isolated working directory with its own config and
// database for one test.
type TestEnv struct {
	t   *testing.T
	Dir string
}

// NewTestEnv creates a fresh environment in a temp directory. It skips the
// test when the binary failed to build.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("larder binary not built: %v", buildErr)
	}
	return &TestEnv{t: t, Dir: t.TempDir()}
}

// RunLarder runs the larder binary with the environment's config dir and
// database, returning stdout, stderr, and the exit code.
func (e *TestEnv) RunLarder(args ...string) Result {
	e.t.Helper()

	full := append([]string{
		"--config-dir", filepath.Join(e.Dir, ".larder"),
		"--db", filepath.Join(e.Dir, "larder.db"),
	}, args...)

	cmd := exec.Command(larderBin, full...)
	cmd.Dir = e.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("running larder %v: %v", args, err)
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// MustRunLarder runs the binary and fails the test on a non-zero exit.
func (e *TestEnv) MustRunLarder(args ...string) Result {
	e.t.Helper()
	res := e.RunLarder(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("larder %v exited %d: %s", args, res.ExitCode, res.Stderr)
	}
	return res
}
