// test_helpers_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runResult captures one invocation of run.
type runResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI invokes run with in-memory writers.
func runCLI(t *testing.T, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// lines splits stdout into non-empty lines.
func (r runResult) lines() []string {
	return strings.Split(strings.TrimRight(r.stdout, "\n"), "\n")
}

// writeConfig writes a YAML config under a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "vec3.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// envMap is a lookupFunc backed by a map.
func envMap(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}
