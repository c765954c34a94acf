package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeProfilesFixture(home))

	stdout, stderr, err := runCLRHost(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runCLRHost(t, binaryPath, home, "profiles", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "payload")

	_, _, err = runCLRHost(t, binaryPath, home, "run")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "clrhost-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/clrhost")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build clrhost binary: %s", string(output))
	return binaryPath
}

func runCLRHost(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "USERPROFILE="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeProfilesFixture(home string) error {
	configDir := filepath.Join(home, ".clrhost")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	profiles := `version = 1

[[profiles]]
name = "payload"
runtime = "v4"
redirect_output = true
`

	return os.WriteFile(filepath.Join(configDir, "profiles.toml"), []byte(profiles), 0o644)
}
