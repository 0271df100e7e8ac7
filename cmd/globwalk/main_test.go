package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	return root
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestIncludeExclude(t *testing.T) {
	root := writeTree(t, "src/a.cs", "src/bin/debug/a.cs", "obj/x.cs", "README.md")

	out, err := runCmd(t, root, "-i", "**/*.cs", "-e", "**/bin/**", "-e", "**/obj/**")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.cs"}, lines(out))
}

func TestDefaultIncludesEverything(t *testing.T) {
	root := writeTree(t, "a", "b/c")

	out, err := runCmd(t, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b/c"}, lines(out))
}

func TestRulesFileAndStem(t *testing.T) {
	root := writeTree(t, "src/x/A.GO", "src/y.go", "vendor/z.go")
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte(`
case_insensitive: true
include: ["src/**/*.go"]
`), 0o644))

	out, err := runCmd(t, root, "--rules", rules, "--stem")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/y.go\ty.go", "src/x/A.GO\tx/A.GO"}, lines(out))
}

func TestParallelAndSandbox(t *testing.T) {
	root := writeTree(t, "a/1.txt", "b/2.txt", "c/3.md", "4.txt")

	for _, extra := range [][]string{{"--parallel", "-j", "2"}, {"--sandbox"}} {
		args := append([]string{root, "-i", "**/*.txt"}, extra...)
		out, err := runCmd(t, args...)
		require.NoError(t, err, extra)
		assert.ElementsMatch(t, []string{"4.txt", "a/1.txt", "b/2.txt"}, lines(out), extra)
	}
}

func TestInvalidInput(t *testing.T) {
	root := writeTree(t, "a")

	_, err := runCmd(t, root, "--log-level", "loud")
	assert.Error(t, err)

	_, err = runCmd(t, root, "-i", "/")
	assert.Error(t, err)

	_, err = runCmd(t, filepath.Join(root, "missing"))
	assert.Error(t, err)
}
