package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunAnalyzePass(t *testing.T) {
	dir := t.TempDir()
	hsf := writeFixture(t, dir, "s1.hsf", "lifelines: a, b\nmessages: m\nterm: strict(a!m, b?m)\n")
	htf := writeFixture(t, dir, "s1.htf", "colocalization: #all\ntrace: a!m, b?m\n")

	require.Equal(t, exitOK, run([]string{"analyze", hsf, htf}))
}

func TestRunAnalyzeFail(t *testing.T) {
	dir := t.TempDir()
	hsf := writeFixture(t, dir, "s1.hsf", "lifelines: a, b\nmessages: m\nterm: strict(a!m, b?m)\n")
	htf := writeFixture(t, dir, "s1.htf", "colocalization: #all\ntrace: b?m, a!m\n")

	require.Equal(t, exitFail, run([]string{"analyze", hsf, htf}))
}

func TestRunAnalyzeMissingFile(t *testing.T) {
	require.Equal(t, exitInputError, run([]string{"analyze", "/no/such/file.hsf", "/no/such/file.htf"}))
}

func TestRunExploreComplete(t *testing.T) {
	dir := t.TempDir()
	hsf := writeFixture(t, dir, "s1.hsf", "lifelines: a, b\nmessages: m\nterm: strict(a!m, b?m)\n")

	require.Equal(t, exitOK, run([]string{"explore", hsf}))
}

func TestRunDrawWritesDot(t *testing.T) {
	dir := t.TempDir()
	hsf := writeFixture(t, dir, "s1.hsf", "lifelines: a, b\nmessages: m\nterm: strict(a!m, b?m)\n")

	require.Equal(t, exitOK, run([]string{"draw", hsf}))
	_, err := os.Stat(filepath.Join(dir, "s1.dot"))
	require.NoError(t, err)
}

func TestRunUnknownCommand(t *testing.T) {
	require.Equal(t, exitInputError, run([]string{"frobnicate"}))
}
