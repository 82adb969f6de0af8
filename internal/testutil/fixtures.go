// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// NewToolkitDir creates a directory laid out like a Java Card SDK under a
// fresh temporary directory and returns its absolute path.
func NewToolkitDir(t testing.TB, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	MustMkdirAll(t, filepath.Join(dir, "lib"), 0o755)
	MustMkdirAll(t, filepath.Join(dir, "api_export_files"), 0o755)
	MustWriteFile(t, filepath.Join(dir, "lib", "api_classic.jar"), "")
	return dir
}

// WriteBuildFile writes content as name inside a fresh temporary directory
// and returns the file's path.
func WriteBuildFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	MustWriteFile(t, path, content)
	return path
}
