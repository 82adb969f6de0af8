// SPDX-License-Identifier: MPL-2.0

package capconfig

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ToolkitEnvVar is the environment variable naming the SDK home.
const ToolkitEnvVar = "JC_HOME"

type (
	// Filesystem answers the two read-only questions the validator asks about paths.
	Filesystem interface {
		// PathExists reports whether path names an existing file or directory.
		PathExists(path string) bool
		// AbsolutePath normalizes a possibly-relative path. It must be idempotent.
		AbsolutePath(path string) string
	}

	// SourceFS is a Filesystem that can also read build files.
	SourceFS interface {
		Filesystem
		ReadFile(path string) ([]byte, error)
	}

	// Environment reads environment variables.
	Environment interface {
		LookupEnv(name string) (string, bool)
	}

	// OSFilesystem is the Filesystem backed by the host OS.
	OSFilesystem struct{}

	// OSEnvironment is the Environment backed by the process environment.
	OSEnvironment struct{}

	// MapFilesystem is an in-memory SourceFS. Relative paths are resolved
	// against Root, which must be absolute. Entries in Paths without content
	// in Files behave like directories.
	MapFilesystem struct {
		Root  string
		Paths map[string]bool
		Files map[string][]byte
	}

	// MapEnvironment is an in-memory Environment.
	MapEnvironment map[string]string
)

// PathExists implements Filesystem.
func (OSFilesystem) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AbsolutePath implements Filesystem. If the working directory cannot be
// determined the cleaned input is returned.
func (OSFilesystem) AbsolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// ReadFile implements SourceFS.
func (OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// NewMapFilesystem returns a MapFilesystem rooted at root containing paths.
// Relative entries in paths are resolved against root.
func NewMapFilesystem(root string, paths ...string) *MapFilesystem {
	m := &MapFilesystem{Root: root, Paths: make(map[string]bool, len(paths)), Files: map[string][]byte{}}
	for _, p := range paths {
		m.Paths[m.AbsolutePath(p)] = true
	}
	return m
}

// PathExists implements Filesystem.
func (m *MapFilesystem) PathExists(path string) bool {
	return m.Paths[m.AbsolutePath(path)]
}

// AbsolutePath implements Filesystem.
func (m *MapFilesystem) AbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(m.Root, path)
}

// AddFile stores data at path, creating the entry if needed.
func (m *MapFilesystem) AddFile(path string, data []byte) {
	abs := m.AbsolutePath(path)
	if m.Paths == nil {
		m.Paths = map[string]bool{}
	}
	if m.Files == nil {
		m.Files = map[string][]byte{}
	}
	m.Paths[abs] = true
	m.Files[abs] = data
}

// ReadFile implements SourceFS.
func (m *MapFilesystem) ReadFile(path string) ([]byte, error) {
	data, ok := m.Files[m.AbsolutePath(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

// LookupEnv implements Environment.
func (m MapEnvironment) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
