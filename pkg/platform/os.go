// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"path/filepath"
)

// OS names as reported by runtime.GOOS.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// UserConfigDir returns the base directory for per-user configuration on
// goos: %APPDATA% (or %USERPROFILE%\AppData\Roaming) on Windows,
// ~/Library/Application Support on macOS and $XDG_CONFIG_HOME (or ~/.config)
// elsewhere. getenv and homeDir are usually os.Getenv and os.UserHomeDir.
func UserConfigDir(goos string, getenv func(string) string, homeDir func() (string, error)) (string, error) {
	switch goos {
	case Windows:
		if dir := getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case Darwin:
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}
