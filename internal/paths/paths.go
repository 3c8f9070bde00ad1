// Package paths resolves the per-user files of the game under ~/.colorswitch.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the per-user directory, relative to the home directory.
const DirName = ".colorswitch"

// Expand replaces a leading "~" with the user's home directory.
// Other paths, including "~user/...", are returned unchanged.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// UserFile returns a path inside ~/.colorswitch.
func UserFile(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: cannot find home directory: %w", err)
	}
	return filepath.Join(append([]string{home, DirName}, elem...)...), nil
}
