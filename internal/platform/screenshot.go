package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/rex-runner/internal/core"
)

// DefaultScreenshotDir returns ~/.rex/screenshots, or "" without a home directory.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rex", "screenshots")
}

// SaveScreenshot writes the plain-text frame to dir and returns the file path.
func SaveScreenshot(dir string, s *core.Screen) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("platform: no screenshot directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("platform: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("platform: cannot write screenshot: %w", err)
	}
	return path, nil
}
