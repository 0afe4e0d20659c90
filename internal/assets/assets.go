package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

// SettingsFile is the name the default settings are written under.
const SettingsFile = "settings.yaml"

//go:embed default-settings.yaml
var defaultSettings []byte

// DefaultSettings returns the embedded default settings YAML.
func DefaultSettings() []byte { return defaultSettings }

// WriteDefaultSettingsIfMissing writes settings.yaml to targetDir if it does not exist.
// It returns the path and whether a file was written.
func WriteDefaultSettingsIfMissing(targetDir string) (string, bool, error) {
	if targetDir == "" {
		return "", false, errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", false, err
	}
	p := filepath.Join(targetDir, SettingsFile)
	if _, err := os.Stat(p); err == nil {
		return p, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, err
	}
	if err := os.WriteFile(p, defaultSettings, 0o644); err != nil {
		return "", false, err
	}
	return p, true, nil
}
