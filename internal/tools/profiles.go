package tools

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProfileBundles are named tool sets spanning several integrations, loaded
// from configs/profiles.yaml. Per-integration profiles do not need an entry
// here: every tool is reachable through the profile it registered under.
var ProfileBundles = map[string][]string{}

// LoadProfiles loads profile bundles from a YAML file
func LoadProfiles(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	profiles := make(map[string][]string)
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles YAML: %w", err)
	}

	return profiles, nil
}

func init() {
	profilePath := findProfilesFile()
	if profilePath == "" {
		return
	}

	profiles, err := LoadProfiles(profilePath)
	if err != nil {
		slog.Warn("Ignoring profile bundles", "path", profilePath, "error", err)
		return
	}

	ProfileBundles = profiles
}

// findProfilesFile searches for the profiles.yaml file in common locations
func findProfilesFile() string {
	locations := []string{
		os.Getenv("PROFILES_CONFIG_PATH"),
		"configs/profiles.yaml",
		filepath.Join(getExecutableDir(), "configs", "profiles.yaml"),
	}

	for _, path := range locations {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// getExecutableDir returns the directory containing the executable
func getExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
