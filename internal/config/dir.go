// Package config resolves authorloc defaults from the environment and
// optional env files.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigHome overrides the configuration directory.
const EnvConfigHome = "AUTHORLOC_CONFIG_HOME"

// appName names the directory created under the platform config root.
const appName = "authorloc"

// Dir returns the directory holding the user-level env file. It is empty
// when no candidate can be determined.
func Dir() string {
	return dirFor(os.Getenv, runtime.GOOS, os.UserHomeDir)
}

// dirFor picks the first usable candidate, in order: $AUTHORLOC_CONFIG_HOME,
// $XDG_CONFIG_HOME/authorloc, %APPDATA%/authorloc (windows only) and
// ~/.config/authorloc.
func dirFor(getenv func(string) string, goos string, home func() (string, error)) string {
	if dir := getenv(EnvConfigHome); dir != "" {
		return dir
	}

	roots := []string{getenv("XDG_CONFIG_HOME")}
	if goos == "windows" {
		roots = append(roots, getenv("APPDATA"))
	}
	if h, err := home(); err == nil && h != "" {
		roots = append(roots, filepath.Join(h, ".config"))
	}

	for _, root := range roots {
		if root != "" {
			return filepath.Join(root, appName)
		}
	}
	return ""
}
