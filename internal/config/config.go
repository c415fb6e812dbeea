package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gorewood/authorloc/internal/envfile"
)

// Environment variables that supply flag defaults.
const (
	EnvPath       = "AUTHORLOC_PATH"
	EnvExtensions = "AUTHORLOC_EXTENSIONS"
	EnvFormat     = "AUTHORLOC_FORMAT"
	EnvColor      = "AUTHORLOC_COLOR"
	EnvSort       = "AUTHORLOC_SORT"
	EnvLocale     = "AUTHORLOC_LOCALE"
)

// logger is resolved per call: the CLI installs its handler after startup.
func logger() *slog.Logger {
	return slog.Default().With("package", "config")
}

// Defaults holds values used when the corresponding flag is not given.
// Empty fields mean "no default".
type Defaults struct {
	Path       string
	Extensions string
	Format     string
	Color      string
	Sort       string
	Locale     string
}

// DefaultFiles returns the env files consulted by LoadDefaults, highest
// priority first: .env.local and .env in the working directory, then the env
// file in the configuration directory.
func DefaultFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}

// LoadDefaults resolves Defaults from the process environment and
// DefaultFiles.
func LoadDefaults() Defaults {
	return Load(os.LookupEnv, DefaultFiles()...)
}

// Load resolves Defaults. A variable present in the environment (per lookup)
// wins over every file, even when set to the empty string; otherwise the
// first file that sets it wins.
//
// Env files are optional. Missing files are skipped silently; files that
// cannot be read or parsed are skipped with a warning.
func Load(lookup func(string) (string, bool), files ...string) Defaults {
	fromFiles := map[string]string{}
	for _, path := range files {
		vars, err := envfile.Read(path)
		if err != nil {
			logger().Warn("ignoring env file", "path", path, "error", err)
			continue
		}
		for key, value := range vars {
			if _, seen := fromFiles[key]; !seen {
				fromFiles[key] = value
			}
		}
	}

	get := func(key string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		return fromFiles[key]
	}

	return Defaults{
		Path:       get(EnvPath),
		Extensions: get(EnvExtensions),
		Format:     get(EnvFormat),
		Color:      get(EnvColor),
		Sort:       get(EnvSort),
		Locale:     get(EnvLocale),
	}
}
