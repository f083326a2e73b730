package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OptionsFilename is the optional traversal config looked up next to the
// root sidecar.
const OptionsFilename = "rss_config.yml"

// Options control the downward walk.
type Options struct {
	// SkipDirs lists directory names (not paths) excluded from the walk.
	SkipDirs []string `yaml:"skip_dirs"`
}

// DefaultOptions returns the options used when no config file is present.
func DefaultOptions() Options {
	return Options{SkipDirs: []string{".git", "node_modules"}}
}

// LoadOptions reads rss_config.yml from dir. A missing file yields the
// defaults; a malformed one is an error rather than a silent fallback.
func LoadOptions(dir string) (Options, error) {
	path := filepath.Join(dir, OptionsFilename)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if opts.SkipDirs == nil {
		opts.SkipDirs = DefaultOptions().SkipDirs
	}
	return opts, nil
}

// SkipDir reports whether a directory name is excluded from the walk.
func (o Options) SkipDir(name string) bool {
	for _, skip := range o.SkipDirs {
		if name == skip {
			return true
		}
	}
	return false
}
