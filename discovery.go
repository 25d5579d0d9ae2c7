// FILE: strata/discovery.go
package strata

import (
	"fmt"
	"os"
	"path/filepath"
)

// DiscoveryOptions configures automatic config file discovery
type DiscoveryOptions struct {
	// File name to search for, including extension
	FileName string

	// Environment variable checked for an explicit file path
	EnvVar string

	// Directory to start searching from (default: current directory)
	StartDir string

	// File or directory names that identify a project root
	RootMarkers []string
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		FileName:    DefaultFileName,
		EnvVar:      "STRATA_CONFIG",
		RootMarkers: []string{".git", ".gitignore", "go.mod"},
	}
}

// Discover locates the root configuration file. Search order: the
// explicit path in the environment variable, the start directory, the
// nearest project root, then each parent directory. Returns a path
// satisfying errors.Is(err, ErrConfigNotFound) when nothing matches.
func Discover(opts DiscoveryOptions) (string, error) {
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}

	// Environment variable wins when set
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			if isFile(path) {
				return path, nil
			}
			return "", &MissingFileError{Path: path, ReferencedBy: "$" + opts.EnvVar}
		}
	}

	start := opts.StartDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		start = cwd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory '%s': %w", opts.StartDir, err)
	}

	// Prefer an explicit config in the start directory
	if candidate := filepath.Join(start, opts.FileName); isFile(candidate) {
		return candidate, nil
	}

	// Fall back to the detected project root (if any)
	if root := findProjectRoot(start, opts.RootMarkers); root != "" {
		if candidate := filepath.Join(root, opts.FileName); isFile(candidate) {
			return candidate, nil
		}
	}

	// As a last resort, search parent directories
	for dir := filepath.Dir(start); ; dir = filepath.Dir(dir) {
		if candidate := filepath.Join(dir, opts.FileName); isFile(candidate) {
			return candidate, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	return "", fmt.Errorf("%w: '%s' starting from %s", ErrConfigNotFound, opts.FileName, start)
}

// findProjectRoot locates the nearest ancestor directory containing one
// of the marker entries.
func findProjectRoot(start string, markers []string) string {
	for dir := start; ; dir = filepath.Dir(dir) {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		if dir == filepath.Dir(dir) {
			return ""
		}
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
