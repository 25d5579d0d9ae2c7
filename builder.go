// File: strata/builder.go
package strata

import (
	"fmt"
	"path/filepath"
)

// Builder provides a fluent interface for loading configurations.
type Builder struct {
	file      string
	rootDir   string
	format    string
	discovery DiscoveryOptions
	err       error
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{
		format:    FormatAuto,
		discovery: DefaultDiscoveryOptions(),
	}
}

// WithFile sets the root configuration file path. An empty path leaves
// file discovery in effect.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithRootDir sets the directory a relative root file path resolves
// against. It is also the starting directory for discovery.
func (b *Builder) WithRootDir(dir string) *Builder {
	b.rootDir = dir
	b.discovery.StartDir = dir
	return b
}

// WithFileName sets the file name discovery searches for.
func (b *Builder) WithFileName(name string) *Builder {
	b.discovery.FileName = name
	return b
}

// WithFormat forces the document format (yaml, toml, json) instead of
// detecting it per file.
func (b *Builder) WithFormat(format string) *Builder {
	if !validFormat(format) {
		b.err = fmt.Errorf("unknown config format %q", format)
		return b
	}
	b.format = format
	return b
}

// WithDiscovery replaces the discovery options used when no file is set.
func (b *Builder) WithDiscovery(opts DiscoveryOptions) *Builder {
	b.discovery = opts
	return b
}

// Build resolves the configured root document and returns the merged,
// read-only configuration.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	path := b.file
	if path == "" {
		discovered, err := Discover(b.discovery)
		if err != nil {
			return nil, err
		}
		path = discovered
	} else if b.rootDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(b.rootDir, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path '%s': %w", path, err)
	}

	tree, err := resolve(absPath, "", nil, b.format)
	if err != nil {
		return nil, err
	}

	return &Config{path: absPath, tree: tree}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
