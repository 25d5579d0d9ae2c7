package strata

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultFileName is the configuration file name used when the caller
// does not supply one.
const DefaultFileName = "config.yaml"

// Config is the immutable view over a fully resolved configuration tree.
// The underlying tree is never modified after Load returns, so a Config
// is safe for concurrent use without locking.
type Config struct {
	path string         // Absolute path of the root document
	tree map[string]any // Merged result, never mutated
}

// Load resolves the document at path, extends chain included, and returns
// the merged configuration. An empty path discovers the config file per
// DefaultDiscoveryOptions. Any resolution error means no configuration is
// returned; there is no partial result.
func Load(path string) (*Config, error) {
	return NewBuilder().WithFile(path).Build()
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config load failed: %v", err))
	}
	return cfg
}

// Path returns the root document path the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Get walks the merged tree along a dotted path and returns the value
// there. A missing key yields a *KeyNotFoundError naming the full dotted
// path walked so far; descending through a non-mapping node yields a
// *TypeMismatchError. An empty path returns the root mapping.
func (c *Config) Get(path string) (*Value, error) {
	return walkPath(c.tree, "", path)
}

// Has reports whether a dotted path exists in the merged tree.
func (c *Config) Has(path string) bool {
	_, err := c.Get(path)
	return err == nil
}

// Keys returns the sorted keys of the mapping at the given dotted path.
// An empty path lists the root mapping's keys.
func (c *Config) Keys(path string) ([]string, error) {
	value, err := c.Get(path)
	if err != nil {
		return nil, err
	}
	node, ok := value.raw.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Path: path, Want: "mapping", Got: value.raw}
	}

	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Tree returns a deep copy of the merged tree.
func (c *Config) Tree() map[string]any {
	return copyTreeValue(c.tree).(map[string]any)
}

// Flatten returns the merged tree as dotted-path to leaf value pairs.
// Sequences are leaves; their elements are not expanded into paths.
func (c *Config) Flatten() map[string]any {
	return flattenTree(c.tree, "")
}

// String retrieves a string value at a dotted path, converting common
// scalar types.
func (c *Config) String(path string) (string, error) {
	value, err := c.Get(path)
	if err != nil {
		return "", err
	}
	return value.String()
}

// Int64 retrieves an int64 value at a dotted path, converting numeric
// types and parsable strings.
func (c *Config) Int64(path string) (int64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}
	return value.Int64()
}

// Float64 retrieves a float64 value at a dotted path.
func (c *Config) Float64(path string) (float64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}
	return value.Float64()
}

// Bool retrieves a boolean value at a dotted path.
func (c *Config) Bool(path string) (bool, error) {
	value, err := c.Get(path)
	if err != nil {
		return false, err
	}
	return value.Bool()
}

// walkPath descends from root along a dotted path. base is the dotted
// path of root itself, used to report full paths in errors when walking
// starts from a nested Value.
func walkPath(root any, base, path string) (*Value, error) {
	if path == "" {
		return &Value{path: base, raw: root}, nil
	}

	current := root
	walked := base
	for _, segment := range strings.Split(path, ".") {
		if walked == "" {
			walked = segment
		} else {
			walked = walked + "." + segment
		}

		node, ok := current.(map[string]any)
		if !ok {
			return nil, &TypeMismatchError{Path: walked, Want: "mapping", Got: current}
		}
		value, exists := node[segment]
		if !exists {
			return nil, &KeyNotFoundError{Path: walked}
		}
		current = value
	}

	return &Value{path: walked, raw: current}, nil
}
