// FILE: strata/parse.go
package strata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatAuto = "auto"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// parseFile reads a document from disk and parses it into a generic
// mapping tree.
func parseFile(path, format string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return parseDocument(path, data, format)
}

// parseDocument parses raw document bytes. An empty or "auto" format is
// detected from the file extension first, then from the content itself.
func parseDocument(path string, data []byte, format string) (map[string]any, error) {
	if format == "" || format == FormatAuto {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(data)
		}
	}

	doc := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: path, Format: FormatTOML, Err: err}
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&doc); err != nil {
			return nil, &ParseError{Path: path, Format: FormatJSON, Err: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Path: path, Format: FormatYAML, Err: err}
		}
	default:
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unable to determine document format")}
	}

	// An empty or null document is an empty mapping, not an error.
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".conf", ".config":
		// Try to detect from content
		return ""
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// Try YAML next (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	// Try TOML last
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	return ""
}

// validFormat reports whether a format name is one this package parses.
func validFormat(format string) bool {
	switch format {
	case FormatAuto, FormatYAML, FormatTOML, FormatJSON:
		return true
	}
	return false
}
