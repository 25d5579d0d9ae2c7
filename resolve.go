// FILE: strata/resolve.go
package strata

import (
	"fmt"
	"os"
	"path/filepath"
)

// extendsKey is the reserved top-level key naming ancestor documents. It
// is resolution metadata only and never appears in a merged tree.
const extendsKey = "extends"

// Resolve loads the document at path, resolves its extends chain and
// returns the fully merged tree. Ancestors merge in declared order, so a
// later extends entry overrides an earlier one and the document's own
// keys override all ancestors. Relative extends entries resolve against
// the directory of the file declaring them.
func Resolve(path string) (map[string]any, error) {
	return resolve(path, "", nil, FormatAuto)
}

// resolve is the recursive worker behind Resolve. referrer names the file
// whose extends entry led here (empty for the root document). stack holds
// the absolute paths currently being resolved, in order, and detects
// cycles without ever needing to pop: each recursion level carries its
// own slice.
func resolve(path, referrer string, stack []string, format string) (map[string]any, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path '%s': %w", path, err)
	}

	for i, inFlight := range stack {
		if inFlight == absPath {
			cycle := append(append([]string(nil), stack[i:]...), absPath)
			return nil, &CyclicExtendsError{Cycle: cycle}
		}
	}

	if info, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: absPath, ReferencedBy: referrer}
		}
		return nil, fmt.Errorf("failed to stat config file '%s': %w", absPath, err)
	} else if info.IsDir() {
		return nil, &MissingFileError{Path: absPath, ReferencedBy: referrer}
	}

	doc, err := parseFile(absPath, format)
	if err != nil {
		return nil, err
	}

	extends, err := extendsList(absPath, doc)
	if err != nil {
		return nil, err
	}
	delete(doc, extendsKey)

	if len(extends) == 0 {
		return doc, nil
	}

	stack = append(stack, absPath)
	baseDir := filepath.Dir(absPath)

	trees := make([]map[string]any, 0, len(extends)+1)
	for _, entry := range extends {
		target := entry
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		ancestor, err := resolve(target, absPath, stack, format)
		if err != nil {
			return nil, err
		}
		trees = append(trees, ancestor)
	}
	trees = append(trees, doc)

	return Merge(trees...), nil
}

// extendsList extracts and validates the extends entries of a document
// root. An absent or explicitly null extends key means no ancestors; any
// other non-sequence value, or a sequence holding non-string entries, is
// rejected rather than coerced.
func extendsList(path string, doc map[string]any) ([]string, error) {
	raw, exists := doc[extendsKey]
	if !exists || raw == nil {
		return nil, nil
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, &ExtendsError{
			Path:   path,
			Reason: fmt.Sprintf("expected a sequence of file paths, got %T", raw),
		}
	}

	entries := make([]string, 0, len(seq))
	for i, item := range seq {
		entry, ok := item.(string)
		if !ok {
			return nil, &ExtendsError{
				Path:   path,
				Reason: fmt.Sprintf("entry %d: expected a file path string, got %T", i, item),
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
