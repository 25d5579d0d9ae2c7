// FILE: strata/merge.go
package strata

// Merge folds an ordered list of trees into a single tree, later trees
// overriding earlier ones. The inputs are never modified and the result
// shares no mutable containers with them. Merging nothing yields an empty
// mapping.
func Merge(trees ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, tree := range trees {
		merged = mergeTrees(merged, tree)
	}
	return merged
}

// mergeTrees deep-merges override on top of base. Two mappings merge key
// by key; any other pairing of shapes (sequence, scalar, nil, or a
// mapping against either) is replaced wholesale by the override value.
// Sequences are atomic: there is no element-wise merging. An explicit
// null override sets the key to nil, it does not remove it.
func mergeTrees(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		result[key] = copyTreeValue(value)
	}

	for key, value := range override {
		baseMap, baseIsMap := base[key].(map[string]any)
		overrideMap, overrideIsMap := value.(map[string]any)
		if baseIsMap && overrideIsMap {
			result[key] = mergeTrees(baseMap, overrideMap)
		} else {
			result[key] = copyTreeValue(value)
		}
	}

	return result
}

// copyTreeValue returns a deep copy of a tree value. Scalars are returned
// as-is; mappings and sequences are copied recursively so the result can
// never alias a caller's containers.
func copyTreeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = copyTreeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyTreeValue(item)
		}
		return out
	default:
		return value
	}
}
