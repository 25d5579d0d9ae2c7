// File: strata/helper.go
package strata

// flattenTree converts a nested mapping to a flat map with dot-notation paths.
func flattenTree(tree map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		// Non-empty mappings flatten further; everything else is a leaf
		if nested, isMap := value.(map[string]any); isMap && len(nested) > 0 {
			for subPath, subValue := range flattenTree(nested, path) {
				flat[subPath] = subValue
			}
		} else {
			flat[path] = copyTreeValue(value)
		}
	}

	return flat
}
