// FILE: strata/decode.go
package strata

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag consulted when decoding into caller structs.
const tagName = "config"

// Decode decodes the entire merged tree into target, which must be a
// non-nil pointer to a struct or map.
func (c *Config) Decode(target any) error {
	return c.DecodeSubtree("", target)
}

// DecodeSubtree decodes the mapping at a dotted path into target. Weak
// typing applies, so "8080" decodes into an int field and "30s" into a
// time.Duration.
func (c *Config) DecodeSubtree(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	value, err := c.Get(path)
	if err != nil {
		return err
	}
	section, ok := value.raw.(map[string]any)
	if !ok {
		return &TypeMismatchError{Path: path, Want: "mapping", Got: value.raw}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", path, err)
	}
	return nil
}
