package graph

import (
	"fmt"

	"github.com/p-sodmann/ironweaver/pkg/value"
)

// cloneAttrs copies an attribute map one level deep. Values themselves are
// shared; attribute maps are what the engine mutates in place.
func cloneAttrs(src map[string]value.Value) map[string]value.Value {
	dst := make(map[string]value.Value, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// appendToListAttr grows the list stored under key by one element, creating
// a fresh single-element list when the key is absent. The existing backing
// slice is never mutated, so change detection sees a distinct value.
func appendToListAttr(attr map[string]value.Value, key string, v value.Value) (value.Value, error) {
	existing, ok := attr[key]
	if !ok {
		return value.ListVal(v), nil
	}
	items, isList := existing.AsList()
	if !isList {
		return value.Value{}, fmt.Errorf("%w: attribute %q holds %s, not a list", ErrInvalidParameter, key, existing.Kind())
	}
	grown := make([]value.Value, 0, len(items)+1)
	grown = append(grown, items...)
	grown = append(grown, v)
	return value.ListVal(grown...), nil
}
