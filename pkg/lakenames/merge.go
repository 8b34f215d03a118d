package lakenames

import (
	"reflect"
)

// Merge applies winner onto props and returns the updated map, which is
// props itself unless props was nil. changed reports whether any property
// was written.
//
// A previous name that differs from the winner's is kept in alt_name, listed
// once. The winner's wikidata, wikipedia and description replace the
// polygon's when non-null and are left alone otherwise. Nothing else is
// touched.
func Merge(props map[string]any, winner Point) (map[string]any, bool) {
	changed := false
	set := func(key string, v any) {
		if props == nil {
			props = make(map[string]any)
		}
		props[key] = v
		changed = true
	}

	if name, ok := winner.Name(); ok && name != "" {
		if existing, ok := props[KeyName]; ok && truthy(existing) && !reflect.DeepEqual(existing, name) {
			set(KeyAltName, appendAltName(props[KeyAltName], existing))
		}
		set(KeyName, name)
	}

	for _, key := range MetadataKeys {
		if v, ok := winner.Value(key); ok {
			set(key, v)
		}
	}

	return props, changed
}

// appendAltName normalizes an alt_name value to a list and adds name
// unless it is already there.
func appendAltName(current any, name any) []any {
	var list []any
	switch v := current.(type) {
	case nil:
		list = []any{}
	case []any:
		list = v
	case []string:
		list = make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
	default:
		list = []any{v}
	}

	for _, alt := range list {
		if reflect.DeepEqual(alt, name) {
			return list
		}
	}
	return append(list, name)
}
