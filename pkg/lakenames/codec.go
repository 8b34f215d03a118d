package lakenames

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// jsonAPI keeps numbers exact, leaves non-ASCII and HTML characters
// unescaped and sorts object keys so repeated runs produce identical bytes.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// ReadPoints decodes a JSON array of point records.
//
// Array elements that are not objects are returned as empty points so that
// positions in the result match positions in the source; they never pass
// coordinate validation.
func ReadPoints(data []byte) ([]Point, error) {
	var raw any
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, ErrNotAnArray
	}

	points := make([]Point, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			points[i] = Point(obj)
		} else {
			points[i] = Point{}
		}
	}
	return points, nil
}

// marshalIndent renders v with two-space indentation.
func marshalIndent(v any) ([]byte, error) {
	compact, err := jsonAPI.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func isNull(raw jsoniter.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
