package output

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// toGeneric round-trips data through its JSON encoding so YAML and TOML
// carry the same keys and values as the JSON output.
func toGeneric(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var generic any
	if err := decoder.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}

	return normalizeNumbers(generic), nil
}

func normalizeNumbers(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, inner := range typed {
			typed[key] = normalizeNumbers(inner)
		}
		return typed
	case []any:
		for i, inner := range typed {
			typed[i] = normalizeNumbers(inner)
		}
		return typed
	case json.Number:
		if integer, err := typed.Int64(); err == nil {
			return integer
		}
		if float, err := typed.Float64(); err == nil {
			return float
		}
		return typed.String()
	default:
		return value
	}
}
