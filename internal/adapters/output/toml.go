package output

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// TOMLFormatter needs a table at the top level: lists are written under
// "items" and scalars under "value". TOML has no null, so null values are
// dropped.
type TOMLFormatter struct{}

func (f *TOMLFormatter) Format(w io.Writer, data any) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	var document map[string]any
	switch value := stripNulls(generic).(type) {
	case map[string]any:
		document = value
	case []any:
		document = map[string]any{"items": value}
	case nil:
		document = map[string]any{}
	default:
		document = map[string]any{"value": value}
	}

	encoder := toml.NewEncoder(w)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

func stripNulls(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, inner := range typed {
			if inner == nil {
				delete(typed, key)
				continue
			}
			typed[key] = stripNulls(inner)
		}
		return typed
	case []any:
		kept := typed[:0]
		for _, inner := range typed {
			if inner == nil {
				continue
			}
			kept = append(kept, stripNulls(inner))
		}
		return kept
	default:
		return value
	}
}
