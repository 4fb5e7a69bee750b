package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes two-space indented JSON. Remote entities encode to
// the exact object the API returned.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}
