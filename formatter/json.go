package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON serializes v without HTML escaping, indented with two spaces
// unless compact is set. The result carries no trailing newline.
func MarshalJSON(v any, compact bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
