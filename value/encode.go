package value

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EncodeJSON renders v as JSON text. An indent above zero pretty-prints
// with that many spaces per level; zero or below produces compact output
// with no separator whitespace. HTML escaping is off in both forms, so
// <, >, and & pass through unchanged. *Map values encode in insertion
// order. No trailing newline.
func EncodeJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodeJSONString is EncodeJSON returning a string.
func EncodeJSONString(v any, indent int) (string, error) {
	b, err := EncodeJSON(v, indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
