package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DecodeError reports where a decode failed. Line and Column are 1-based;
// Column counts bytes, not display width.
type DecodeError struct {
	Line   int
	Column int
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeJSON parses data into the ordered value model: *Map for objects,
// []any for arrays, int64 for integral numbers, float64 for the rest,
// and string, bool, or nil for the remaining scalars. Anything but
// whitespace after the top-level value is an error. Failures are
// reported as a *DecodeError carrying the position.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, wrapDecodeError(data, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, wrapDecodeError(data, err)
		}
		line, col := lineCol(data, dec.InputOffset())
		return nil, &DecodeError{
			Line:   line,
			Column: col,
			Offset: dec.InputOffset(),
			Err:    fmt.Errorf("unexpected %v after top-level value", tok),
		}
	}
	return v, nil
}

// DecodeJSONString is DecodeJSON for string input.
func DecodeJSONString(s string) (any, error) {
	return DecodeJSON([]byte(s))
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			if err := decodeObject(dec, m); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return f, nil
	default:
		return t, nil
	}
}

// decodeObject fills m from a token stream positioned just past the
// opening brace, consuming through the closing one.
func decodeObject(dec *json.Decoder, m *Map) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("object key %v is not a string", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		m.Set(key, v)
	}
	_, err := dec.Token()
	return err
}

func wrapDecodeError(data []byte, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	offset := int64(len(data))
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syn):
		offset = syn.Offset
	case errors.As(err, &typ):
		offset = typ.Offset
	}
	line, col := lineCol(data, offset)
	return &DecodeError{Line: line, Column: col, Offset: offset, Err: err}
}

func lineCol(data []byte, offset int64) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
