package value

import "testing"

func TestEncodeJSONCompact(t *testing.T) {
	m := NewMap()
	m.Set("z", int64(1))
	inner := NewMap()
	inner.Set("x", true)
	m.Set("a", []any{int64(1), float64(2.5)})
	m.Set("m", inner)

	got, err := EncodeJSONString(m, 0)
	if err != nil {
		t.Fatalf("EncodeJSONString: %v", err)
	}
	want := `{"z":1,"a":[1,2.5],"m":{"x":true}}`
	if got != want {
		t.Errorf("compact = %s, want %s", got, want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	m := NewMap()
	m.Set("b", int64(1))
	m.Set("a", []any{int64(2)})

	got, err := EncodeJSONString(m, 4)
	if err != nil {
		t.Fatalf("EncodeJSONString: %v", err)
	}
	want := "{\n    \"b\": 1,\n    \"a\": [\n        2\n    ]\n}"
	if got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}

func TestEncodeJSONNoHTMLEscape(t *testing.T) {
	got, err := EncodeJSONString("<a> & </a>", 0)
	if err != nil {
		t.Fatalf("EncodeJSONString: %v", err)
	}
	if want := `"<a> & </a>"`; got != want {
		t.Errorf("encoded = %s, want %s", got, want)
	}

	m := NewMap()
	m.Set("tag", "<b>")
	got, err = EncodeJSONString(m, 0)
	if err != nil {
		t.Fatalf("EncodeJSONString: %v", err)
	}
	if want := `{"tag":"<b>"}`; got != want {
		t.Errorf("encoded = %s, want %s", got, want)
	}
}

func TestEncodeJSONScalars(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "null"},
		{"int64", int64(42), "42"},
		{"float", float64(2.5), "2.5"},
		{"string", "s", `"s"`},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeJSONString(tt.v, 0)
			if err != nil {
				t.Fatalf("EncodeJSONString(%v): %v", tt.v, err)
			}
			if got != tt.want {
				t.Errorf("EncodeJSONString(%v) = %s, want %s", tt.v, got, tt.want)
			}
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		`{"z":1,"a":[1,2.5,"s"],"m":{"k":null}}`,
		`{"only":{"nested":{"deep":[true,false]}}}`,
		`[]`,
		`{}`,
		`"plain"`,
	}
	for _, input := range inputs {
		v, err := DecodeJSONString(input)
		if err != nil {
			t.Fatalf("decode %s: %v", input, err)
		}
		got, err := EncodeJSONString(v, 0)
		if err != nil {
			t.Fatalf("encode %s: %v", input, err)
		}
		if got != input {
			t.Errorf("round trip of %s = %s", input, got)
		}
	}
}
