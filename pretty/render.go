package pretty

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/sofia-research/sofia/value"
)

// Strings at or past this length that look like base64 payloads are
// redacted instead of printed.
const redactionThreshold = 2000

var (
	dataURLImage = regexp.MustCompile(`^data:image/[a-z]+;base64,[A-Za-z0-9+/=]+$`)
	bareBase64   = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// Render formats v as indented multi-line text starting at level 0 with
// space indentation. See RenderIndent.
func Render(v any) string {
	return RenderIndent(v, 0, Spaces)
}

// RenderIndent formats v recursively. Scalars render as one "tag: value"
// line; sequences and mappings render a header, a bracket pair, and one
// "[>]" marker line per element with the element itself one level
// deeper. Struct fields expand the same way, unexported fields skipped,
// down to MaxDepth levels. Values that contain themselves render a
// circular-reference marker instead of recursing forever. The function
// is total: anything unrecognized becomes a tagged fallback line.
func RenderIndent(v any, level int, style IndentStyle) string {
	r := renderer{style: style}
	return r.render(v, level)
}

// renderer carries the indent style and the identities of the containers
// on the active recursion branch. The path is pushed on entry to a
// container and popped on exit, so diamond-shaped references render
// fully and only true ancestor cycles trip the guard.
type renderer struct {
	style IndentStyle
	path  []uintptr
}

func (r *renderer) line(s string, level int) string {
	return Indent(s, level, r.style)
}

func (r *renderer) render(v any, level int) string {
	if v == nil {
		return r.line("nil", level)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return r.line("nil", level)
		}
	}

	if id, ok := identity(rv); ok {
		for _, p := range r.path {
			if p == id {
				return r.line(fmt.Sprintf("<circular reference to %T>", v), level)
			}
		}
		r.path = append(r.path, id)
		defer func() { r.path = r.path[:len(r.path)-1] }()
	}

	switch x := v.(type) {
	case []byte:
		return r.line(renderBytes(x), level)
	case *value.Map:
		return r.renderMap(x, level)
	case reflect.Type:
		return r.line("type: "+x.String(), level)
	}

	switch rv.Kind() {
	case reflect.String:
		return r.line(renderString(rv.String()), level)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return r.line(fmt.Sprintf("%T: %v", v, v), level)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return r.line(renderBytes(rv.Bytes()), level)
		}
		return r.renderSeq(rv, level)
	case reflect.Array:
		return r.renderSeq(rv, level)
	case reflect.Map:
		return r.renderGoMap(rv, level)
	case reflect.Ptr:
		return r.render(rv.Elem().Interface(), level)
	case reflect.Struct:
		return r.renderStruct(rv, level)
	default:
		return r.line(fmt.Sprintf("unknown type: %T", v), level)
	}
}

func renderBytes(b []byte) string {
	if len(b) == 0 {
		return "bytes:"
	}
	parts := make([]string, 0, 4)
	for i, c := range b {
		if i == 4 {
			break
		}
		parts = append(parts, fmt.Sprintf("%02x", c))
	}
	s := "bytes: " + strings.Join(parts, " ")
	if len(b) > 4 {
		s += " ..."
	}
	return s
}

func renderString(s string) string {
	if len(s) >= redactionThreshold && (dataURLImage.MatchString(s) || bareBase64.MatchString(s)) {
		return "str: [base64 image data]"
	}
	return "str: " + s
}

func (r *renderer) renderSeq(rv reflect.Value, level int) string {
	n := rv.Len()
	if n == 0 {
		return r.line("list: []", level)
	}
	lines := make([]string, 0, 3+2*n)
	lines = append(lines, r.line("list:", level), r.line("[", level))
	for i := 0; i < n; i++ {
		lines = append(lines, r.line("[>] item:", level))
		lines = append(lines, r.render(rv.Index(i).Interface(), level+1))
	}
	lines = append(lines, r.line("]", level))
	return strings.Join(lines, "\n")
}

func (r *renderer) renderMap(m *value.Map, level int) string {
	if m.Len() == 0 {
		return r.line("map: {}", level)
	}
	lines := make([]string, 0, 3+2*m.Len())
	lines = append(lines, r.line("map:", level), r.line("{", level))
	for k, v := range m.Iterate {
		lines = append(lines, r.line("[>] "+k+":", level))
		lines = append(lines, r.render(v, level+1))
	}
	lines = append(lines, r.line("}", level))
	return strings.Join(lines, "\n")
}

// renderGoMap handles builtin maps, which have no insertion order to
// preserve. Keys print sorted by their formatted text for stable
// output.
func (r *renderer) renderGoMap(rv reflect.Value, level int) string {
	if rv.Len() == 0 {
		return r.line("map: {}", level)
	}
	type entry struct {
		label string
		val   reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			label: fmt.Sprintf("%v", iter.Key().Interface()),
			val:   iter.Value(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].label < entries[j].label })

	lines := make([]string, 0, 3+2*len(entries))
	lines = append(lines, r.line("map:", level), r.line("{", level))
	for _, e := range entries {
		lines = append(lines, r.line("[>] "+e.label+":", level))
		lines = append(lines, r.render(e.val.Interface(), level+1))
	}
	lines = append(lines, r.line("}", level))
	return strings.Join(lines, "\n")
}

func (r *renderer) renderStruct(rv reflect.Value, level int) string {
	t := rv.Type()
	header := r.line("struct: "+t.String(), level)
	if level > MaxDepth {
		return header + "\n" + r.line("<max depth reached>", level+1)
	}
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath == "" {
			fields = append(fields, i)
		}
	}
	if len(fields) == 0 {
		return header
	}
	lines := make([]string, 0, 3+2*len(fields))
	lines = append(lines, header, r.line("{", level))
	for _, i := range fields {
		lines = append(lines, r.line("[>] "+t.Field(i).Name+":", level))
		lines = append(lines, r.render(rv.Field(i).Interface(), level+1))
	}
	lines = append(lines, r.line("}", level))
	return strings.Join(lines, "\n")
}

func identity(rv reflect.Value) (uintptr, bool) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.Pointer(), true
	}
	return 0, false
}
