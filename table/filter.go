package table

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FilterFn reports whether a cell value passes the filter string.
type FilterFn func(value any, filter string) bool

// Fold normalizes s for comparison: diacritics are stripped and the result is
// case folded, so Fold("Archivé") == Fold("ARCHIVE").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// Stringify formats a cell value the way filters and default cells see it.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// IncludesString passes when the folded value contains the folded filter.
func IncludesString(value any, filter string) bool {
	return strings.Contains(Fold(Stringify(value)), Fold(filter))
}

// EqualsString passes when the folded value equals the folded filter.
func EqualsString(value any, filter string) bool {
	return Fold(Stringify(value)) == Fold(filter)
}

// ArrIncludes passes when any element of a slice value equals the filter.
// Non-slice values are compared with EqualsString.
func ArrIncludes(value any, filter string) bool {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return EqualsString(value, filter)
	}
	for i := 0; i < rv.Len(); i++ {
		if EqualsString(rv.Index(i).Interface(), filter) {
			return true
		}
	}
	return false
}

// autoFilterFn picks a column filter from the shape of a sample value.
// Select-driven filters carry exact option values, so scalars use equality.
func autoFilterFn(sample any) FilterFn {
	if sample == nil {
		return EqualsString
	}
	switch reflect.TypeOf(sample).Kind() {
	case reflect.Slice, reflect.Array:
		return ArrIncludes
	default:
		return EqualsString
	}
}

// globalFilterable reports whether values like sample take part in the global
// filter. Strings, numbers and Stringers do; structs, maps and slices do not.
func globalFilterable(sample any) bool {
	if sample == nil {
		return false
	}
	if _, ok := sample.(fmt.Stringer); ok {
		return true
	}
	switch reflect.TypeOf(sample).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
