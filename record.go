package elemental

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Row is a map-backed Record, the usual shape of decoded JSON/YAML data.
type Row map[string]any

// Field returns r[name].
func (r Row) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// RecordFunc adapts a lookup function to Record.
type RecordFunc func(name string) (any, bool)

// Field calls f(name).
func (f RecordFunc) Field(name string) (any, bool) {
	return f(name)
}

// Rows converts decoded maps into records, preserving order.
func Rows(items []map[string]any) []Record {
	records := make([]Record, len(items))
	for i, item := range items {
		records[i] = Row(item)
	}
	return records
}

// AsRecords converts a collection value (as returned by a "list" accessor)
// into records. Maps become Rows; anything that is not a collection yields nil.
func AsRecords(v any) []Record {
	switch items := v.(type) {
	case nil:
		return nil
	case []Record:
		return items
	case []Row:
		out := make([]Record, len(items))
		for i, r := range items {
			out[i] = r
		}
		return out
	case []map[string]any:
		return Rows(items)
	case []any:
		out := make([]Record, 0, len(items))
		for _, item := range items {
			if r := asRecord(item); r != nil {
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}

func asRecord(v any) Record {
	switch r := v.(type) {
	case Record:
		return r
	case map[string]any:
		return Row(r)
	}
	return nil
}

// toString renders a record value as text. nil renders as "", booleans as
// "1" and "".
func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// toBool reports the truthiness of a value: nil, false, zero numbers, "",
// "0" and empty collections are false.
func toBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	case time.Time:
		return !x.IsZero()
	}
	return true
}

// toFloat converts a value to a number. Strings are parsed from their
// leading numeric prefix; anything unparseable is 0.
func toFloat(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case string:
		return parseNumberPrefix(x)
	}
	return parseNumberPrefix(toString(v))
}

// toInt converts a value to an integer without going through float64 where
// it can, so large ids compare exactly. Other values truncate toFloat
// toward zero.
func toInt(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return clampUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return clampUint(x)
	case string:
		if i, ok := parseIntPrefix(x); ok {
			return i
		}
	}
	return int64(toFloat(v))
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

// parseIntPrefix reads the leading integer of s. It fails when the number
// continues with a fraction or exponent, leaving those to toFloat.
func parseIntPrefix(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	if end < len(s) && (s[end] == '.' || s[end] == 'e' || s[end] == 'E') {
		return 0, false
	}
	i, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseNumberPrefix(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit, seenDot := false, false
scan:
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case c == '.' && !seenDot:
			seenDot = true
		case (c == '-' || c == '+') && i == 0:
		default:
			break scan
		}
	}
	if !seenDigit {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
