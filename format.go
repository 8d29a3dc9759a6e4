package elemental

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Layouts used by TextFormat when none are configured.
const (
	DefaultDateLayout     = "January 2, 2006"
	DefaultDateTimeLayout = "January 2, 2006 3:04pm"
)

// dateInputs are the string layouts TextFormat accepts for date values.
var dateInputs = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TextFormat is the default Formatter.
//
// Dates accept time.Time or ISO-style strings; values that cannot be parsed
// are returned unchanged. Money is grouped and fixed to two decimals for the
// configured language (English by default) behind CurrencySymbol ("$" by
// default). Phone numbers with 7, 10 or 11 digits are punctuated North
// American style.
type TextFormat struct {
	DateLayout     string
	DateTimeLayout string
	CurrencySymbol string
	Language       language.Tag
}

// Date formats v as a date.
func (f TextFormat) Date(v any) string {
	return f.formatTime(v, orDefault(f.DateLayout, DefaultDateLayout))
}

// DateTime formats v as a date and time.
func (f TextFormat) DateTime(v any) string {
	return f.formatTime(v, orDefault(f.DateTimeLayout, DefaultDateTimeLayout))
}

func (f TextFormat) formatTime(v any, layout string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(layout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(layout)
	}
	s := strings.TrimSpace(toString(v))
	if s == "" || strings.HasPrefix(s, "0000-00-00") {
		return ""
	}
	for _, in := range dateInputs {
		if t, err := time.Parse(in, s); err == nil {
			return t.Format(layout)
		}
	}
	return s
}

// Money formats v as a currency amount: 1234.5 -> "$1,234.50".
func (f TextFormat) Money(v any) string {
	amount := toFloat(v)
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	tag := f.Language
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return sign + orDefault(f.CurrencySymbol, "$") + p.Sprintf("%v", number.Decimal(amount, number.Scale(2)))
}

// Phone formats the digits of v: 4035551234 -> "(403) 555-1234".
func (f TextFormat) Phone(v any) string {
	s := toString(v)
	var digits strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	d := digits.String()
	switch len(d) {
	case 7:
		return d[:3] + "-" + d[3:]
	case 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case 11:
		if d[0] == '1' {
			return "1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
		}
	}
	return s
}

// ObjectFieldsToList projects field out of each item, skipping items that
// do not have it.
func (f TextFormat) ObjectFieldsToList(items []Record, field string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if v, ok := item.Field(field); ok {
			out = append(out, toString(v))
		}
	}
	return out
}

// ListToString joins items as an English list: "a", "a and b",
// "a, b, and c".
func (f TextFormat) ListToString(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
