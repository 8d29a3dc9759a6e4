package elemental

import (
	"testing"
	"time"
)

func TestTextFormatDates(t *testing.T) {
	f := TextFormat{}
	when := time.Date(2023, time.November, 4, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		fn   func(any) string
		in   any
		want string
	}{
		{"time", f.Date, when, "November 4, 2023"},
		{"pointer", f.Date, &when, "November 4, 2023"},
		{"iso string", f.Date, "2023-11-04", "November 4, 2023"},
		{"rfc3339", f.DateTime, "2023-11-04T09:30:00Z", "November 4, 2023 9:30am"},
		{"sql datetime", f.DateTime, "2023-11-04 21:05:00", "November 4, 2023 9:05pm"},
		{"nil", f.Date, nil, ""},
		{"zero time", f.Date, time.Time{}, ""},
		{"zero sql date", f.Date, "0000-00-00", ""},
		{"unparseable", f.Date, "next week", "next week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	custom := TextFormat{DateLayout: "2006/01/02"}
	if got := custom.Date(when); got != "2023/11/04" {
		t.Errorf("custom layout = %q", got)
	}
}

func TestTextFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		f    TextFormat
		in   any
		want string
	}{
		{"float", TextFormat{}, 12.5, "$12.50"},
		{"negative", TextFormat{}, -3, "-$3.00"},
		{"string", TextFormat{}, "7.1", "$7.10"},
		{"symbol", TextFormat{CurrencySymbol: "€"}, 2, "€2.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Money(tt.in); got != tt.want {
				t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextFormatPhone(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"5551234", "555-1234"},
		{"403.555.1234", "(403) 555-1234"},
		{4035551234, "(403) 555-1234"},
		{"1-403-555-1234", "1 (403) 555-1234"},
		{"+44 20 7946 0958", "+44 20 7946 0958"},
	}

	for _, tt := range tests {
		t.Run(toString(tt.in), func(t *testing.T) {
			if got := (TextFormat{}).Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextFormatLists(t *testing.T) {
	f := TextFormat{}
	items := []Record{Row{"name": "a"}, Row{"other": 1}, nil, Row{"name": "b"}, Row{"name": "c"}}

	names := f.ObjectFieldsToList(items, "name")
	if len(names) != 3 {
		t.Fatalf("ObjectFieldsToList() = %v", names)
	}

	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{names, "a, b, and c"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := f.ListToString(tt.items); got != tt.want {
				t.Errorf("ListToString(%v) = %q, want %q", tt.items, got, tt.want)
			}
		})
	}
}
