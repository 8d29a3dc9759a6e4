package elemental

import (
	"context"
	"testing"
	"time"

	"github.com/google/safehtml"
)

func TestCell(t *testing.T) {
	b := New(
		WithAccessor("tags", func(Record) any {
			return []map[string]any{{"name": "go"}, {"name": "html"}, {"name": "yaml"}}
		}),
		WithAccessor("badge", func(r Record) any {
			name, _ := r.Field("name")
			return HTML("<b>" + toString(name) + "</b>")
		}),
		WithAccessor("raw", func(Record) any { return "<script>" }),
	)
	record := Row{
		"name":    "Ada",
		"active":  false,
		"joined":  time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC),
		"balance": 12.5,
		"phone":   "4035551234",
	}

	tests := []struct {
		name string
		col  Column
		want string
	}{
		{"attribute", Column{Attribute: "name"}, "Ada"},
		{"missing attribute", Column{Attribute: "nope"}, ""},
		{"boolean labels", Column{Attribute: "active", Type: TypeBoolean, TypeDetails: Details{"Active/Inactive"}}, `<span class="boolean-false">Inactive</span>`},
		{"boolean default", Column{Attribute: "name", Type: TypeBoolean}, `<span class="boolean-true">Yes</span>`},
		{"boolean two details", Column{Attribute: "name", Type: "Boolean", TypeDetails: Details{"On", "Off"}}, `<span class="boolean-true">On</span>`},
		{"date", Column{Attribute: "joined", Type: TypeDate}, "March 5, 2024"},
		{"datetime", Column{Attribute: "joined", Type: TypeDateTime}, "March 5, 2024 2:07pm"},
		{"timestamp", Column{Attribute: "joined", Type: TypeTimestamp}, "March 5, 2024 2:07pm"},
		{"money", Column{Attribute: "balance", Type: TypeMoney}, "$12.50"},
		{"phone", Column{Attribute: "phone", Type: TypePhone}, "(403) 555-1234"},
		{"method list", Column{Method: "tags()", Type: TypeList, Attribute: "name"}, "go, html, and yaml"},
		{"method html", Column{Method: "badge"}, "<b>Ada</b>"},
		{"method escaped", Column{Method: "raw()"}, "&lt;script&gt;"},
		{"unknown method", Column{Method: "nope()"}, ""},
		{"elements", Column{Elements: []Element{{Tag: "em", Text: ":name"}, {Tag: "hr", SelfClosing: true}}}, "<em>Ada</em><hr />"},
		{"nothing", Column{Label: "Empty"}, "&nbsp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Cell(context.Background(), tt.col, record)
			if err != nil {
				t.Fatalf("Cell() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Cell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCellSafeHTML(t *testing.T) {
	got := defaultBuilder.FormatCell(safehtml.HTMLEscaped("<i>x</i>"), "", nil)
	if got != "&lt;i&gt;x&lt;/i&gt;" {
		t.Errorf("FormatCell(safehtml.HTML) = %q", got)
	}
}

func TestBooleanLabels(t *testing.T) {
	tests := []struct {
		name    string
		details Details
		yes, no string
	}{
		{"default", nil, "Yes", "No"},
		{"split", Details{"Active/Inactive"}, "Active", "Inactive"},
		{"yes only", Details{"Enabled"}, "Enabled", "No"},
		{"pair", Details{"Y", "N"}, "Y", "N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yes, no := booleanLabels(tt.details)
			if yes != tt.yes || no != tt.no {
				t.Errorf("booleanLabels() = (%q, %q), want (%q, %q)", yes, no, tt.yes, tt.no)
			}
		})
	}
}

func TestRowAndColumnClass(t *testing.T) {
	rows := RowOptions{ClassModifiers: ClassModifiers{
		{Class: "inactive", When: Conditions{{"active", "false"}}},
		{Class: "vip", When: Conditions{{"tier", ">= 3"}}},
	}}

	if got := defaultBuilder.RowClass(Row{"active": false, "tier": 5}, rows); got != "inactive vip" {
		t.Errorf("RowClass() = %q", got)
	}
	if got := defaultBuilder.RowClass(Row{"active": true}, rows); got != "" {
		t.Errorf("RowClass() = %q, want empty", got)
	}

	col := Column{BodyClass: "num", ClassModifiers: ClassModifiers{{Class: "neg", When: Conditions{{"balance", "< 0"}}}}}
	if got := defaultBuilder.CellClass(Row{"balance": -4}, col); got != "num neg" {
		t.Errorf("CellClass() = %q", got)
	}
	if got := ColumnClass(Column{HeaderClass: "h"}); got != ` class="h"` {
		t.Errorf("ColumnClass() = %q", got)
	}
	if got := ColumnClass(Column{}); got != "" {
		t.Errorf("ColumnClass() = %q, want empty", got)
	}
}
