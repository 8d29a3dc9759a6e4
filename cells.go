package elemental

import (
	"context"
	"strings"

	"github.com/google/safehtml"
)

// HTML is markup that cells emit without escaping. Return it from an
// accessor to place trusted markup in a column.
type HTML string

// Cell renders the content of one body cell. Method columns go through the
// accessor registry (and the record's Caller), attribute columns read the
// record, and element columns build each element in turn. Only the URL
// generator can fail.
func (b *Builder) Cell(ctx context.Context, col Column, r Record) (string, error) {
	switch {
	case col.Method != "":
		v := b.call(r, strings.TrimSuffix(col.Method, "()"))
		if strings.EqualFold(col.Type, TypeList) && col.Attribute != "" {
			items := b.format.ObjectFieldsToList(AsRecords(v), col.Attribute)
			return Entities(b.format.ListToString(items)), nil
		}
		return b.FormatCell(v, col.Type, col.TypeDetails), nil

	case col.Attribute != "":
		var v any
		if r != nil {
			v, _ = r.Field(col.Attribute)
		}
		return b.FormatCell(v, col.Type, col.TypeDetails), nil

	case len(col.Elements) > 0:
		var sb strings.Builder
		for _, e := range col.Elements {
			html, err := b.BuildElement(ctx, e, r)
			if err != nil {
				return "", err
			}
			sb.WriteString(html)
		}
		return sb.String(), nil
	}
	return "&nbsp;", nil
}

// FormatCell formats a value for a column type. Output is safe to place in
// a td.
func (b *Builder) FormatCell(v any, typ string, details Details) string {
	switch strings.ToLower(typ) {
	case TypeDate:
		return Entities(b.format.Date(v))
	case TypeDateTime, TypeTimestamp:
		return Entities(b.format.DateTime(v))
	case TypeMoney:
		return Entities(b.format.Money(v))
	case TypePhone:
		return Entities(b.format.Phone(v))
	case TypeBoolean:
		yes, no := booleanLabels(details)
		if toBool(v) {
			return `<span class="boolean-true">` + Entities(yes) + `</span>`
		}
		return `<span class="boolean-false">` + Entities(no) + `</span>`
	}
	switch x := v.(type) {
	case HTML:
		return string(x)
	case safehtml.HTML:
		return x.String()
	}
	return Entities(toString(v))
}

// booleanLabels reads "Yes/No" style labels. A single entry is split on
// "/"; two entries are taken as given.
func booleanLabels(d Details) (yes, no string) {
	yes, no = "Yes", "No"
	switch len(d) {
	case 0:
	case 1:
		if t, f, ok := strings.Cut(d[0], "/"); ok {
			yes, no = t, f
		} else if d[0] != "" {
			yes = d[0]
		}
	default:
		yes, no = d[0], d[1]
	}
	return yes, no
}

// RowClass returns the class of a body row: every row class modifier whose
// conditions hold for r.
func (b *Builder) RowClass(r Record, rows RowOptions) string {
	return b.MatchClasses(r, "", rows.ClassModifiers)
}

// CellClass returns the class of a body cell: the column's body class plus
// any of its class modifiers that hold for r.
func (b *Builder) CellClass(r Record, col Column) string {
	return b.MatchClasses(r, col.BodyClass, col.ClassModifiers)
}

// ColumnClass returns the class attribute of a normalized column's header,
// including its leading space, or "".
func ColumnClass(col Column) string {
	return classAttr(col.HeaderClass)
}

func classAttr(class string) string {
	if class == "" {
		return ""
	}
	return FormatAttributes(Attributes{A("class", class)})
}
