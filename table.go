package elemental

import (
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pthm/elemental/lib/encoding"
)

// Cell types understood by the table.
const (
	TypeDate      = "date"
	TypeDateTime  = "datetime"
	TypeTimestamp = "timestamp"
	TypeMoney     = "money"
	TypePhone     = "phone"
	TypeBoolean   = "boolean"
	TypeList      = "list"
)

// DefaultIDPrefix prefixes row ids when the config sets none.
const DefaultIDPrefix = "item"

// idAttributeClass marks a leading "id" column.
const idAttributeClass = "id-attribute"

// TableConfig declares a table. It is usually loaded from YAML:
//
//	table:
//	  class: table-striped
//	  noDataMessage: No users found.
//	columns:
//	  - attribute: id
//	    sort: true
//	  - attribute: name
//	  - label: Actions
//	    elements:
//	      - icon: pencil
//	        uri: users/:id/edit
//	rows:
//	  idPrefix: user
//	  classModifiers:
//	    inactive:
//	      active: "false"
type TableConfig struct {
	Table   TableOptions `yaml:"table,omitempty" msgpack:"table"`
	Columns []Column     `yaml:"columns,omitempty" msgpack:"columns"`
	Rows    RowOptions   `yaml:"rows,omitempty" msgpack:"rows"`
	Footer  bool         `yaml:"footer,omitempty" msgpack:"footer,omitempty"`
}

// TableOptions are table-level settings.
type TableOptions struct {
	Class         string `yaml:"class,omitempty" msgpack:"class,omitempty"`
	NoDataMessage string `yaml:"noDataMessage,omitempty" msgpack:"noDataMessage,omitempty"`
}

// RowOptions are per-row settings.
type RowOptions struct {
	IDPrefix       string         `yaml:"idPrefix,omitempty" msgpack:"idPrefix,omitempty"`
	ClassModifiers ClassModifiers `yaml:"classModifiers,omitempty" msgpack:"classModifiers,omitempty"`
}

// Column declares one table column. A cell's content comes from Method,
// Attribute or Elements, checked in that order; a column with none of them
// renders a non-breaking space.
//
// Class applies to both header and body cells unless HeaderClass or
// BodyClass override it.
type Column struct {
	Label       string  `yaml:"label,omitempty" msgpack:"label,omitempty"`
	Attribute   string  `yaml:"attribute,omitempty" msgpack:"attribute,omitempty"`
	Method      string  `yaml:"method,omitempty" msgpack:"method,omitempty"`
	Type        string  `yaml:"type,omitempty" msgpack:"type,omitempty"`
	TypeDetails Details `yaml:"typeDetails,omitempty" msgpack:"typeDetails,omitempty"`
	Class       string  `yaml:"class,omitempty" msgpack:"class,omitempty"`
	HeaderClass string  `yaml:"headerClass,omitempty" msgpack:"headerClass,omitempty"`
	BodyClass   string  `yaml:"bodyClass,omitempty" msgpack:"bodyClass,omitempty"`
	Sort        Sort    `yaml:"sort,omitempty" msgpack:"sort,omitempty"`
	// SortAttribute is derived by Normalize from Sort.
	SortAttribute  string         `yaml:"-" msgpack:"sortAttribute,omitempty"`
	Developer      bool           `yaml:"developer,omitempty" msgpack:"developer,omitempty"`
	Elements       []Element      `yaml:"elements,omitempty" msgpack:"elements,omitempty"`
	ClassModifiers ClassModifiers `yaml:"classModifiers,omitempty" msgpack:"classModifiers,omitempty"`
	Footer         string         `yaml:"footer,omitempty" msgpack:"footer,omitempty"`
}

// Sort enables header sorting. In YAML it is either a bool (sort by the
// column's attribute) or a string naming the sort field.
type Sort struct {
	Enabled bool
	Field   string
}

// IsZero reports whether sorting is unset.
func (s Sort) IsZero() bool { return !s.Enabled && s.Field == "" }

// Details carries type-specific settings, such as the "Yes/No" labels of a
// boolean column. A scalar decodes as a single entry.
type Details []string

var (
	tableAliases  = map[string]string{"no_data_message": "noDataMessage"}
	rowAliases    = map[string]string{"id_prefix": "idPrefix", "class_modifiers": "classModifiers"}
	columnAliases = map[string]string{
		"header_class":    "headerClass",
		"body_class":      "bodyClass",
		"type_details":    "typeDetails",
		"class_modifiers": "classModifiers",
	}
)

// UnmarshalYAML accepts snake_case aliases for camelCase keys.
func (t *TableOptions) UnmarshalYAML(n *yaml.Node) error {
	encoding.RenameKeys(n, tableAliases)
	type plain TableOptions
	return n.Decode((*plain)(t))
}

// UnmarshalYAML accepts snake_case aliases for camelCase keys.
func (r *RowOptions) UnmarshalYAML(n *yaml.Node) error {
	encoding.RenameKeys(n, rowAliases)
	type plain RowOptions
	return n.Decode((*plain)(r))
}

// UnmarshalYAML accepts snake_case aliases for camelCase keys.
func (c *Column) UnmarshalYAML(n *yaml.Node) error {
	encoding.RenameKeys(n, columnAliases)
	type plain Column
	return n.Decode((*plain)(c))
}

// UnmarshalYAML reads a bool or a field name.
func (s *Sort) UnmarshalYAML(n *yaml.Node) error {
	*s = Sort{}
	if n.ShortTag() == "!!bool" {
		return n.Decode(&s.Enabled)
	}
	return n.Decode(&s.Field)
}

// MarshalYAML writes a bool when no field is named.
func (s Sort) MarshalYAML() (any, error) {
	if s.Field != "" {
		return s.Field, nil
	}
	return s.Enabled, nil
}

// EncodeMsgpack writes a bool when no field is named.
func (s Sort) EncodeMsgpack(enc *msgpack.Encoder) error {
	if s.Field != "" {
		return enc.EncodeString(s.Field)
	}
	return enc.EncodeBool(s.Enabled)
}

// DecodeMsgpack reads a bool or a field name.
func (s *Sort) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}
	*s = Sort{}
	switch x := v.(type) {
	case bool:
		s.Enabled = x
	case nil:
	default:
		s.Field = toString(x)
	}
	return nil
}

// UnmarshalYAML reads a scalar or a sequence of scalars.
func (d *Details) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*d = Details{n.Value}
		return nil
	}
	var items []string
	if err := n.Decode(&items); err != nil {
		return err
	}
	*d = items
	return nil
}

// Normalize returns a copy of cfg with every default filled in. It never
// modifies cfg and normalizing a normalized config changes nothing.
//
// For each column: an empty label is derived from the attribute ("id"
// becomes "ID", "created_at" becomes "Created At") and labels without markup
// are entity-encoded; HeaderClass (th) and BodyClass (td) default to Class;
// the first column, when it shows "id", gains the "id-attribute" body class;
// SortAttribute is derived from Sort. The footer is on
// when configured or when any column declares footer content. The row id
// prefix defaults to "item".
func Normalize(cfg TableConfig) TableConfig {
	out := cfg.clone()

	for c := range out.Columns {
		col := &out.Columns[c]

		if col.Label == "" {
			col.Label = labelFromAttribute(col.Attribute)
		}
		if !hasMarkup(col.Label) {
			col.Label = Entities(col.Label)
		}

		if col.HeaderClass == "" {
			col.HeaderClass = col.Class
		}
		if col.BodyClass == "" {
			col.BodyClass = col.Class
		}
		if c == 0 && col.Attribute == "id" && !hasClass(col.BodyClass, idAttributeClass) {
			col.BodyClass = joinClass(col.BodyClass, idAttributeClass)
		}

		col.SortAttribute = ""
		switch {
		case col.Sort.Field != "":
			col.SortAttribute = FormatAttributes(Attributes{A("data-sort-field", col.Sort.Field)})
		case col.Sort.Enabled && col.Attribute != "":
			col.SortAttribute = FormatAttributes(Attributes{A("data-sort-field", col.Attribute)})
		}

		if col.Footer != "" {
			out.Footer = true
		}
	}

	if out.Rows.IDPrefix == "" {
		out.Rows.IDPrefix = DefaultIDPrefix
	}
	return out
}

// clone deep-copies the slices Normalize writes through.
func (cfg TableConfig) clone() TableConfig {
	out := cfg
	out.Columns = make([]Column, len(cfg.Columns))
	copy(out.Columns, cfg.Columns)
	for i := range out.Columns {
		if els := out.Columns[i].Elements; els != nil {
			out.Columns[i].Elements = append([]Element(nil), els...)
		}
	}
	return out
}

// labelFromAttribute derives a header label from an attribute name.
func labelFromAttribute(attr string) string {
	if attr == "id" {
		return "ID"
	}
	return cases.Title(language.English, cases.NoLower).String(strings.ReplaceAll(attr, "_", " "))
}

// hasMarkup reports whether s contains any tag or comment.
func hasMarkup(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken, html.CommentToken:
			return true
		}
	}
}

func hasClass(classes, class string) bool {
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}

func joinClass(classes, class string) string {
	if classes == "" {
		return class
	}
	return classes + " " + class
}
