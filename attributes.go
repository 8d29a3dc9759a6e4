package elemental

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/pthm/elemental/lib/encoding"
)

// Attr is a single HTML attribute.
//
// A Bool attribute renders its name as its value (required="required").
// A Null attribute is kept in the list but never rendered, which lets a
// config switch off an attribute an element would otherwise carry.
type Attr struct {
	Name  string
	Value string
	Bool  bool
	Null  bool
}

// Attributes is an ordered attribute list. Order is preserved when
// rendering; names are expected to be unique.
type Attributes []Attr

// A returns a valued attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Flag returns a boolean attribute such as "required" or "disabled".
func Flag(name string) Attr { return Attr{Name: name, Bool: true} }

// Null returns an attribute that is never rendered.
func Null(name string) Attr { return Attr{Name: name, Null: true} }

// Get returns the value of the named attribute. Null attributes report false.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name && !attr.Null {
			if attr.Bool {
				return attr.Name, true
			}
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the named attribute is present and not null.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the named attribute in place or appends it.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i] = Attr{Name: name, Value: value}
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Clone returns a copy that can be modified without touching a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Templ converts the list to templ.Attributes for spreading into templ
// templates. Null attributes are dropped.
func (a Attributes) Templ() templ.Attributes {
	out := make(templ.Attributes, len(a))
	for _, attr := range a {
		switch {
		case attr.Null:
		case attr.Bool:
			out[attr.Name] = true
		default:
			out[attr.Name] = attr.Value
		}
	}
	return out
}

// String is FormatAttributes(a).
func (a Attributes) String() string {
	return FormatAttributes(a)
}

// FormatAttributes serializes attributes for insertion into an opening tag.
//
// Values are entity-encoded, boolean attributes repeat their name as the
// value, and null attributes are skipped. The result starts with a single
// space, or is empty when nothing is rendered:
//
//	elemental.FormatAttributes(elemental.Attributes{
//	    elemental.A("class", "btn"),
//	    elemental.Flag("disabled"),
//	})
//	// ` class="btn" disabled="disabled"`
func FormatAttributes(a Attributes) string {
	var sb strings.Builder
	for _, attr := range a {
		if attr.Null {
			continue
		}
		value := attr.Value
		if attr.Bool {
			value = attr.Name
		}
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(Entities(value))
		sb.WriteByte('"')
	}
	return sb.String()
}

// Entities encodes &, <, >, " and ' for use in HTML text or attribute
// values. Character references already present in s are left alone so
// encoding an encoded string is a no-op.
func Entities(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			if n := entityLen(s[i:]); n > 0 {
				sb.WriteString(s[i : i+n])
				i += n - 1
				continue
			}
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&#039;")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// entityLen returns the length of the character reference at the start of
// s ("&amp;", "&#39;", "&#x27;"), or 0 if there is none.
func entityLen(s string) int {
	if len(s) < 3 || s[0] != '&' {
		return 0
	}
	i := 1
	switch {
	case s[1] == '#' && len(s) > 2 && (s[2] == 'x' || s[2] == 'X'):
		i = 3
		for i < len(s) && isHex(s[i]) {
			i++
		}
		if i == 3 {
			return 0
		}
	case s[1] == '#':
		i = 2
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 2 {
			return 0
		}
	default:
		if !isAlpha(s[1]) {
			return 0
		}
		for i < len(s) && (isAlpha(s[i]) || (s[i] >= '0' && s[i] <= '9')) {
			i++
		}
	}
	if i < len(s) && s[i] == ';' {
		return i + 1
	}
	return 0
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// UnmarshalYAML reads a mapping in document order. Integer keys declare
// boolean attributes (the value is the attribute name) and null values
// declare null attributes:
//
//	attributes:
//	  title: Edit :name
//	  0: disabled
//	  data-id: ~
func (a *Attributes) UnmarshalYAML(n *yaml.Node) error {
	*a = nil
	return encoding.EachPair(n, func(key string, v *yaml.Node) error {
		switch {
		case encoding.IsInt(key):
			*a = append(*a, Flag(v.Value))
		case encoding.IsNull(v):
			*a = append(*a, Null(key))
		default:
			*a = append(*a, A(key, v.Value))
		}
		return nil
	})
}

// MarshalYAML writes the list back in the form UnmarshalYAML reads.
func (a Attributes) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i, attr := range a {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Name}
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attr.Value}
		switch {
		case attr.Bool:
			key = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
			val.Value = attr.Name
		case attr.Null:
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
		}
		n.Content = append(n.Content, key, val)
	}
	return n, nil
}

// EncodeMsgpack writes the list as an ordered map; boolean attributes are
// keyed by their position.
func (a Attributes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encoding.EncodeMap(enc, len(a), func(i int) error {
		attr := a[i]
		switch {
		case attr.Bool:
			if err := enc.EncodeInt(int64(i)); err != nil {
				return err
			}
			return enc.EncodeString(attr.Name)
		case attr.Null:
			if err := enc.EncodeString(attr.Name); err != nil {
				return err
			}
			return enc.EncodeNil()
		}
		if err := enc.EncodeString(attr.Name); err != nil {
			return err
		}
		return enc.EncodeString(attr.Value)
	})
}

// DecodeMsgpack reads the map written by EncodeMsgpack.
func (a *Attributes) DecodeMsgpack(dec *msgpack.Decoder) error {
	*a = nil
	return encoding.DecodeMap(dec, func(key string) error {
		v, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return err
		}
		switch {
		case encoding.IsInt(key):
			*a = append(*a, Flag(toString(v)))
		case v == nil:
			*a = append(*a, Null(key))
		default:
			*a = append(*a, A(key, toString(v)))
		}
		return nil
	})
}
