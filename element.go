package elemental

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/pthm/elemental/lib/encoding"
)

// Element describes one HTML tag built per record, typically an action link
// in a table cell.
//
//	elemental.Element{
//	    Icon:       "pencil",
//	    URI:        "users/:id/edit",
//	    Attributes: elemental.Attributes{elemental.A("title", "Edit :name")},
//	    Conditions: elemental.Conditions{{Field: "deleted", Expr: "!= true"}},
//	}
//
// Attribute values and Text may contain one ":field" placeholder, optionally
// followed by "/"-separated path segments, which is replaced with the
// record's field value.
type Element struct {
	Tag            string         `yaml:"tag,omitempty" msgpack:"tag,omitempty"`
	Attributes     Attributes     `yaml:"attributes,omitempty" msgpack:"attributes,omitempty"`
	Class          string         `yaml:"class,omitempty" msgpack:"class,omitempty"`
	ClassModifiers ClassModifiers `yaml:"classModifiers,omitempty" msgpack:"classModifiers,omitempty"`
	Conditions     Conditions     `yaml:"conditions,omitempty" msgpack:"conditions,omitempty"`
	Text           string         `yaml:"text,omitempty" msgpack:"text,omitempty"`
	Icon           string         `yaml:"icon,omitempty" msgpack:"icon,omitempty"`
	URL            string         `yaml:"url,omitempty" msgpack:"url,omitempty"`
	Href           string         `yaml:"href,omitempty" msgpack:"href,omitempty"`
	URI            string         `yaml:"uri,omitempty" msgpack:"uri,omitempty"`
	SelfClosing    bool           `yaml:"selfClosing,omitempty" msgpack:"selfClosing,omitempty"`
	Ignore         bool           `yaml:"ignore,omitempty" msgpack:"ignore,omitempty"`
}

var elementAliases = map[string]string{
	"class_modifiers": "classModifiers",
	"self_closing":    "selfClosing",
}

// UnmarshalYAML accepts snake_case aliases for camelCase keys.
func (e *Element) UnmarshalYAML(n *yaml.Node) error {
	encoding.RenameKeys(n, elementAliases)
	type plain Element
	return n.Decode((*plain)(e))
}

// placeholder matches ":name" and everything after it.
var placeholder = regexp.MustCompile(`:([a-zA-Z_].*)`)

// substitute replaces the first placeholder in s. The first path segment is
// the field name; the rest of the path is kept.
func substitute(s string, r Record) string {
	m := placeholder.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	segments := strings.Split(s[m[2]:m[3]], "/")
	var value any
	if r != nil {
		value, _ = r.Field(segments[0])
	}
	segments[0] = toString(value)
	return s[:m[0]] + strings.Join(segments, "/") + s[m[1]:]
}

// BuildElement renders e for record r. An empty string means the element is
// omitted: it is ignored, its conditions fail, or the access checker denies
// its href. Errors come only from the URL generator.
func (b *Builder) BuildElement(ctx context.Context, e Element, r Record) (string, error) {
	if e.Ignore {
		return "", nil
	}
	if len(e.Conditions) > 0 && !b.TestConditions(r, e.Conditions) {
		b.log.WithField("tag", e.Tag).Debug("element omitted: conditions not met")
		return "", nil
	}

	class := b.MatchClasses(r, e.Class, e.ClassModifiers)

	tag := e.Tag
	if tag == "" {
		tag = "a"
	}

	attrs := e.Attributes.Clone()
	if class != "" {
		attrs.Set("class", class)
	}

	href := e.Href
	if href == "" {
		href = e.URL
	}
	if tag == "a" {
		resolved := ""
		switch {
		case e.URI != "":
			u, err := b.urls.URL(ctx, e.URI)
			if err != nil {
				return "", err
			}
			resolved = u
		case href != "":
			resolved = href
		}
		attrs.Set("href", resolved)
	}

	if link, ok := attrs.Get("href"); ok && b.access != nil {
		verb := "get"
		if v, ok := attrs.Get("data-action-type"); ok {
			verb = v
		}
		if !b.access.HasAccess(ctx, link, verb) {
			b.log.WithFields(logrus.Fields{"href": link, "verb": verb}).Debug("element omitted: access denied")
			return "", nil
		}
	}

	for i := range attrs {
		if !attrs[i].Bool && !attrs[i].Null {
			attrs[i].Value = substitute(attrs[i].Value, r)
		}
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	sb.WriteString(FormatAttributes(attrs))
	if !e.SelfClosing {
		sb.WriteByte('>')
	}
	if icon := strings.TrimSpace(e.Icon); icon != "" {
		sb.WriteString(b.Icon(icon))
	}
	if e.Text != "" {
		sb.WriteString(substitute(e.Text, r))
	}
	if e.SelfClosing {
		sb.WriteString(" />")
	} else {
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
	}
	return sb.String(), nil
}

// Icon renders the configured icon element for name.
func (b *Builder) Icon(name string) string {
	return "<" + b.iconElement + ` class="` + Entities(b.iconClassPrefix+strings.TrimSpace(name)) + `"></` + b.iconElement + ">"
}

// Element returns a templ component rendering e for record r.
func (b *Builder) Element(e Element, r Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := b.BuildElement(ctx, e, r)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}
