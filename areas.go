package elemental

import "strings"

// Classes applied by the named area helpers.
const (
	ClassActive    = "active"
	ClassSelected  = "selected"
	ClassHidden    = "hidden"
	ClassInvisible = "invisible"
)

// DynamicArea returns class when active. With inClass it returns " class",
// to append inside an existing class attribute; otherwise it returns a full
// ` class="class"` attribute. Inactive areas return "".
//
//	<li{{ elemental.DynamicArea(page == "home", "current", false) }}>
func DynamicArea(active bool, class string, inClass bool) string {
	if !active {
		return ""
	}
	return areaClass(class, inClass)
}

// DynamicAreaAlt is DynamicArea with a class for the inactive state.
func DynamicAreaAlt(active bool, class, alternate string, inClass bool) string {
	if active {
		return areaClass(class, inClass)
	}
	return areaClass(alternate, inClass)
}

// ActiveArea applies "active" when active.
func ActiveArea(active, inClass bool) string {
	return DynamicArea(active, ClassActive, inClass)
}

// SelectedArea applies "selected" when selected.
func SelectedArea(selected, inClass bool) string {
	return DynamicArea(selected, ClassSelected, inClass)
}

// HiddenArea applies "hidden" when hidden.
func HiddenArea(hidden, inClass bool) string {
	return DynamicArea(hidden, ClassHidden, inClass)
}

// InvisibleArea applies "invisible" when invisible.
func InvisibleArea(invisible, inClass bool) string {
	return DynamicArea(invisible, ClassInvisible, inClass)
}

// DynamicAreaOptions applies the class options[value], if there is one.
func DynamicAreaOptions(value string, options map[string]string, inClass bool) string {
	class, ok := options[value]
	if !ok {
		return ""
	}
	return areaClass(class, inClass)
}

func areaClass(class string, inClass bool) string {
	if class == "" {
		return ""
	}
	if inClass {
		return " " + Entities(class)
	}
	return classAttr(class)
}

// Selector turns ".name" into a class attribute and "#name" into an id.
// Anything else yields no attributes.
func Selector(s string) Attributes {
	switch {
	case strings.HasPrefix(s, "."):
		return Attributes{A("class", s[1:])}
	case strings.HasPrefix(s, "#"):
		return Attributes{A("id", s[1:])}
	}
	return nil
}

// OpenDynamicArea opens element with attrs, adding class to its class
// attribute when active. The tag ends with a newline. An empty element
// opens a div.
func OpenDynamicArea(element string, attrs Attributes, active bool, class string) string {
	if element == "" {
		element = "div"
	}
	attrs = attrs.Clone()
	if active && class != "" {
		if c, ok := attrs.Get("class"); ok && c != "" {
			attrs.Set("class", c+" "+class)
		} else {
			attrs.Set("class", class)
		}
	}
	return "<" + element + FormatAttributes(attrs) + ">\n"
}

// OpenActiveArea opens element, marked "active" when active.
func OpenActiveArea(element string, attrs Attributes, active bool) string {
	return OpenDynamicArea(element, attrs, active, ClassActive)
}

// OpenSelectedArea opens element, marked "selected" when selected.
func OpenSelectedArea(element string, attrs Attributes, selected bool) string {
	return OpenDynamicArea(element, attrs, selected, ClassSelected)
}

// OpenHiddenArea opens element, marked "hidden" when hidden.
func OpenHiddenArea(element string, attrs Attributes, hidden bool) string {
	return OpenDynamicArea(element, attrs, hidden, ClassHidden)
}

// OpenInvisibleArea opens element, marked "invisible" when invisible.
func OpenInvisibleArea(element string, attrs Attributes, invisible bool) string {
	return OpenDynamicArea(element, attrs, invisible, ClassInvisible)
}

// CloseArea closes element. A non-empty identifier adds a trailing
// "<!-- /identifier -->" comment and newline.
func CloseArea(element, identifier string) string {
	if element == "" {
		element = "div"
	}
	html := "</" + element + ">"
	if identifier != "" {
		html += "<!-- /" + identifier + " -->\n"
	}
	return html
}
