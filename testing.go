package elemental

import (
	"context"
	"strings"

	"golang.org/x/net/html"
)

// TestResult holds rendered markup for assertions in tests.
type TestResult struct {
	HTML string
}

// TestTable renders a table with a background context.
//
//	result, err := elemental.TestTable(builder, cfg, elemental.Rows(users))
//	if !result.HTMLContains(`<tr id="user-1">`) {
//	    t.Fatal("missing first row")
//	}
func TestTable(b *Builder, cfg TableConfig, records []Record) (*TestResult, error) {
	return TestTableWithContext(context.Background(), b, cfg, records)
}

// TestTableWithContext renders a table with a custom context. Use it to
// test developer columns or collaborators that read the context:
//
//	ctx := elemental.WithDeveloperMode(context.Background(), true)
//	result, err := elemental.TestTableWithContext(ctx, builder, cfg, records)
func TestTableWithContext(ctx context.Context, b *Builder, cfg TableConfig, records []Record) (*TestResult, error) {
	out, err := b.Table(ctx, cfg, records)
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: out}, nil
}

// TestElement builds one element for a record.
func TestElement(b *Builder, e Element, r Record) (*TestResult, error) {
	out, err := b.BuildElement(context.Background(), e, r)
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: out}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// Before reports whether first occurs in the HTML ahead of second. Both
// must be present.
func (r *TestResult) Before(first, second string) bool {
	i := strings.Index(r.HTML, first)
	j := strings.Index(r.HTML, second)
	return i >= 0 && j >= 0 && i < j
}

// Tags parses the HTML and returns the attributes of every start tag named
// tag, in document order. Attribute values come back decoded.
func (r *TestResult) Tags(tag string) []Attributes {
	var found []Attributes
	z := html.NewTokenizer(strings.NewReader(r.HTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return found
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			if t.Data != tag {
				continue
			}
			attrs := make(Attributes, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, A(a.Key, a.Val))
			}
			found = append(found, attrs)
		}
	}
}
