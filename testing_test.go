package elemental

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTestResult(t *testing.T) {
	r := &TestResult{HTML: `<ul><li class="a">one</li><li data-x="&quot;q&quot;">two</li></ul>`}

	if !r.HTMLContains("one") || r.HTMLContains("three") {
		t.Error("HTMLContains")
	}
	if !r.HTMLContainsAll("one", "two") || r.HTMLContainsAll("one", "three") {
		t.Error("HTMLContainsAll")
	}
	if !r.HTMLContainsAny("three", "two") || r.HTMLContainsAny("three", "four") {
		t.Error("HTMLContainsAny")
	}
	if got := r.Count("<li"); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !r.Before("one", "two") || r.Before("two", "one") || r.Before("one", "three") {
		t.Error("Before")
	}

	want := []Attributes{{A("class", "a")}, {A("data-x", `"q"`)}}
	if diff := cmp.Diff(want, r.Tags("li")); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Tags("table"); got != nil {
		t.Errorf("Tags(table) = %v, want nil", got)
	}
}

func TestTestElement(t *testing.T) {
	b := New()
	r, err := TestElement(b, Element{Tag: "span", Text: ":name"}, Row{"name": "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if r.HTML != "<span>Ada</span>" {
		t.Errorf("HTML = %q", r.HTML)
	}
}
