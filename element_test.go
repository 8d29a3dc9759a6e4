package elemental

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBuildElement(t *testing.T) {
	routes := Routes{
		Base:  "https://example.com",
		Named: map[string]string{"home": "/"},
	}
	b := New(WithURLGenerator(routes))
	ada := Row{"id": 1, "name": "Ada", "status": "late", "overdue": true}

	tests := []struct {
		name    string
		element Element
		record  Record
		want    string
	}{
		{
			name:    "named route",
			element: Element{Tag: "a", URI: "home"},
			want:    `<a href="https://example.com/"></a>`,
		},
		{
			name:    "ignored",
			element: Element{Ignore: true, Text: "x"},
			want:    "",
		},
		{
			name: "icon link with placeholders",
			element: Element{
				Icon:       "pencil",
				URI:        "users/:id/edit",
				Attributes: Attributes{A("title", "Edit :name")},
			},
			record: ada,
			want:   `<a title="Edit Ada" href="https://example.com/users/1/edit"><i class="fa fa-pencil"></i></a>`,
		},
		{
			name: "failing conditions",
			element: Element{
				Text:       "Delete",
				Conditions: Conditions{{"overdue", "false"}},
			},
			record: ada,
			want:   "",
		},
		{
			name: "class modifiers and text",
			element: Element{
				Tag:            "span",
				Class:          "badge",
				ClassModifiers: ClassModifiers{{Class: "badge-danger", When: Conditions{{"overdue", "true"}}}},
				Text:           ":status",
			},
			record: ada,
			want:   `<span class="badge badge-danger">late</span>`,
		},
		{
			name: "self closing",
			element: Element{
				Tag:         "img",
				Attributes:  Attributes{A("src", "/img/:id")},
				SelfClosing: true,
			},
			record: Row{"id": 7},
			want:   `<img src="/img/7" />`,
		},
		{
			name:    "href wins over url",
			element: Element{Href: "/h", URL: "/u", Text: "go"},
			want:    `<a href="/h">go</a>`,
		},
		{
			name:    "url fills href",
			element: Element{URL: "/u", Text: "go"},
			want:    `<a href="/u">go</a>`,
		},
		{
			name:    "link without target",
			element: Element{Text: "none"},
			want:    `<a href="">none</a>`,
		},
		{
			name:    "missing placeholder field",
			element: Element{Tag: "b", Text: "Hi :nickname"},
			record:  ada,
			want:    `<b>Hi </b>`,
		},
		{
			name:    "existing class replaced",
			element: Element{Tag: "i", Class: "x", Attributes: Attributes{A("class", "old"), A("id", "y")}},
			want:    `<i class="x" id="y"></i>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.BuildElement(context.Background(), tt.element, tt.record)
			if err != nil {
				t.Fatalf("BuildElement() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildElement() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBuildElementAccess(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var calls []string
	b := New(
		WithLogger(logger),
		WithAccessChecker(AccessFunc(func(_ context.Context, url, verb string) bool {
			calls = append(calls, verb+" "+url)
			return verb == "get"
		})),
	)

	view := Element{URI: "users/:id", Text: "View"}
	got, err := b.BuildElement(context.Background(), view, Row{"id": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != `<a href="/users/3">View</a>` {
		t.Errorf("allowed element = %q", got)
	}

	del := Element{URI: "users/:id", Text: "Delete", Attributes: Attributes{A("data-action-type", "delete")}}
	got, err = b.BuildElement(context.Background(), del, Row{"id": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("denied element = %q, want empty", got)
	}

	// The checker sees the href before placeholders are filled.
	want := []string{"get /users/:id", "delete /users/:id"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("access calls = %v, want %v", calls, want)
	}
	if e := hook.LastEntry(); e == nil || e.Message != "element omitted: access denied" || e.Data["verb"] != "delete" {
		t.Errorf("unexpected last log entry: %+v", e)
	}
}

func TestBuildElementRouteError(t *testing.T) {
	b := New(WithURLGenerator(Routes{Strict: true}))

	_, err := b.BuildElement(context.Background(), Element{URI: "missing"}, nil)
	if !IsNotFound(err) {
		t.Errorf("BuildElement() error = %v, want ErrRouteNotFound", err)
	}
}

func TestIconConfig(t *testing.T) {
	b := New(WithIcon("span", "icon icon-"))

	if got := b.Icon(" trash "); got != `<span class="icon icon-trash"></span>` {
		t.Errorf("Icon() = %q", got)
	}
}

func TestElementComponent(t *testing.T) {
	got, err := RenderString(context.Background(), defaultBuilder.Element(Element{Tag: "em", Text: ":name"}, Row{"name": "Ada"}))
	if err != nil {
		t.Fatal(err)
	}
	if got != "<em>Ada</em>" {
		t.Errorf("Element() rendered %q", got)
	}
}
