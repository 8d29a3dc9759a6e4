package elemental

import (
	"context"
	"errors"
	"testing"
)

func TestRoutesURL(t *testing.T) {
	routes := Routes{
		Base:  "https://example.com/",
		Named: map[string]string{"home": "/", "users": "users"},
	}

	tests := []struct {
		name  string
		route string
		want  string
	}{
		{"named root", "home", "https://example.com/"},
		{"named relative", "users", "https://example.com/users"},
		{"path", "users/1/edit", "https://example.com/users/1/edit"},
		{"absolute path", "/about", "https://example.com/about"},
		{"absolute url", "https://other.example/x", "https://other.example/x"},
		{"protocol relative", "//cdn.example/x.js", "//cdn.example/x.js"},
		{"unsafe scheme", "javascript:alert(1)", "about:invalid#zGoSafez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := routes.URL(context.Background(), tt.route)
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.route, got, tt.want)
			}
		})
	}
}

func TestRoutesWithoutBase(t *testing.T) {
	got, err := Routes{}.URL(context.Background(), "edit")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/edit" {
		t.Errorf("URL() = %q, want /edit", got)
	}
}

func TestRoutesStrict(t *testing.T) {
	routes := Routes{Named: map[string]string{"home": "/"}, Strict: true}

	if _, err := routes.URL(context.Background(), "home"); err != nil {
		t.Errorf("named route failed: %v", err)
	}
	if _, err := routes.URL(context.Background(), "other"); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("URL() error = %v, want ErrRouteNotFound", err)
	}
}
