package elemental

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/safehtml"
)

// Routes is the default URLGenerator. Named routes map to paths; any other
// route is treated as a path relative to Base. Results are sanitized, so a
// javascript: or otherwise unsafe target resolves to an inert URL.
//
//	routes := elemental.Routes{
//	    Base:  "https://example.com",
//	    Named: map[string]string{"home": "/"},
//	}
type Routes struct {
	Base  string
	Named map[string]string
	// Strict rejects routes that are not in Named with ErrRouteNotFound.
	Strict bool
}

// URL resolves route. Absolute URLs (with a scheme) are returned sanitized
// but otherwise untouched.
func (r Routes) URL(_ context.Context, route string) (string, error) {
	path, ok := r.Named[route]
	if !ok {
		if r.Strict {
			return "", fmt.Errorf("%w: %q", ErrRouteNotFound, route)
		}
		path = route
	}
	return safehtml.URLSanitized(r.join(path)).String(), nil
}

func (r Routes) join(path string) string {
	if hasScheme(path) || strings.HasPrefix(path, "//") {
		return path
	}
	base := strings.TrimSuffix(r.Base, "/")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func hasScheme(u string) bool {
	i := strings.IndexByte(u, ':')
	return i > 0 && !strings.ContainsAny(u[:i], "/?#")
}
