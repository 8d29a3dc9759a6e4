package elemental

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context, so developer mode set by DeveloperMiddleware applies:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    elemental.Render(w, r, builder.TableComponent(cfg, records))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// RenderString renders a templ component to a string.
func RenderString(ctx context.Context, component templ.Component) (string, error) {
	var sb strings.Builder
	if err := component.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type developerKey struct{}

// WithDeveloperMode returns a context in which developer columns are shown
// (on) or hidden (off).
func WithDeveloperMode(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, developerKey{}, on)
}

// DeveloperMode reports whether developer columns are shown for ctx. It is
// off unless WithDeveloperMode turned it on.
func DeveloperMode(ctx context.Context) bool {
	on, _ := ctx.Value(developerKey{}).(bool)
	return on
}

// DeveloperMiddleware sets developer mode on each request's context from
// isDeveloper, typically a session or role check:
//
//	mux := http.NewServeMux()
//	handler := elemental.DeveloperMiddleware(func(r *http.Request) bool {
//	    return session.IsAdmin(r)
//	})(mux)
func DeveloperMiddleware(isDeveloper func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithDeveloperMode(r.Context(), isDeveloper(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TableConfigHeader carries a table's signed config on body refresh
// requests. The "table_config" form value is accepted as well.
const TableConfigHeader = "X-Table-Config"

// RecordLoader fetches the records for a body refresh request.
type RecordLoader func(r *http.Request, cfg TableConfig) ([]Record, error)

// BodyHandler re-renders a table body from the signed config a rendered
// table carries in its data-table-config attribute. It requires
// WithSigningKey. Missing or tampered tokens get 400 Bad Request.
func (b *Builder) BodyHandler(load RecordLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TableConfigHeader)
		if token == "" {
			token = r.FormValue("table_config")
		}
		cfg, err := b.ParseConfigToken(token)
		if err != nil {
			b.log.WithError(err).Debug("rejected table config token")
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		records, err := load(r, cfg)
		if err != nil {
			b.log.WithError(err).Warn("loading table records failed")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		html, err := b.TableBody(r.Context(), cfg, records)
		if err != nil {
			b.log.WithError(err).Warn("rendering table body failed")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	})
}
