package elemental

import (
	"context"
)

// Record is a single data row handed to the table and element builders.
// Records are owned by the caller and never modified.
//
// Field returns the named value and whether the record has it. Missing
// fields are not an error: the builders treat them as empty.
type Record interface {
	Field(name string) (any, bool)
}

// Caller is optionally implemented by records that expose zero-argument
// accessors (conditions written as "name()" and column methods). Accessors
// registered on the Builder with WithAccessor take precedence.
type Caller interface {
	Call(name string) (any, bool)
}

// Accessor computes a derived value for a record. Accessors are registered by
// name with WithAccessor and referenced from column methods and conditions:
//
//	b := elemental.New(elemental.WithAccessor("fullName", func(r elemental.Record) any {
//	    first, _ := r.Field("first_name")
//	    last, _ := r.Field("last_name")
//	    return fmt.Sprint(first, " ", last)
//	}))
type Accessor func(r Record) any

// ViewRenderer renders a named view partial. The Builder renders tables
// through it so hosts can replace the markup of any partial.
//
// The default implementation is *Views, which ships the "table" and
// "table_body" partials.
type ViewRenderer interface {
	RenderView(ctx context.Context, name string, data ViewData) (string, error)
}

// URLGenerator resolves a route name to a URL for element "uri" links.
// Errors are returned to the caller of the render unchanged.
type URLGenerator interface {
	URL(ctx context.Context, route string) (string, error)
}

// AccessChecker decides whether the current user may follow a link. When a
// checker is configured, elements whose href is denied are omitted.
type AccessChecker interface {
	HasAccess(ctx context.Context, url, verb string) bool
}

// AccessFunc adapts a function to AccessChecker.
type AccessFunc func(ctx context.Context, url, verb string) bool

// HasAccess calls f(ctx, url, verb).
func (f AccessFunc) HasAccess(ctx context.Context, url, verb string) bool {
	return f(ctx, url, verb)
}

// Formatter formats typed cell values. Date, DateTime, Money and Phone return
// plain text which the table escapes; ObjectFieldsToList and ListToString back
// the "list" column type.
type Formatter interface {
	Date(v any) string
	DateTime(v any) string
	Money(v any) string
	Phone(v any) string
	ObjectFieldsToList(items []Record, field string) []string
	ListToString(items []string) string
}
