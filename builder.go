package elemental

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pthm/elemental/lib/encoding"
)

// Default icon markup, set up for Font Awesome.
const (
	DefaultIconElement     = "i"
	DefaultIconClassPrefix = "fa fa-"
)

// Builder renders elements, cells and tables. Its collaborators are fixed
// at construction, so a Builder is safe for concurrent use.
//
//	b := elemental.New(
//	    elemental.WithURLGenerator(routes),
//	    elemental.WithAccessChecker(acl),
//	)
//	html, err := b.Table(ctx, cfg, records)
type Builder struct {
	iconElement     string
	iconClassPrefix string
	urls            URLGenerator
	access          AccessChecker
	format          Formatter
	views           ViewRenderer
	accessors       map[string]Accessor
	legacyFalse     bool
	signer          *encoding.Signer
	log             logrus.FieldLogger
}

// Option configures a Builder.
type Option func(*Builder)

// defaultBuilder backs the package-level helpers that need no collaborators.
var defaultBuilder = New()

// New creates a Builder. Without options it renders Font Awesome icons,
// resolves "uri" links as plain paths, formats cells with TextFormat, renders
// tables with the built-in views and performs no access checks.
func New(opts ...Option) *Builder {
	b := &Builder{
		iconElement:     DefaultIconElement,
		iconClassPrefix: DefaultIconClassPrefix,
		urls:            Routes{},
		format:          TextFormat{},
		views:           NewViews(),
		accessors:       make(map[string]Accessor),
		log:             discardLogger(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// WithIcon sets the element and class prefix used for element icons.
func WithIcon(element, classPrefix string) Option {
	return func(b *Builder) {
		b.iconElement = element
		b.iconClassPrefix = classPrefix
	}
}

// WithURLGenerator sets the resolver for element "uri" links.
func WithURLGenerator(g URLGenerator) Option {
	return func(b *Builder) {
		b.urls = g
	}
}

// WithAccessChecker enables link authorization. Elements whose href is
// denied are omitted from the output.
func WithAccessChecker(c AccessChecker) Option {
	return func(b *Builder) {
		b.access = c
	}
}

// WithFormatter replaces the cell formatter.
func WithFormatter(f Formatter) Option {
	return func(b *Builder) {
		b.format = f
	}
}

// WithViews replaces the view renderer used by Table and TableBody.
func WithViews(v ViewRenderer) Option {
	return func(b *Builder) {
		b.views = v
	}
}

// WithAccessor registers a named accessor for column methods and "name()"
// conditions.
func WithAccessor(name string, fn Accessor) Option {
	return func(b *Builder) {
		b.accessors[name] = fn
	}
}

// WithLegacyFalseLiteral makes the condition literal "false" compare as
// boolean true, matching older releases where {active: "false"} and
// {active: "true"} were equivalent. Only enable it for configurations that
// depend on that behaviour.
func WithLegacyFalseLiteral() Option {
	return func(b *Builder) {
		b.legacyFalse = true
	}
}

// WithSigningKey enables signed table config tokens (see ConfigToken). When
// set, rendered tables carry their token in a data-table-config attribute so
// the body can be re-rendered from a later request.
func WithSigningKey(key []byte) Option {
	return func(b *Builder) {
		b.signer = encoding.NewSigner(key)
	}
}

// WithLogger sets the logger for debug output about omitted elements and
// unresolved accessors. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
