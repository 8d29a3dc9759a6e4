package elemental

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Table renders cfg for records through the "table" view. cfg is normalized
// first; records are rendered in order.
func (b *Builder) Table(ctx context.Context, cfg TableConfig, records []Record) (string, error) {
	return b.render(ctx, ViewTable, cfg, records)
}

// TableBody renders only the rows of the table, as returned to a client
// that refreshes the body in place.
func (b *Builder) TableBody(ctx context.Context, cfg TableConfig, records []Record) (string, error) {
	return b.render(ctx, ViewTableBody, cfg, records)
}

// TableComponent returns a templ component rendering the table, for use
// inside templ layouts:
//
//	@builder.TableComponent(cfg, records)
func (b *Builder) TableComponent(cfg TableConfig, records []Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := b.Table(ctx, cfg, records)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	})
}

func (b *Builder) render(ctx context.Context, view string, cfg TableConfig, records []Record) (string, error) {
	d := ViewData{
		Config:  Normalize(cfg),
		Records: records,
		Builder: b,
	}
	// Only the full table carries the token; body refreshes already have it.
	if b.signer != nil && view == ViewTable {
		token, err := b.ConfigToken(cfg)
		if err != nil {
			return "", err
		}
		d.Token = token
	}
	b.log.WithField("view", view).WithField("records", len(records)).Debug("rendering table")
	return b.views.RenderView(ctx, view, d)
}

// ConfigToken signs cfg so a client can send it back to request a body
// refresh. It requires WithSigningKey.
func (b *Builder) ConfigToken(cfg TableConfig) (string, error) {
	if b.signer == nil {
		return "", fmt.Errorf("%w: no signing key configured", ErrInvalidConfig)
	}
	token, err := b.signer.Sign(cfg)
	if err != nil {
		return "", wrapEncodingError(err)
	}
	return token, nil
}

// ParseConfigToken verifies a token from ConfigToken and returns its config.
// Tampered or malformed tokens fail with ErrInvalidConfig.
func (b *Builder) ParseConfigToken(token string) (TableConfig, error) {
	var cfg TableConfig
	if b.signer == nil {
		return cfg, fmt.Errorf("%w: no signing key configured", ErrInvalidConfig)
	}
	if err := b.signer.Verify(token, &cfg); err != nil {
		return TableConfig{}, wrapEncodingError(err)
	}
	return cfg, nil
}
