// Package elemental builds HTML fragments for server-rendered Go
// applications: attribute strings, conditionally classed areas, action
// elements and configurable data tables.
//
// # Tables
//
// A table is declared once, usually in YAML, and rendered for any slice of
// records:
//
//	cfg, err := elemental.LoadTableConfigFile("users.yaml")
//	if err != nil {
//	    return err
//	}
//	html, err := builder.Table(ctx, cfg, elemental.Rows(users))
//
// Normalize fills in defaults before rendering: labels derived from
// attribute names, header and body classes, sort attributes, the footer
// flag and the row id prefix. It returns a copy and is idempotent.
//
// Each column draws its cells from a method (a registered Accessor or the
// record's Caller), an attribute, or a list of elements. Typed columns
// (date, datetime, money, phone, boolean, list) are formatted through the
// Builder's Formatter. Plain values are entity-encoded; return HTML or
// safehtml.HTML from an accessor to emit markup.
//
// # Elements
//
// Elements are tags built per record, typically action links:
//
//	elemental.Element{
//	    Icon: "trash",
//	    URI:  "users/:id/delete",
//	    Attributes: elemental.Attributes{
//	        elemental.A("data-action-type", "delete"),
//	    },
//	    Conditions: elemental.Conditions{{Field: "isAdmin()", Expr: "false"}},
//	}
//
// Conditions gate the element, ClassModifiers add classes, and ":field"
// placeholders in attributes and text are filled from the record. With an
// AccessChecker configured, links the current user may not follow are
// dropped.
//
// # Views
//
// Tables render through named partials held by a ViewRenderer. The default
// *Views registry ships "table" and "table_body"; replace either to change
// the markup:
//
//	views := elemental.NewViews()
//	views.Replace(elemental.ViewTableBody, myBody)
//	builder := elemental.New(elemental.WithViews(views))
//
// # Areas
//
// DynamicArea and its variants return class fragments for conditional
// state, and OpenDynamicArea/CloseArea bracket whole regions:
//
//	<li{{ elemental.ActiveArea(page == "home", false) }}>
//
// # Developer columns
//
// Columns marked developer render only when DeveloperMode(ctx) is true.
// Set it per request with WithDeveloperMode or DeveloperMiddleware.
//
// # Body refresh
//
// With WithSigningKey, rendered tables carry their configuration as a
// signed token in data-table-config. BodyHandler accepts the token back
// and re-renders only the rows.
package elemental
