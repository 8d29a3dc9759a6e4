package elemental

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/safehtml"
)

// tableView renders the whole table. The body comes from the "table_body"
// partial so overriding it changes both full renders and body refreshes.
func tableView(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cols := d.Columns(ctx)
		cfg := d.Config

		var sb strings.Builder
		sb.WriteString(`<table class="table`)
		sb.WriteString(DynamicArea(cfg.Table.Class != "", cfg.Table.Class, true))
		sb.WriteByte('"')
		if d.Token != "" {
			sb.WriteString(FormatAttributes(Attributes{A("data-table-config", d.Token)}))
		}
		sb.WriteString(">\n\t<thead>\n\t\t<tr>\n")
		for _, col := range cols {
			sb.WriteString("\t\t\t<th")
			sb.WriteString(ColumnClass(col))
			sb.WriteString(col.SortAttribute)
			sb.WriteByte('>')
			sb.WriteString(col.Label)
			sb.WriteString("</th>\n")
		}
		sb.WriteString("\t\t</tr>\n\t</thead>\n\t<tbody>\n")

		body, err := d.Builder.views.RenderView(ctx, ViewTableBody, d)
		if err != nil {
			return err
		}
		sb.WriteString(body)
		sb.WriteString("\t</tbody>\n")

		if cfg.Footer {
			sb.WriteString("\t<tfoot>\n\t\t<tr>\n")
			for _, col := range cols {
				sb.WriteString("\t\t\t<td")
				sb.WriteString(classAttr(col.BodyClass))
				sb.WriteByte('>')
				if col.Footer != "" {
					sb.WriteString(col.Footer)
				} else {
					sb.WriteString("&nbsp;")
				}
				sb.WriteString("</td>\n")
			}
			sb.WriteString("\t\t</tr>\n\t</tfoot>\n")
		}
		sb.WriteString("</table>\n")

		_, err = io.WriteString(w, sb.String())
		return err
	})
}

// tableBodyView renders one row per record, or a single no-data row.
func tableBodyView(d ViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cols := d.Columns(ctx)

		var sb strings.Builder
		if len(d.Records) == 0 {
			sb.WriteString(`		<tr>` + "\n" + `			<td colspan="`)
			sb.WriteString(strconv.Itoa(max(len(cols), 1)))
			sb.WriteString(`" class="no-data">`)
			sb.WriteString(safehtml.HTMLEscaped(d.Config.Table.NoDataMessage).String())
			sb.WriteString("</td>\n\t\t</tr>\n")
			_, err := io.WriteString(w, sb.String())
			return err
		}

		for _, r := range d.Records {
			row := Attributes{}
			if id := d.RowID(r); id != "" {
				row.Set("id", id)
			}
			if class := d.RowClass(r); class != "" {
				row.Set("class", class)
			}
			sb.WriteString("\t\t<tr")
			sb.WriteString(FormatAttributes(row))
			sb.WriteString(">\n")

			for _, col := range cols {
				cell, err := d.Cell(ctx, col, r)
				if err != nil {
					return err
				}
				sb.WriteString("\t\t\t<td")
				sb.WriteString(classAttr(d.CellClass(r, col)))
				sb.WriteByte('>')
				sb.WriteString(cell)
				sb.WriteString("</td>\n")
			}
			sb.WriteString("\t\t</tr>\n")
		}

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
