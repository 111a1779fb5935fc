package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Brand}} - Monthly Invoice {{.Table.Period}}</title>
  <style>
    :root { --primary: {{.PrimaryColor}}; }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .invoice-card {
      background: #ffffff;
      max-width: 760px;
      margin: 0 auto;
      padding: 48px;
      border-radius: 4px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
    }
    h1 { margin: 0 0 4px; font-size: 24px; color: var(--primary); }
    .meta { color: #697386; font-size: 13px; margin-bottom: 32px; }
    table { width: 100%; border-collapse: collapse; }
    th {
      text-align: left;
      text-transform: uppercase;
      font-size: 11px;
      color: #8792a2;
      border-bottom: 1px solid #e3e8ee;
      padding: 10px 0;
    }
    td { padding: 12px 0; border-bottom: 1px solid #e3e8ee; font-size: 14px; }
    .num { text-align: right; font-variant-numeric: tabular-nums; }
    .total td { font-weight: 700; border-top: 2px solid var(--primary); }
    .empty { color: #8792a2; text-align: center; padding: 24px 0; }
    .footer { margin-top: 40px; font-size: 12px; color: #8792a2; }
  </style>
</head>
<body>
  <div class="invoice-card">
    <h1>{{.Brand}}</h1>
    <div class="meta">Monthly Invoice &middot; {{.Table.Period}} &middot; generated {{.GeneratedOn}}</div>
    <table>
      <thead>
        <tr>
          {{range $i, $title := .Header}}<th{{if $i}} class="num"{{end}}>{{$title}}</th>{{end}}
        </tr>
      </thead>
      <tbody>
        {{range .Table.Rows}}
        <tr>
          <td>{{.Name}}</td>
          <td class="num">{{fixed .TotalLitres}}</td>
          <td class="num">{{fixed .Rate}}</td>
          <td class="num">{{fixed .Amount}}</td>
        </tr>
        {{else}}
        <tr><td class="empty" colspan="4">No deliveries recorded for this month.</td></tr>
        {{end}}
        <tr class="total">
          <td colspan="3">{{.TotalLabel}}</td>
          <td class="num">{{fixed .Table.GrandTotal}}</td>
        </tr>
      </tbody>
    </table>
    <div class="footer">Thank you for your business. This is a computer-generated invoice.</div>
  </div>
</body>
</html>
`

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const defaultPrimaryColor = "#2e7d32"

type htmlInput struct {
	Brand        string
	GeneratedOn  string
	PrimaryColor string
	Header       []string
	TotalLabel   string
	Table        Table
}

// HTMLRenderer renders a browser preview of the monthly invoice.
type HTMLRenderer struct {
	tpl *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"fixed": func(v interface{ StringFixed(int32) string }) string { return v.StringFixed(2) },
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) Render(table Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, htmlInput{
		Brand:        opts.Brand,
		GeneratedOn:  opts.GeneratedOn,
		PrimaryColor: sanitizeColor(opts.AccentColor),
		Header:       Header,
		TotalLabel:   GrandTotalLabel,
		Table:        table,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return defaultPrimaryColor
}
