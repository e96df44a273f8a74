package printing

import (
	"embed"
	"html/template"
	"io"
)

// HTMLTemplateName is the name gin renders the print view under.
const HTMLTemplateName = "voucher.html"

//go:embed templates/voucher.html
var templateFS embed.FS

var htmlTemplate = template.Must(template.ParseFS(templateFS, "templates/"+HTMLTemplateName))

// HTMLTemplate returns the parsed print view, suitable for gin's SetHTMLTemplate.
func HTMLTemplate() *template.Template {
	return htmlTemplate
}

// RenderHTML writes the print view to w.
func RenderHTML(w io.Writer, view VoucherView) error {
	return htmlTemplate.ExecuteTemplate(w, HTMLTemplateName, view)
}
