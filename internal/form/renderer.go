// internal/form/renderer.go
//
// userform – HTML renderer for the registration inputs.
//
// Context
//   Given a FormDef this file writes the <form> markup: one input per field
//   in definition order, the field's inline error message when present, the
//   hidden CSRF token, and the submit button.  Values are echoed back so a
//   rejected draft stays on screen exactly as typed.
//
// Style
//   Output HTML is plain.  Each input gets id="fld-{name}" and is wrapped in
//   <div class="form-field">; errors use <p class="error">.  The form is
//   marked novalidate so the server's messages, not the browser's, are
//   what the visitor sees.
//
//------------------------------------------------------------------------------

package form

import (
	"bytes"
	"html"
	"html/template"
)

// RenderOptions bundles per-render state.
type RenderOptions struct {
	Action    string            // POST target, defaults to "/submit".
	Values    map[string]string // Current draft keyed by field name.
	Errors    map[string]string // Current error map keyed by field name.
	CSRFToken string
}

// RenderForm returns the markup for fd.  The result is template.HTML so the
// page template does not escape it a second time.
func RenderForm(fd *FormDef, opts RenderOptions) template.HTML {
	action := opts.Action
	if action == "" {
		action = "/submit"
	}

	var buf bytes.Buffer
	buf.WriteString(`<form class="userform" method="post" action="` + html.EscapeString(action) + `" novalidate>` + "\n")

	for i := range fd.Fields {
		writeField(&buf, &fd.Fields[i], opts.Values[fd.Fields[i].Name], opts.Errors[fd.Fields[i].Name])
	}

	buf.WriteString(`<input type="hidden" name="` + CSRFField + `" value="` + html.EscapeString(opts.CSRFToken) + `">` + "\n")
	buf.WriteString(`<button type="submit">` + html.EscapeString(fd.SubmitLabel) + `</button>` + "\n")
	buf.WriteString(`</form>`)
	return template.HTML(buf.String())
}

// writeField emits one labelled input and its error slot.
func writeField(buf *bytes.Buffer, f *FieldDef, val, errMsg string) {
	name := html.EscapeString(f.Name)

	buf.WriteString(`<div class="form-field">` + "\n")
	buf.WriteString(`<label for="fld-` + name + `">` + html.EscapeString(f.Label) + `</label>` + "\n")

	buf.WriteString(`<input id="fld-` + name + `" name="` + name + `" type="` + f.Type + `"`)
	if f.Placeholder != "" {
		buf.WriteString(` placeholder="` + html.EscapeString(f.Placeholder) + `"`)
	}
	if f.Autocomplete != "" {
		buf.WriteString(` autocomplete="` + html.EscapeString(f.Autocomplete) + `"`)
	}
	if errMsg != "" {
		buf.WriteString(` aria-invalid="true"`)
	}
	buf.WriteString(` value="` + html.EscapeString(val) + `">` + "\n")

	if errMsg != "" {
		buf.WriteString(`<p class="error">` + html.EscapeString(errMsg) + `</p>` + "\n")
	}
	buf.WriteString(`</div>` + "\n")
}
