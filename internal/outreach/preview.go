package outreach

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed preview.html.tmpl
var previewShell string

var previewTemplate = template.Must(template.New("preview").Parse(previewShell))

const noSubject = "(no subject)"

type previewData struct {
	Subject string
	Lines   []previewLine
}

type previewLine struct {
	Text  string
	Blank bool
}

// HTML renders the email into the preview shell: one paragraph per non-blank
// body line, a line break per blank one. A draft without a subject shows a
// placeholder. Text is escaped by the template engine.
func (e *Email) HTML() (string, error) {
	subject := e.Subject
	if subject == "" {
		subject = noSubject
	}

	data := previewData{Subject: subject}
	for _, line := range strings.Split(e.Text, "\n") {
		data.Lines = append(data.Lines, previewLine{
			Text:  line,
			Blank: strings.TrimSpace(line) == "",
		})
	}

	var out strings.Builder
	if err := previewTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}

	return out.String(), nil
}
