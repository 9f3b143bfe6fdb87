package mailer

import (
	"strings"

	tpl "github.com/oksasatya/go-ddd-social/pkg/mailer/templates"
)

// Content returns the subject and bodies to send. Templated jobs are
// rendered; raw jobs are returned as queued.
func (j EmailJob) Content() (subject, text, html string, err error) {
	if strings.TrimSpace(j.Template) == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	return tpl.Render(strings.ToLower(j.Template), j.Data)
}
