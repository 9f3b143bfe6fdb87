package helpers

import (
	"fmt"

	"github.com/oksasatya/go-ddd-social/pkg/mailer"
)

// EnsureRecipient fills the recipient field templates expect from job.To.
func EnsureRecipient(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}
