package mailer

import (
	"context"
	"strings"

	"github.com/k3a/html2text"
)

// Message is a provider-neutral outbound email. Every recipient goes into
// the visible To: header of a single message; co-recipients can see each
// other. That matches what the dashboard promises senders today.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

type Mailer interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// ParseRecipients splits a comma-joined recipient list, trimming
// whitespace and dropping empty pieces.
func ParseRecipients(toEmail string) []string {
	parts := strings.Split(toEmail, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if addr := strings.TrimSpace(p); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

// PlainText derives the text/plain fallback part from an HTML body.
func PlainText(html string) string {
	return strings.TrimSpace(html2text.HTML2Text(html))
}
