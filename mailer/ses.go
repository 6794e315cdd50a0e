package mailer

import "context"

// SESConfig is process-wide SES transport configuration; credentials and
// port come from the user's amazon_ses_settings row.
type SESConfig struct {
	Host string // e.g. email-smtp.us-east-1.amazonaws.com
}

type sesMailer struct {
	host     string
	port     int
	username string
	password string
}

func NewSES(cfg SESConfig, username, password string, port int) Mailer {
	if port == 0 {
		port = 587
	}
	return &sesMailer{host: cfg.Host, port: port, username: username, password: password}
}

func (m *sesMailer) Name() string { return "SES" }

func (m *sesMailer) Send(ctx context.Context, msg *Message) error {
	return sendSMTP(ctx, m.host, m.port, m.username, m.password, msg)
}
