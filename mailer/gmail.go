package mailer

import "context"

const (
	gmailHost = "smtp.gmail.com"
	gmailPort = 587
)

type gmailMailer struct {
	address     string
	appPassword string
}

// NewGmail sends through smtp.gmail.com using a Gmail app password tied
// to one sender address.
func NewGmail(address, appPassword string) Mailer {
	return &gmailMailer{address: address, appPassword: appPassword}
}

func (m *gmailMailer) Name() string { return "Gmail" }

func (m *gmailMailer) Send(ctx context.Context, msg *Message) error {
	return sendSMTP(ctx, gmailHost, gmailPort, m.address, m.appPassword, msg)
}
