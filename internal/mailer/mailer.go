package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Notification kinds understood by the mailer.
const (
	KindWelcome       = "welcome"
	KindVerifyEmail   = "verify_email"
	KindPasswordReset = "password_reset"
)

// Mailer delivers one templated notification. Delivery is best effort; the
// queue worker logs failures and moves on.
type Mailer interface {
	SendTemplated(to, kind string, data map[string]string) error
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

// SMTPMailer renders HTML templates and delivers them over SMTP.
type SMTPMailer struct {
	addr      string
	auth      smtp.Auth
	from      string
	fromName  string
	templates map[string]mailTemplate
}

func NewSMTPMailer(addr, host, username, password, from, fromName string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:     addr,
		auth:     auth,
		from:     from,
		fromName: fromName,
		templates: map[string]mailTemplate{
			KindWelcome: {
				subject: "Welcome to DraftCraft",
				body:    template.Must(template.New(KindWelcome).Parse(welcomeBody)),
			},
			KindVerifyEmail: {
				subject: "Verify your DraftCraft account",
				body:    template.Must(template.New(KindVerifyEmail).Parse(verifyBody)),
			},
			KindPasswordReset: {
				subject: "Reset your DraftCraft Password",
				body:    template.Must(template.New(KindPasswordReset).Parse(resetBody)),
			},
		},
	}
}

func (m *SMTPMailer) SendTemplated(to, kind string, data map[string]string) error {
	tmpl, ok := m.templates[kind]
	if !ok {
		return fmt.Errorf("unknown mail kind %q", kind)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return err
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.fromName, m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", tmpl.subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg.Bytes())
}
