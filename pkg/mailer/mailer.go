package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Mailer sends account emails over SMTP
type Mailer struct {
	config Config
}

// New creates a new Mailer
func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// SendStaffWelcome notifies a newly provisioned staff member of their account
// and the stall they are assigned to.
func (m *Mailer) SendStaffWelcome(toEmail, fullName, stallName string) error {
	htmlContent, err := m.renderStaffWelcome(fullName, toEmail, stallName)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Your Staff Account Is Ready"
	message := m.buildHTMLEmail(toEmail, subject, htmlContent)

	return m.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (m *Mailer) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", m.config.SMTPHost, m.config.SMTPPort)

	auth := smtp.PlainAuth("", m.config.SMTPUsername, m.config.SMTPPassword, m.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, m.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (m *Mailer) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		m.config.FromName,
		m.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func (m *Mailer) renderStaffWelcome(fullName, email, stallName string) (string, error) {
	tmpl, err := template.New("staff_welcome").Parse(staffWelcomeTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		FullName  string
		Email     string
		StallName string
	}{
		FullName:  fullName,
		Email:     email,
		StallName: stallName,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// staffWelcomeTemplate is the HTML template for staff account notices
const staffWelcomeTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Staff Account Created</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background-color: #b91c1c; padding: 32px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 26px; font-weight: 600;">Stall POS</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 36px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 18px 0; font-size: 22px;">Welcome aboard, {{.FullName}}</h2>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 18px 0;">
                                A staff account has been created for <strong>{{.Email}}</strong>.
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6; margin: 0 0 18px 0;">
                                You are assigned to <strong>{{.StallName}}</strong>. Sign in with the
                                password given to you by your administrator and change it after your
                                first login.
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">
                                This notice was sent automatically when your account was provisioned.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
