package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"stagi/config"
	"strings"
)

// SendEmail sends an HTML email through the configured SMTP account.
// A no-op when EMAIL_SENDER is not configured.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Stagi Internships <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A57; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A57; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #9B9B9B; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Stagi Internship Program</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendApplicationStatusEmail notifies an applicant about a status change
func SendApplicationStatusEmail(email, fullName, internshipTitle, status string) {
	if email == "" {
		return
	}

	var body string
	switch status {
	case "ACCEPTED":
		body = fmt.Sprintf("<p>Hi %s,</p><p>Congratulations! Your application for <b>%s</b> has been accepted. Your learning path is now available in your dashboard.</p>", fullName, internshipTitle)
	case "REJECTED":
		body = fmt.Sprintf("<p>Hi %s,</p><p>Thank you for applying to <b>%s</b>. Unfortunately we will not be moving forward with your application this time.</p>", fullName, internshipTitle)
	case "REVIEWING":
		body = fmt.Sprintf("<p>Hi %s,</p><p>Your application for <b>%s</b> is now under review. We will get back to you soon.</p>", fullName, internshipTitle)
	default:
		body = fmt.Sprintf("<p>Hi %s,</p><p>The status of your application for <b>%s</b> changed to %s.</p>", fullName, internshipTitle, status)
	}

	subject := fmt.Sprintf("Application update: %s", internshipTitle)
	if err := SendEmail([]string{email}, subject, getEmailTemplate("Application Update", body)); err != nil {
		log.Printf("Failed to send status email to %s: %v", email, err)
	}
}
