package utils

import (
	"fmt"
	"net/smtp"

	"luma/config"
)

// sendEmail delivers one HTML email through the configured SMTP account
func sendEmail(to, subject, body string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
}

// SendWelcomeEmail greets a newly registered member
func SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Welcome to Luma Academy!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your account has been created. Browse the course catalog, track your to-dos, and start learning.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Luma Academy Team</p>
				</div>
			</body>
		</html>
	`, name)

	return sendEmail(email, "Welcome to Luma Academy", body)
}

// SendCertificateEmail notifies a learner that their certificate is ready
func SendCertificateEmail(email, userName, courseName, certificateURL string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
					<h3 style="text-align: center; color: #D4AF37; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666; text-align: center;">
						<a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #D4AF37; color: #ffffff; text-decoration: none; border-radius: 4px; font-weight: bold;">View your certificate</a>
					</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Congratulations on this achievement!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Luma Academy Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName, certificateURL)

	return sendEmail(email, "Course Completion Certificate - Luma Academy", body)
}
