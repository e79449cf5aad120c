package utils

import (
	"campus/config"
	"fmt"
	"net/smtp"
	"strings"
)

// SendEmail delivers one HTML mail through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Marketplace <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// SendReceiptEmail mails a purchase receipt after a settlement
func SendReceiptEmail(email string, amount float64, classNames []string) error {
	items := ""
	for _, name := range classNames {
		items += fmt.Sprintf(`<li style="margin: 6px 0;">%s</li>`, name)
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Purchase Confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Thank you for your purchase. You are now enrolled in:</p>
					<ul style="font-size: 15px; color: #444444;">%s</ul>
					<p style="font-size: 16px; color: #555555;">Total charged: <strong>$%.2f</strong></p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy learning!</p>
				</div>
			</body>
		</html>
	`, items, amount)

	return SendEmail([]string{email}, "Your course purchase receipt", body)
}
