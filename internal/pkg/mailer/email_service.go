package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendConfirmation(toEmail, token string) error
	SendResetToken(toEmail, token string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string // Needed to construct confirmation links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	clientURL := os.Getenv("CLIENT_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendConfirmation(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Confirm your FikrSwap Academy account")

	confirmLink := fmt.Sprintf("%s/login?confirm=%s", s.clientURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to FikrSwap Academy!</h2>
			<p>Your account has been created. Confirm your email to start learning:</p>
			<a href="%s" style="background-color: #C8A951; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Confirm Account</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, confirmLink, confirmLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.clientURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reset token to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Reset token sent to %s\n", toEmail)
	return nil
}
