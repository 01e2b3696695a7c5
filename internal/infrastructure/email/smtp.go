package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for links embedded in mails
}

// Service is the outbound mail port used by the auth use cases.
type Service interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendLoginLinkEmail(to, token string) error
	SendTicketResolvedEmail(to, ticketNumber, resolution string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendVerificationEmail(to, token string) error {
	verificationURL := fmt.Sprintf("%s/auth/verify-email?token=%s", s.config.BaseURL, token)

	subject := "Verify Your Campus IT Support Account"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Campus IT Support!</h2>
			<p>Please verify your email address by clicking the link below:</p>
			<p><a href="%s">Verify Email Address</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't create an account, please ignore this email.</p>
		</body>
		</html>
	`, verificationURL, verificationURL)

	plainBody := fmt.Sprintf(`
Welcome to Campus IT Support!

Please verify your email address by visiting:
%s

This link will expire in 24 hours.

If you didn't create an account, please ignore this email.
	`, verificationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendLoginLinkEmail(to, token string) error {
	loginURL := fmt.Sprintf("%s/auth/login-link?token=%s", s.config.BaseURL, token)

	subject := "Your Campus IT Support Login Link"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Sign In to Campus IT Support</h2>
			<p>Click the link below to sign in. No password needed:</p>
			<p><a href="%s">Sign In</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link can be used once and expires in 15 minutes.</p>
			<p>If you didn't request this link, please ignore this email.</p>
		</body>
		</html>
	`, loginURL, loginURL)

	plainBody := fmt.Sprintf(`
Sign In to Campus IT Support

Visit the following URL to sign in. No password needed:
%s

This link can be used once and expires in 15 minutes.

If you didn't request this link, please ignore this email.
	`, loginURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketResolvedEmail(to, ticketNumber, resolution string) error {
	subject := fmt.Sprintf("Ticket %s Has Been Resolved", ticketNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your Ticket Has Been Resolved</h2>
			<p>Ticket <strong>%s</strong> has been marked as resolved.</p>
			<p>Resolution:</p>
			<blockquote>%s</blockquote>
			<p>If the problem persists, you can reopen the ticket from your dashboard.</p>
		</body>
		</html>
	`, ticketNumber, resolution)

	plainBody := fmt.Sprintf(`
Your Ticket Has Been Resolved

Ticket %s has been marked as resolved.

Resolution:
%s

If the problem persists, you can reopen the ticket from your dashboard.
	`, ticketNumber, resolution)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
