package email

import (
	"fmt"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService sends transactional email (receipt copies, mostly).
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured reports whether SMTP credentials are present.
func (s *EmailService) IsConfigured() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

// SendReceipt sends a rendered HTML receipt to the customer.
func (s *EmailService) SendReceipt(toEmail, saleNo, htmlBody string) error {
	subject := fmt.Sprintf("Comprovante de venda %s - %s", saleNo, s.config.FromName)
	message := s.buildHTMLEmail(toEmail, subject, htmlBody)
	return s.sendEmail(toEmail, message)
}

// SendWarranty sends a rendered warranty certificate to the customer.
func (s *EmailService) SendWarranty(toEmail, protocol, htmlBody string) error {
	subject := fmt.Sprintf("Certificado de garantia %s - %s", protocol, s.config.FromName)
	message := s.buildHTMLEmail(toEmail, subject, htmlBody)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP. One attempt, no retry.
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}
