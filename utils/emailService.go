package utils

import (
	"fmt"
	"log"

	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"edura/config"
)

// EmailService sends transactional email through SendGrid. When no API key is
// configured the service logs and drops the message instead of failing the
// request that triggered it.
type EmailService struct {
	apiKey  string
	from    *sgmail.Email
	appName string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		apiKey:  cfg.SendgridAPIKey,
		from:    sgmail.NewEmail(cfg.AppName, cfg.EmailSender),
		appName: cfg.AppName,
	}
}

// SendWelcomeEmail greets a newly registered account
func (s *EmailService) SendWelcomeEmail(name, email string) error {
	if name == "" {
		name = email
	}

	subject := fmt.Sprintf("Welcome to %s!", s.appName)
	plain := fmt.Sprintf("Hi %s,\n\nYour %s account is ready. Browse the catalog and start learning!", name, s.appName)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to %s</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your account is ready. Browse the catalog and start learning!</p>
				</div>
			</body>
		</html>
	`, s.appName, name)

	return s.send(subject, sgmail.NewEmail(name, email), plain, html)
}

func (s *EmailService) send(subject string, to *sgmail.Email, plain, html string) error {
	if s.apiKey == "" {
		log.Printf("SENDGRID_API_KEY not set, dropping email %q to %s", subject, to.Address)
		return nil
	}

	message := sgmail.NewSingleEmail(s.from, subject, to, plain, html)
	client := sendgrid.NewSendClient(s.apiKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: %d %s", resp.StatusCode, resp.Body)
	}

	return nil
}
