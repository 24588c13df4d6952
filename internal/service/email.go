package service

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func NewEmailService() IEmailService {
	return &EmailService{
		smtpHost:     readSecret("smtp_host"),
		smtpPort:     readSecret("smtp_port"),
		smtpUsername: readSecret("smtp_username"),
		smtpPassword: readSecret("smtp_password"),
		fromEmail:    readSecret("email_from"),
		fromName:     readSecret("email_from_name"),
	}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	// If SMTP is not configured, log the email instead
	if s.smtpHost == "" || s.smtpPort == "" {
		fmt.Printf("SMTP not configured, logging email:\n")
		fmt.Printf("To: %s\n", to)
		fmt.Printf("Subject: %s\n", subject)
		fmt.Printf("Body:\n%s\n", body)
		fmt.Printf("--- End Email ---\n")
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendWelcomeEmail(email, displayName string) error {
	subject := "Welcome to HealthyRecipeHub!"
	body := s.buildWelcomeEmailBody(displayName)
	return s.SendEmail(email, subject, body)
}

func (s *EmailService) SendRecommendationNotification(email, displayName string, recipeNames []string) error {
	caser := cases.Title(language.English)
	items := make([]string, len(recipeNames))
	for i, name := range recipeNames {
		items[i] = fmt.Sprintf("<li>%s</li>", caser.String(name))
	}

	subject := "New recipes picked for you"
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #4CAF50;">Hi %s,</h2>
	<p>We found recipes matching your cooking style:</p>
	<ul>
		%s
	</ul>
	<p>Happy cooking!<br>The HealthyRecipeHub Team</p>
</body>
</html>`, displayName, strings.Join(items, "\n\t\t"))

	return s.SendEmail(email, subject, body)
}

func (s *EmailService) buildWelcomeEmailBody(displayName string) string {
	if displayName == "" {
		displayName = "there"
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Welcome to HealthyRecipeHub</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background-color: #4CAF50; color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="margin: 0; font-size: 28px;">🥗 HealthyRecipeHub</h1>
		<p style="margin: 10px 0 0 0; font-size: 16px;">Healthy cooking, shared</p>
	</div>

	<div style="background-color: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
		<h2 style="color: #4CAF50; margin-top: 0;">Welcome, %s!</h2>
		<p>Thanks for joining HealthyRecipeHub. Share your recipes and we will score them for nutrition, tag them automatically, and recommend new dishes that match your cooking style.</p>
		<p>Happy cooking!<br>The HealthyRecipeHub Team</p>
	</div>
</body>
</html>`, displayName)
}
