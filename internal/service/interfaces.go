package service

import "context"

// IEmailService defines the interface for email operations
type IEmailService interface {
	SendEmail(to, subject, body string) error
	SendWelcomeEmail(email, displayName string) error
	SendRecommendationNotification(email, displayName string, recipeNames []string) error
}

// IExportService defines the interface for recipe export operations
type IExportService interface {
	ExportRecipesCSV(ctx context.Context) (string, error)
}
