package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
)

// ReportService builds daily activity reports from user logins and recipe
// creations.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// GenerateDaily builds (or rebuilds) the activity report for the calendar
// day containing t, counted in UTC.
func (s *ReportService) GenerateDaily(ctx context.Context, t time.Time) (*models.ActivityReport, error) {
	day := t.UTC().Truncate(24 * time.Hour)
	next := day.Add(24 * time.Hour)

	var activeUsers int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("last_login >= ? AND last_login < ?", day, next).
		Count(&activeUsers).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to count active users", err)
	}

	var newRecipes int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("created_at >= ? AND created_at < ?", day, next).
		Count(&newRecipes).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to count new recipes", err)
	}

	report := &models.ActivityReport{
		ID:          uuid.New(),
		Date:        day,
		ActiveUsers: activeUsers,
		NewRecipes:  newRecipes,
		GeneratedAt: time.Now().UTC(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"active_users", "new_recipes", "generated_at"}),
	}).Create(report).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to store report", err)
	}
	return report, nil
}

// List returns reports newest first.
func (s *ReportService) List(ctx context.Context, limit int) ([]models.ActivityReport, error) {
	if limit <= 0 {
		limit = 30
	}
	var reports []models.ActivityReport
	if err := s.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch reports", err)
	}
	return reports, nil
}

// Run regenerates the daily report on the given interval until ctx is
// cancelled. Meant to be started from the server as a background task.
func (s *ReportService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := s.GenerateDaily(ctx, now); err != nil {
				log.Printf("Failed to generate daily report: %v", err)
			}
		}
	}
}
