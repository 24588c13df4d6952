package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/config"
	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
)

// exportURLExpiry is how long the presigned download link stays valid.
const exportURLExpiry = 24 * time.Hour

// ExportService writes recipe snapshots as CSV to S3 and returns a
// presigned download URL.
type ExportService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

func NewExportService(db *gorm.DB, s3Config *config.S3Config) *ExportService {
	return &ExportService{db: db, s3Config: s3Config}
}

// ExportRecipesCSV snapshots all published recipes to a CSV object in S3
// and returns a presigned URL for downloading it.
func (s *ExportService) ExportRecipesCSV(ctx context.Context) (string, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Order("created_at").
		Find(&recipes).Error; err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to fetch recipes", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	header := []string{"id", "name", "category", "tags", "calories", "protein", "nutrition_score", "views", "likes", "rating", "created_at"}
	if err := writer.Write(header); err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to write csv", err)
	}
	for _, recipe := range recipes {
		row := []string{
			recipe.ID.String(),
			recipe.Name,
			recipe.Category,
			strings.Join(recipe.Tags, ";"),
			strconv.FormatFloat(recipe.Calories, 'f', -1, 64),
			strconv.FormatFloat(recipe.Protein, 'f', -1, 64),
			strconv.Itoa(recipe.NutritionScore),
			strconv.FormatInt(recipe.Views, 10),
			strconv.FormatInt(recipe.Likes, 10),
			strconv.FormatFloat(recipe.Rating, 'f', -1, 64),
			recipe.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return "", apperr.Wrap(apperr.Internal, "failed to write csv", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to write csv", err)
	}

	key := fmt.Sprintf("exports/recipes-%s.csv", time.Now().UTC().Format("20060102-150405"))
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to upload export", err)
	}
	log.Printf("[ExportService] Uploaded recipe export to S3: %s", key)

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, exportURLExpiry)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to presign export url", err)
	}
	return url, nil
}
