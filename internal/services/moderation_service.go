package services

import (
	"context"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModerationService fronts reviews and reports: guarded creation plus the
// admin-facing lookups.
type ModerationService struct {
	moderationRepo models.ModerationRepo
}

func NewModerationService(moderationRepo models.ModerationRepo) *ModerationService {
	return &ModerationService{
		moderationRepo: moderationRepo,
	}
}

func (ms *ModerationService) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.Comment = helpers.StringTrim(review.Comment)
	return ms.moderationRepo.CreateReview(ctx, review)
}

func (ms *ModerationService) CreateReport(ctx context.Context, report *models.Report) (primitive.ObjectID, error) {
	report.Reason = helpers.StringTrim(report.Reason)
	report.Details = helpers.StringTrim(report.Details)
	return ms.moderationRepo.CreateReport(ctx, report)
}

func (ms *ModerationService) ReviewsAndReportsBySkill(ctx context.Context, skillID string) ([]models.Review, []models.Report, error) {
	oid, err := helpers.ParseObjectID(skillID)
	if err != nil {
		return nil, nil, err
	}
	return ms.moderationRepo.ReviewsAndReportsBySkill(ctx, oid)
}

func (ms *ModerationService) AllReports(ctx context.Context) ([]models.Report, error) {
	return ms.moderationRepo.AllReports(ctx)
}

func (ms *ModerationService) DeleteReport(ctx context.Context, id string) (int64, error) {
	oid, err := helpers.ParseObjectID(id)
	if err != nil {
		return 0, err
	}
	return ms.moderationRepo.DeleteReport(ctx, oid)
}
