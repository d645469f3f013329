package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedSkillService struct {
	savedSkillRepo models.SavedSkillRepo
}

func NewSavedSkillService(savedSkillRepo models.SavedSkillRepo) *SavedSkillService {
	return &SavedSkillService{
		savedSkillRepo: savedSkillRepo,
	}
}

func (sv *SavedSkillService) SaveSkill(ctx context.Context, saved *models.SavedSkill) (primitive.ObjectID, error) {
	saved.SkillTitle = helpers.StringTrim(saved.SkillTitle)
	return sv.savedSkillRepo.SaveSkill(ctx, saved)
}

// SearchSavedSkills pages through one user's saved skills, optionally
// filtered by a case-insensitive title search. Page is one-based.
func (sv *SavedSkillService) SearchSavedSkills(ctx context.Context, email, search, page, limit string) ([]models.SavedSkill, int64, error) {
	if strings.TrimSpace(email) == "" {
		return nil, 0, fmt.Errorf("email cannot be empty")
	}
	q := models.ScopedListQuery("savedUserEmail", email, "skillTitle", helpers.StringTrim(search), page, limit)
	return sv.savedSkillRepo.SearchSavedSkills(ctx, q)
}

func (sv *SavedSkillService) DeleteSavedSkillBySkillID(ctx context.Context, skillID string) (int64, error) {
	oid, err := helpers.ParseObjectID(skillID)
	if err != nil {
		return 0, err
	}
	return sv.savedSkillRepo.DeleteSavedSkillBySkillID(ctx, oid)
}
