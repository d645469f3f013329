package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SkillService struct {
	skillRepo models.SkillRepo
}

func NewSkillService(skillRepo models.SkillRepo) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

func (ss *SkillService) CreateSkill(ctx context.Context, skill *models.Skill) (primitive.ObjectID, error) {
	skill.Title = helpers.StringTrim(skill.Title)
	skill.Category = helpers.StringTrim(skill.Category)
	return ss.skillRepo.CreateSkill(ctx, skill)
}

// SearchSkills runs the public paginated category search. Page is
// zero-based here; junk paging input falls back to page 0 / size 5.
func (ss *SkillService) SearchSkills(ctx context.Context, search, page, size string, sortByDate bool) ([]models.Skill, int64, error) {
	q := models.SkillListQuery(helpers.StringTrim(search), page, size, sortByDate)
	return ss.skillRepo.SearchSkills(ctx, q)
}

func (ss *SkillService) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	oid, err := helpers.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return ss.skillRepo.GetSkillByID(ctx, oid)
}

func (ss *SkillService) GetSkillsByCreator(ctx context.Context, email string) ([]models.Skill, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return ss.skillRepo.GetSkillsByCreator(ctx, email)
}

func (ss *SkillService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return ss.skillRepo.ListCategories(ctx)
}

func (ss *SkillService) TrendingCategories(ctx context.Context) ([]models.CategoryCount, error) {
	return ss.skillRepo.TrendingCategories(ctx)
}
