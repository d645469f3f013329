package handlers

import (
	"context"
	"regexp"

	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo is an in-memory stand-in for the Mongo repo. It interprets just
// the filter shapes the query builder produces: string equality for scope
// fields and primitive.Regex for search fields.
type memRepo struct {
	skills     []models.Skill
	categories []models.Category
	exchanges  []models.Exchange
	saved      []models.SavedSkill
	reviews    []models.Review
	reports    []models.Report
	users      []models.User
	trending   []models.CategoryCount
}

func matchField(filter bson.M, field, value string) bool {
	v, ok := filter[field]
	if !ok {
		return true
	}
	switch f := v.(type) {
	case string:
		return f == value
	case primitive.Regex:
		re, err := regexp.Compile("(?" + f.Options + ")" + f.Pattern)
		if err != nil {
			return false
		}
		return re.MatchString(value)
	}
	return false
}

func window(total int, skip, limit int64) (int, int) {
	lo := int(skip)
	if lo > total {
		lo = total
	}
	hi := lo + int(limit)
	if hi > total {
		hi = total
	}
	return lo, hi
}

// SkillRepo

func (m *memRepo) CreateSkill(ctx context.Context, skill *models.Skill) (primitive.ObjectID, error) {
	skill.BeforeCreate()
	m.skills = append(m.skills, *skill)
	return skill.ID, nil
}

func (m *memRepo) SearchSkills(ctx context.Context, q models.ListQuery) ([]models.Skill, int64, error) {
	matched := []models.Skill{}
	for _, s := range m.skills {
		if matchField(q.Filter, "category", s.Category) {
			matched = append(matched, s)
		}
	}
	lo, hi := window(len(matched), q.Skip, q.Limit)
	return matched[lo:hi], int64(len(matched)), nil
}

func (m *memRepo) GetSkillByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	for i := range m.skills {
		if m.skills[i].ID == id {
			return &m.skills[i], nil
		}
	}
	return nil, nil
}

func (m *memRepo) GetSkillsByCreator(ctx context.Context, email string) ([]models.Skill, error) {
	out := []models.Skill{}
	for _, s := range m.skills {
		if s.CreatorEmail == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func (m *memRepo) TrendingCategories(ctx context.Context) ([]models.CategoryCount, error) {
	return m.trending, nil
}

// ExchangeRepo

func (m *memRepo) CreateExchange(ctx context.Context, exchange *models.Exchange) (primitive.ObjectID, error) {
	exchange.BeforeCreate()
	m.exchanges = append(m.exchanges, *exchange)
	return exchange.ID, nil
}

func (m *memRepo) SearchExchanges(ctx context.Context, q models.ListQuery) ([]models.Exchange, int64, error) {
	matched := []models.Exchange{}
	for _, e := range m.exchanges {
		if matchField(q.Filter, "creatorEmail", e.CreatorEmail) && matchField(q.Filter, "title", e.Title) {
			matched = append(matched, e)
		}
	}
	lo, hi := window(len(matched), q.Skip, q.Limit)
	return matched[lo:hi], int64(len(matched)), nil
}

func (m *memRepo) AcceptedExchangesForUser(ctx context.Context, email string) ([]models.Exchange, error) {
	out := []models.Exchange{}
	for _, e := range m.exchanges {
		if e.Status == models.ExchangeStatusAccepted && (e.CreatorEmail == email || e.ApplicationUserEmail == email) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepo) TransitionExchange(ctx context.Context, id primitive.ObjectID, target string, creatorSkillID, applicationSkillID primitive.ObjectID) error {
	for i := range m.exchanges {
		if m.exchanges[i].ID != id {
			continue
		}
		if err := m.exchanges[i].CanTransition(target); err != nil {
			return err
		}
		m.exchanges[i].Status = target
		if target == models.ExchangeStatusAccepted {
			for j := range m.skills {
				if m.skills[j].ID == creatorSkillID || m.skills[j].ID == applicationSkillID {
					m.skills[j].Available = false
				}
			}
		}
		return nil
	}
	return models.ErrNotFound
}

// SavedSkillRepo

func (m *memRepo) SaveSkill(ctx context.Context, saved *models.SavedSkill) (primitive.ObjectID, error) {
	if saved.ID.IsZero() {
		saved.ID = primitive.NewObjectID()
	}
	m.saved = append(m.saved, *saved)
	return saved.ID, nil
}

func (m *memRepo) SearchSavedSkills(ctx context.Context, q models.ListQuery) ([]models.SavedSkill, int64, error) {
	matched := []models.SavedSkill{}
	for _, s := range m.saved {
		if matchField(q.Filter, "savedUserEmail", s.SavedUserEmail) && matchField(q.Filter, "skillTitle", s.SkillTitle) {
			matched = append(matched, s)
		}
	}
	lo, hi := window(len(matched), q.Skip, q.Limit)
	return matched[lo:hi], int64(len(matched)), nil
}

func (m *memRepo) DeleteSavedSkillBySkillID(ctx context.Context, skillID primitive.ObjectID) (int64, error) {
	for i := range m.saved {
		if m.saved[i].SkillID == skillID {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ModerationRepo

func (m *memRepo) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	for _, r := range m.reviews {
		if r.ReviewerEmail == review.ReviewerEmail && r.SkillID == review.SkillID {
			return primitive.NilObjectID, models.ErrDuplicate
		}
	}
	review.BeforeCreate()
	m.reviews = append(m.reviews, *review)
	return review.ID, nil
}

func (m *memRepo) CreateReport(ctx context.Context, report *models.Report) (primitive.ObjectID, error) {
	for _, r := range m.reports {
		if r.ReporterEmail == report.ReporterEmail && r.SkillID == report.SkillID {
			return primitive.NilObjectID, models.ErrDuplicate
		}
	}
	report.BeforeCreate()
	m.reports = append(m.reports, *report)
	return report.ID, nil
}

func (m *memRepo) ReviewsAndReportsBySkill(ctx context.Context, skillID primitive.ObjectID) ([]models.Review, []models.Report, error) {
	reviews := []models.Review{}
	for _, r := range m.reviews {
		if r.SkillID == skillID {
			reviews = append(reviews, r)
		}
	}
	reports := []models.Report{}
	for _, r := range m.reports {
		if r.SkillID == skillID {
			reports = append(reports, r)
		}
	}
	return reviews, reports, nil
}

func (m *memRepo) AllReports(ctx context.Context) ([]models.Report, error) {
	return m.reports, nil
}

func (m *memRepo) DeleteReport(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range m.reports {
		if m.reports[i].ID == id {
			m.reports = append(m.reports[:i], m.reports[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// UserRepo

func (m *memRepo) CreateOrFetchUser(ctx context.Context, email string, user *models.User) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	user.Email = email
	user.Role = models.RoleUser
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *user)
	return user, nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, nil
}

func (m *memRepo) SearchUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	matched := []models.User{}
	for _, u := range m.users {
		if matchField(q.Filter, "name", u.Name) {
			matched = append(matched, u)
		}
	}
	lo, hi := window(len(matched), q.Skip, q.Limit)
	return matched[lo:hi], nil
}

func (m *memRepo) SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			modified := int64(0)
			if m.users[i].Role != role {
				m.users[i].Role = role
				modified = 1
			}
			return 1, modified, nil
		}
	}
	return 0, 0, nil
}

func (m *memRepo) UpdateUserByEmail(ctx context.Context, email string, fields bson.M) (int64, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			if name, ok := fields["name"].(string); ok {
				m.users[i].Name = name
			}
			if image, ok := fields["image"].(string); ok {
				m.users[i].Image = image
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
