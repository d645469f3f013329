package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Skill struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Category     string             `bson:"category" json:"category" validate:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatorEmail string             `bson:"creatorEmail" json:"creatorEmail" validate:"required,email"`
	CreatorName  string             `bson:"creatorName,omitempty" json:"creatorName,omitempty"`
	Available    bool               `bson:"available" json:"available"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}

// CategoryCount is one row of the trending-skills aggregation.
type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

type SkillRepo interface {
	CreateSkill(ctx context.Context, skill *Skill) (primitive.ObjectID, error)
	SearchSkills(ctx context.Context, q ListQuery) ([]Skill, int64, error)
	GetSkillByID(ctx context.Context, id primitive.ObjectID) (*Skill, error)
	GetSkillsByCreator(ctx context.Context, email string) ([]Skill, error)
	ListCategories(ctx context.Context) ([]Category, error)
	TrendingCategories(ctx context.Context) ([]CategoryCount, error)
}

// BeforeCreate fills the fields a freshly listed skill always carries.
// New skills start available; availability flips only on exchange acceptance.
func (s *Skill) BeforeCreate() {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	s.Available = true
}
