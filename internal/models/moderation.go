package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReviewerEmail string             `bson:"reviewerEmail" json:"reviewerEmail" validate:"required,email"`
	SkillID       primitive.ObjectID `bson:"skillId" json:"skillId"`
	Rating        int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReporterEmail string             `bson:"reporterEmail" json:"reporterEmail" validate:"required,email"`
	SkillID       primitive.ObjectID `bson:"skillId" json:"skillId"`
	Reason        string             `bson:"reason" json:"reason" validate:"required"`
	Details       string             `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// ModerationRepo covers reviews and reports together: both are guarded
// inserts keyed on (author email, skillId), plus the admin-facing lookups.
type ModerationRepo interface {
	// CreateReview inserts the review unless one already exists for the
	// same (reviewerEmail, skillId) pair, in which case ErrDuplicate is
	// returned and nothing is written.
	CreateReview(ctx context.Context, review *Review) (primitive.ObjectID, error)
	// CreateReport behaves like CreateReview, keyed on reporterEmail.
	CreateReport(ctx context.Context, report *Report) (primitive.ObjectID, error)
	ReviewsAndReportsBySkill(ctx context.Context, skillID primitive.ObjectID) ([]Review, []Report, error)
	AllReports(ctx context.Context) ([]Report, error)
	DeleteReport(ctx context.Context, id primitive.ObjectID) (deleted int64, err error)
}

func (r *Review) BeforeCreate() {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}

func (r *Report) BeforeCreate() {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}
