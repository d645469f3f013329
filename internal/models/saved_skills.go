package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedSkill struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SkillID        primitive.ObjectID `bson:"skillId" json:"skillId"`
	SavedUserEmail string             `bson:"savedUserEmail" json:"savedUserEmail" validate:"required,email"`
	SkillTitle     string             `bson:"skillTitle" json:"skillTitle" validate:"required"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
}

type SavedSkillRepo interface {
	SaveSkill(ctx context.Context, saved *SavedSkill) (primitive.ObjectID, error)
	SearchSavedSkills(ctx context.Context, q ListQuery) ([]SavedSkill, int64, error)
	// DeleteSavedSkillBySkillID removes the saved entry pointing at the
	// given skill. Deleting an entry that does not exist is not an error;
	// the returned count is simply zero.
	DeleteSavedSkillBySkillID(ctx context.Context, skillID primitive.ObjectID) (deleted int64, err error)
}
