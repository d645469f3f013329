package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type UserRepo interface {
	// CreateOrFetchUser inserts the user under the given email unless a
	// record already exists, in which case the stored record is returned
	// untouched. Role is always forced to "user" on insert.
	CreateOrFetchUser(ctx context.Context, email string, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	SearchUsers(ctx context.Context, q ListQuery) ([]User, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error)
	UpdateUserByEmail(ctx context.Context, email string, fields bson.M) (matched int64, err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (deleted int64, err error)
}
