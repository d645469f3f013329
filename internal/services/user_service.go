package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshua-takyi/skillswap/internal/helpers"
	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateOrFetchUser is idempotent per email: the first call stores the
// record with role "user", every later call returns the stored record.
func (us *UserService) CreateOrFetchUser(ctx context.Context, email string, user *models.User) (*models.User, error) {
	email = helpers.StringTrim(email)
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return us.userRepo.CreateOrFetchUser(ctx, email, user)
}

func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return us.userRepo.GetUserByEmail(ctx, email)
}

// SearchUsers pages through all users, optionally filtered by a
// case-insensitive name search. Page is one-based.
func (us *UserService) SearchUsers(ctx context.Context, search, page, limit string) ([]models.User, error) {
	q := models.ScopedListQuery("", "", "name", helpers.StringTrim(search), page, limit)
	return us.userRepo.SearchUsers(ctx, q)
}

func (us *UserService) SetUserRole(ctx context.Context, id, role string) (int64, int64, error) {
	oid, err := helpers.ParseObjectID(id)
	if err != nil {
		return 0, 0, err
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return 0, 0, fmt.Errorf("%w: unknown role %q", models.ErrInvalidID, role)
	}
	return us.userRepo.SetUserRole(ctx, oid, role)
}

// UpdateUserByEmail applies a partial update. Identity and privilege fields
// never change through this path.
func (us *UserService) UpdateUserByEmail(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, fmt.Errorf("email cannot be empty")
	}

	set := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "email", "role":
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return 0, fmt.Errorf("%w: no updatable fields provided", models.ErrInvalidID)
	}

	return us.userRepo.UpdateUserByEmail(ctx, email, set)
}

func (us *UserService) DeleteUser(ctx context.Context, id string) (int64, error) {
	oid, err := helpers.ParseObjectID(id)
	if err != nil {
		return 0, err
	}
	return us.userRepo.DeleteUser(ctx, oid)
}
