package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateOrFetchUser(ctx context.Context, email string, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var existing User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error finding user: %v", err)
	}

	user.Email = email
	user.Role = RoleUser
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	return user, nil
}

// GetUserByEmail returns (nil, nil) when no user matches.
func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) SearchUsers(ctx context.Context, q ListQuery) ([]User, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	cursor, err := col.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding users: %v", err)
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %v", err)
	}
	return users, nil
}

func (mdb *MongodbRepo) SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (int64, int64, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return 0, 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, 0, fmt.Errorf("error updating user role: %v", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// UpdateUserByEmail applies a $set of the provided fields. The caller is
// responsible for stripping fields that must not change (email, role, _id).
func (mdb *MongodbRepo) UpdateUserByEmail(ctx context.Context, email string, fields bson.M) (int64, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("error updating user: %v", err)
	}
	return res.MatchedCount, nil
}

func (mdb *MongodbRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	col, err := mdb.GetCollection(ctx, UsersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting user: %v", err)
	}
	return res.DeletedCount, nil
}
