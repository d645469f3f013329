package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) SaveSkill(ctx context.Context, saved *SavedSkill) (primitive.ObjectID, error) {
	if err := Validate.Struct(saved); err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid saved skill data: %w", err)
	}
	if saved.ID.IsZero() {
		saved.ID = primitive.NewObjectID()
	}

	col, err := mdb.GetCollection(ctx, SavedSkillsColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, saved)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting saved skill: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) SearchSavedSkills(ctx context.Context, q ListQuery) ([]SavedSkill, int64, error) {
	col, err := mdb.GetCollection(ctx, SavedSkillsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	cursor, err := col.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding saved skills: %v", err)
	}
	defer cursor.Close(ctx)

	saved := []SavedSkill{}
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, 0, fmt.Errorf("error decoding saved skills: %v", err)
	}

	count, err := col.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting saved skills: %v", err)
	}

	return saved, count, nil
}

func (mdb *MongodbRepo) DeleteSavedSkillBySkillID(ctx context.Context, skillID primitive.ObjectID) (int64, error) {
	col, err := mdb.GetCollection(ctx, SavedSkillsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"skillId": skillID})
	if err != nil {
		return 0, fmt.Errorf("error deleting saved skill: %v", err)
	}
	return res.DeletedCount, nil
}
