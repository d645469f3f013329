package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateSkill(ctx context.Context, skill *Skill) (primitive.ObjectID, error) {
	if err := Validate.Struct(skill); err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid skill data: %w", err)
	}
	skill.BeforeCreate()

	col, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, skill)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting skill: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// SearchSkills returns one page of skills plus the total matching count,
// where the count ignores the skip/limit window.
func (mdb *MongodbRepo) SearchSkills(ctx context.Context, q ListQuery) ([]Skill, int64, error) {
	col, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	if q.Sort != nil {
		opts.SetSort(q.Sort)
	}

	cursor, err := col.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding skills: %v", err)
	}
	defer cursor.Close(ctx)

	skills := []Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, 0, fmt.Errorf("error decoding skills: %v", err)
	}

	count, err := col.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting skills: %v", err)
	}

	return skills, count, nil
}

// GetSkillByID returns (nil, nil) when no skill matches, so the handler can
// answer with a JSON null the way the API always has.
func (mdb *MongodbRepo) GetSkillByID(ctx context.Context, id primitive.ObjectID) (*Skill, error) {
	col, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var skill Skill
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&skill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding skill: %v", err)
	}
	return &skill, nil
}

func (mdb *MongodbRepo) GetSkillsByCreator(ctx context.Context, email string) ([]Skill, error) {
	col, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"creatorEmail": email})
	if err != nil {
		return nil, fmt.Errorf("error finding skills: %v", err)
	}
	defer cursor.Close(ctx)

	skills := []Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("error decoding skills: %v", err)
	}
	return skills, nil
}

func (mdb *MongodbRepo) ListCategories(ctx context.Context) ([]Category, error) {
	col, err := mdb.GetCollection(ctx, CategoriesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding categories: %v", err)
	}
	defer cursor.Close(ctx)

	categories := []Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %v", err)
	}
	return categories, nil
}

// TrendingCategories groups skills by category and returns the five largest
// buckets, count descending. Tie order between equal counts is unspecified.
func (mdb *MongodbRepo) TrendingCategories(ctx context.Context) ([]CategoryCount, error) {
	col, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"category": bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$project", Value: bson.M{"_id": 0, "category": "$_id", "count": 1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating trending skills: %v", err)
	}
	defer cursor.Close(ctx)

	trending := []CategoryCount{}
	if err := cursor.All(ctx, &trending); err != nil {
		return nil, fmt.Errorf("error decoding trending skills: %v", err)
	}
	return trending, nil
}
