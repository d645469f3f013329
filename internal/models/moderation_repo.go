package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (primitive.ObjectID, error) {
	if err := Validate.Struct(review); err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid review data: %w", err)
	}

	col, err := mdb.GetCollection(ctx, ReviewsColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	// Uniqueness guard: at most one review per (reviewerEmail, skillId).
	pair := bson.M{"reviewerEmail": review.ReviewerEmail, "skillId": review.SkillID}
	err = col.FindOne(ctx, pair).Err()
	if err == nil {
		return primitive.NilObjectID, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, fmt.Errorf("error checking existing review: %v", err)
	}

	review.BeforeCreate()
	res, err := col.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting review: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) CreateReport(ctx context.Context, report *Report) (primitive.ObjectID, error) {
	if err := Validate.Struct(report); err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid report data: %w", err)
	}

	col, err := mdb.GetCollection(ctx, ReportsColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	pair := bson.M{"reporterEmail": report.ReporterEmail, "skillId": report.SkillID}
	err = col.FindOne(ctx, pair).Err()
	if err == nil {
		return primitive.NilObjectID, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, fmt.Errorf("error checking existing report: %v", err)
	}

	report.BeforeCreate()
	res, err := col.InsertOne(ctx, report)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting report: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) ReviewsAndReportsBySkill(ctx context.Context, skillID primitive.ObjectID) ([]Review, []Report, error) {
	reviewsCol, err := mdb.GetCollection(ctx, ReviewsColName)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting collection: %v", err)
	}
	reportsCol, err := mdb.GetCollection(ctx, ReportsColName)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"skillId": skillID}

	cursor, err := reviewsCol.Find(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("error finding reviews: %v", err)
	}
	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, nil, fmt.Errorf("error decoding reviews: %v", err)
	}

	cursor, err = reportsCol.Find(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("error finding reports: %v", err)
	}
	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, nil, fmt.Errorf("error decoding reports: %v", err)
	}

	return reviews, reports, nil
}

func (mdb *MongodbRepo) AllReports(ctx context.Context) ([]Report, error) {
	col, err := mdb.GetCollection(ctx, ReportsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding reports: %v", err)
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("error decoding reports: %v", err)
	}
	return reports, nil
}

func (mdb *MongodbRepo) DeleteReport(ctx context.Context, id primitive.ObjectID) (int64, error) {
	col, err := mdb.GetCollection(ctx, ReportsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting report: %v", err)
	}
	return res.DeletedCount, nil
}
