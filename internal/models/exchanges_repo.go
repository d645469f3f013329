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

func (mdb *MongodbRepo) CreateExchange(ctx context.Context, exchange *Exchange) (primitive.ObjectID, error) {
	if err := Validate.Struct(exchange); err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid exchange data: %w", err)
	}
	exchange.BeforeCreate()

	col, err := mdb.GetCollection(ctx, ExchangesColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, exchange)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting exchange: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (mdb *MongodbRepo) SearchExchanges(ctx context.Context, q ListQuery) ([]Exchange, int64, error) {
	col, err := mdb.GetCollection(ctx, ExchangesColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSkip(q.Skip).SetLimit(q.Limit)
	cursor, err := col.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding exchanges: %v", err)
	}
	defer cursor.Close(ctx)

	exchanges := []Exchange{}
	if err := cursor.All(ctx, &exchanges); err != nil {
		return nil, 0, fmt.Errorf("error decoding exchanges: %v", err)
	}

	count, err := col.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting exchanges: %v", err)
	}

	return exchanges, count, nil
}

// AcceptedExchangesForUser lists accepted exchanges where the user is
// either the creator or the applicant.
func (mdb *MongodbRepo) AcceptedExchangesForUser(ctx context.Context, email string) ([]Exchange, error) {
	col, err := mdb.GetCollection(ctx, ExchangesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"status": ExchangeStatusAccepted,
		"$or": bson.A{
			bson.M{"creatorEmail": email},
			bson.M{"applicationUserEmail": email},
		},
	}

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding exchanges: %v", err)
	}
	defer cursor.Close(ctx)

	exchanges := []Exchange{}
	if err := cursor.All(ctx, &exchanges); err != nil {
		return nil, fmt.Errorf("error decoding exchanges: %v", err)
	}
	return exchanges, nil
}

// TransitionExchange runs the lifecycle guard and the status write inside a
// single session transaction. Accepting additionally flips both referenced
// skills to unavailable; the three writes commit or abort together, so a
// failure mid-cascade can no longer strand one skill updated and the other
// not. Requires the store to run as a replica set.
func (mdb *MongodbRepo) TransitionExchange(ctx context.Context, id primitive.ObjectID, target string, creatorSkillID, applicationSkillID primitive.ObjectID) error {
	if mdb.mongodbClient == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}

	exchanges, err := mdb.GetCollection(ctx, ExchangesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	skills, err := mdb.GetCollection(ctx, SkillsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	session, err := mdb.mongodbClient.StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %v", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var exchange Exchange
		err := exchanges.FindOne(sc, bson.M{"_id": id}).Decode(&exchange)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("error finding exchange: %v", err)
		}

		if err := exchange.CanTransition(target); err != nil {
			return nil, err
		}

		if _, err := exchanges.UpdateOne(sc, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": target}}); err != nil {
			return nil, fmt.Errorf("error updating exchange status: %v", err)
		}

		if target == ExchangeStatusAccepted {
			unavailable := bson.M{"$set": bson.M{"available": false}}
			if _, err := skills.UpdateOne(sc, bson.M{"_id": creatorSkillID}, unavailable); err != nil {
				return nil, fmt.Errorf("error updating creator skill: %v", err)
			}
			if _, err := skills.UpdateOne(sc, bson.M{"_id": applicationSkillID}, unavailable); err != nil {
				return nil, fmt.Errorf("error updating application skill: %v", err)
			}
		}

		return nil, nil
	})

	return err
}
