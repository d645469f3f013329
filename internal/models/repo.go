package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// Collection names inside the SkillSwap database.
const (
	UsersColName       = "users"
	SkillsColName      = "skills"
	CategoriesColName  = "categories"
	ExchangesColName   = "exchanges"
	SavedSkillsColName = "savedSkills"
	ReviewsColName     = "reviews"
	ReportsColName     = "reports"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(mdb.dbName).Collection(colName)
	return col, nil
}
