package queries

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QueryMongoRepository struct {
	Collection *mongo.Collection
}

func NewQueryMongoRepository(db *mongo.Client, dbName string) contracts.QueryRepository {
	return &QueryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQueries),
	}
}

func (r *QueryMongoRepository) Insert(ctx context.Context, query *models.Query) (queryID string, err error) {
	result, err := r.Collection.InsertOne(ctx, query)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
