package vaccines

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VaccineMongoRepository struct {
	Collection *mongo.Collection
}

func NewVaccineMongoRepository(db *mongo.Client, dbName string) contracts.VaccineRepository {
	return &VaccineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVaccines),
	}
}

func (r *VaccineMongoRepository) FindAll(ctx context.Context) ([]models.Vaccine, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	vaccines := []models.Vaccine{}
	err = cursor.All(ctx, &vaccines)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vaccines, nil
}
