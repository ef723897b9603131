package references

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReferenceMongoRepository struct {
	ReportTypes  *mongo.Collection
	Keywords     *mongo.Collection
	HealthTopics *mongo.Collection
}

func NewReferenceMongoRepository(db *mongo.Client, dbName string) contracts.ReferenceRepository {
	database := db.Database(dbName)
	return &ReferenceMongoRepository{
		ReportTypes:  database.Collection(constvars.MongoCollectionReportTypes),
		Keywords:     database.Collection(constvars.MongoCollectionKeywords),
		HealthTopics: database.Collection(constvars.MongoCollectionHealthTopics),
	}
}

func (r *ReferenceMongoRepository) FindReportTypes(ctx context.Context) ([]models.ReportType, error) {
	cursor, err := r.ReportTypes.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reportTypes := []models.ReportType{}
	err = cursor.All(ctx, &reportTypes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reportTypes, nil
}

func (r *ReferenceMongoRepository) FindKeywords(ctx context.Context) ([]models.Keyword, error) {
	cursor, err := r.Keywords.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	keywords := []models.Keyword{}
	err = cursor.All(ctx, &keywords)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return keywords, nil
}

func (r *ReferenceMongoRepository) FindHealthTopics(ctx context.Context) ([]models.HealthTopic, error) {
	cursor, err := r.HealthTopics.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	healthTopics := []models.HealthTopic{}
	err = cursor.All(ctx, &healthTopics)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return healthTopics, nil
}
