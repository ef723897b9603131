package reports

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

func (r *ReportMongoRepository) Insert(ctx context.Context, report *models.Report) (reportID string, err error) {
	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var report models.Report
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (r *ReportMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	return r.findAll(ctx, bson.M{"userId": userID})
}

func (r *ReportMongoRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]models.Report, error) {
	return r.findAll(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
}

func (r *ReportMongoRepository) FindByIDs(ctx context.Context, reportIDs []string) ([]models.Report, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(reportIDs))
	for _, reportID := range reportIDs {
		objectID, err := primitive.ObjectIDFromHex(reportID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
}

func (r *ReportMongoRepository) Update(ctx context.Context, report *models.Report) error {
	objectID, err := primitive.ObjectIDFromHex(report.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"fileName":   report.FileName,
		"url":        report.URL,
		"status":     report.Status,
		"parameters": report.Parameters,
		"sharedWith": report.SharedWith,
		"updatedAt":  report.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReportMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Report, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	err = cursor.All(ctx, &reports)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, nil
}
