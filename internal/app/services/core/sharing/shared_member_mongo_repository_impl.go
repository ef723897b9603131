package sharing

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SharedMemberMongoRepository struct {
	Collection *mongo.Collection
}

func NewSharedMemberMongoRepository(db *mongo.Client, dbName string) contracts.SharedMemberRepository {
	return &SharedMemberMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSharedMembers),
	}
}

func (r *SharedMemberMongoRepository) Insert(ctx context.Context, sharedMember *models.SharedMember) (shareID string, err error) {
	result, err := r.Collection.InsertOne(ctx, sharedMember)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SharedMemberMongoRepository) FindByID(ctx context.Context, shareID string) (*models.SharedMember, error) {
	objectID, err := primitive.ObjectIDFromHex(shareID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var sharedMember models.SharedMember
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&sharedMember)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &sharedMember, nil
}

func (r *SharedMemberMongoRepository) FindPendingByReceiverContact(ctx context.Context, receiverContact string) ([]models.SharedMember, error) {
	filter := bson.M{
		"receiverContact": receiverContact,
		"status":          constvars.ShareStatusPending,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	sharedMembers := []models.SharedMember{}
	err = cursor.All(ctx, &sharedMembers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sharedMembers, nil
}

func (r *SharedMemberMongoRepository) FindPendingByMemberAndReceiver(ctx context.Context, memberID, sharerProfileID, receiverContact string) (*models.SharedMember, error) {
	filter := bson.M{
		"memberId":        memberID,
		"sharerProfileId": sharerProfileID,
		"receiverContact": receiverContact,
		"status":          constvars.ShareStatusPending,
	}

	var sharedMember models.SharedMember
	err := r.Collection.FindOne(ctx, filter).Decode(&sharedMember)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &sharedMember, nil
}

func (r *SharedMemberMongoRepository) UpdateStatus(ctx context.Context, shareID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(shareID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SharedMemberMongoRepository) DeleteByID(ctx context.Context, shareID string) error {
	objectID, err := primitive.ObjectIDFromHex(shareID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *SharedMemberMongoRepository) DeleteByMemberAndReceiver(ctx context.Context, memberID, sharerProfileID, receiverContact string) error {
	filter := bson.M{
		"memberId":        memberID,
		"sharerProfileId": sharerProfileID,
		"receiverContact": receiverContact,
	}
	_, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
