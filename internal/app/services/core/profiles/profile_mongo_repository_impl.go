package profiles

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

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (r *ProfileMongoRepository) CreateProfile(ctx context.Context, profile *models.Profile) (profileID string, err error) {
	result, err := r.Collection.InsertOne(ctx, profile)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProfileMongoRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var profile models.Profile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	objectID, err := primitive.ObjectIDFromHex(profile.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": profile.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProfileMongoRepository) DeleteByID(ctx context.Context, profileID string) error {
	objectID, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
