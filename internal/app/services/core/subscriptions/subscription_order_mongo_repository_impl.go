package subscriptions

import (
	"context"
	"famhealth-service/internal/app/contracts"
	"famhealth-service/internal/app/models"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubscriptionOrderMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubscriptionOrderMongoRepository(db *mongo.Client, dbName string) contracts.SubscriptionOrderRepository {
	return &SubscriptionOrderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubscriptionOrders),
	}
}

func (r *SubscriptionOrderMongoRepository) Insert(ctx context.Context, order *models.SubscriptionOrder) (orderID string, err error) {
	result, err := r.Collection.InsertOne(ctx, order)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SubscriptionOrderMongoRepository) FindByID(ctx context.Context, orderID string) (*models.SubscriptionOrder, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var order models.SubscriptionOrder
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &order, nil
}

func (r *SubscriptionOrderMongoRepository) Update(ctx context.Context, order *models.SubscriptionOrder) error {
	objectID, err := primitive.ObjectIDFromHex(order.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"gatewayOrderId": order.GatewayOrderID,
		"paymentId":      order.PaymentID,
		"status":         order.Status,
		"updatedAt":      order.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
