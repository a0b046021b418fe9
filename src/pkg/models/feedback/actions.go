package feedback

import (
	"context"
	"time"

	"api.sahayatri.app/src/pkg/global"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func collection() *mongo.Collection {
	return global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).Collection(FeedbackCollection)
}

func CreateFeedback(userID, vehicleID primitive.ObjectID, text string) (*Feedback, error) {
	feedback := Feedback{
		UserID:    userID,
		VehicleID: vehicleID,
		Feedback:  text,
		CreatedAt: time.Now(),
	}

	result, err := collection().InsertOne(context.Background(), feedback)
	if err != nil {
		return nil, err
	}

	feedback.ID = result.InsertedID.(primitive.ObjectID)
	return &feedback, nil
}

// GetFeedbackForVehicle returns all feedback on a vehicle, newest first.
func GetFeedbackForVehicle(vehicleID primitive.ObjectID) ([]Feedback, error) {
	cursor, err := collection().Find(context.Background(),
		bson.M{"vehicleId": vehicleID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	feedbacks := []Feedback{}
	if err = cursor.All(context.Background(), &feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// DeleteAllForUser removes every feedback submitted by the user. Used by the
// user-delete cascade.
func DeleteAllForUser(userID primitive.ObjectID) error {
	_, err := collection().DeleteMany(context.Background(), bson.M{"userId": userID})
	return err
}
