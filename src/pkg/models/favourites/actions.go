package favourites

import (
	"context"
	"errors"
	"time"

	"api.sahayatri.app/src/pkg/global"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAlreadyAdded = errors.New("You've already added it")
var ErrNotFound = errors.New("Not found")

func collection() *mongo.Collection {
	return global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).Collection(FavouriteCollection)
}

// EnsureIndexes creates the unique compound index backing the duplicate guard.
// The pre-insert lookup in CreateFavourite gives the friendly error message,
// the index closes the race between two concurrent creates.
func EnsureIndexes() error {
	_, err := collection().Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "vehicleId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateFavourite saves a (user, vehicle) pair. Duplicate pairs are rejected,
// not silently deduplicated.
func CreateFavourite(userID, vehicleID primitive.ObjectID) (*Favourite, error) {
	err := collection().FindOne(context.Background(), bson.M{
		"userId":    userID,
		"vehicleId": vehicleID,
	}).Err()
	if err == nil {
		return nil, ErrAlreadyAdded
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	favourite := Favourite{
		UserID:    userID,
		VehicleID: vehicleID,
		CreatedAt: time.Now(),
	}

	result, err := collection().InsertOne(context.Background(), favourite)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyAdded
		}
		return nil, err
	}

	favourite.ID = result.InsertedID.(primitive.ObjectID)
	return &favourite, nil
}

// GetFavouritesForUser retrieves one page of a user's favourites, newest first.
func GetFavouritesForUser(userID primitive.ObjectID, page, limit int) ([]Favourite, error) {
	skip := int64((page - 1) * limit)
	cursor, err := collection().Find(context.Background(),
		bson.M{"userId": userID},
		options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	favourites := []Favourite{}
	if err = cursor.All(context.Background(), &favourites); err != nil {
		return nil, err
	}

	return favourites, nil
}

func DeleteFavourite(favouriteID primitive.ObjectID) error {
	result, err := collection().DeleteOne(context.Background(), bson.M{"_id": favouriteID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllForUser removes every favourite owned by the user. Used by the
// user-delete cascade.
func DeleteAllForUser(userID primitive.ObjectID) error {
	_, err := collection().DeleteMany(context.Background(), bson.M{"userId": userID})
	return err
}
