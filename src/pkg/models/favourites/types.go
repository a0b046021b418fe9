package favourites

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var FavouriteCollection = "favourites"

// a saved user-to-vehicle association, unique per pair
type Favourite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	VehicleID primitive.ObjectID `bson:"vehicleId" json:"vehicleId"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type FavouriteCreate struct {
	UserID    string `json:"userId" binding:"required"`
	VehicleID string `json:"vehicleId" binding:"required"`
}
