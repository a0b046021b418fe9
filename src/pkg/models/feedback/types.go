package feedback

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var FeedbackCollection = "feedbacks"

// free-text comment on a vehicle, no uniqueness constraint
// the submitting user is kept so user deletion can cascade here
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	VehicleID primitive.ObjectID `bson:"vehicleId" json:"vehicleId"`
	Feedback  string             `bson:"feedback" json:"feedback"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type FeedbackCreate struct {
	Feedback string `json:"feedback" binding:"required"`
}
