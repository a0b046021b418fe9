package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var UserCollection = "users"

// a login fails this many times in a row and the account locks
var MAX_LOGIN_ATTEMPTS = 5
var LOCK_DURATION = 30 * time.Minute

// password hash and history never leave the API, hence the json:"-"
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName         string             `bson:"firstName" json:"firstName"`
	LastName          string             `bson:"lastName" json:"lastName"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	PasswordHistory   []string           `bson:"passwordHistory" json:"-"`
	PasswordChangedAt time.Time          `bson:"passwordChangedAt" json:"passwordChangedAt"`
	LoginAttempts     int                `bson:"loginAttempts" json:"-"`
	LockUntil         *time.Time         `bson:"lockUntil,omitempty" json:"lockUntil,omitempty"`
	IsAdmin           bool               `bson:"isAdmin" json:"isAdmin"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UserRegister struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type UserAuth struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserUpdate struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password"`
}

// LoginResult is everything the login handler needs to build its response.
type LoginResult struct {
	Success           bool
	Message           string
	Token             string
	User              *User
	RemainingAttempts *int
	LockUntil         *time.Time
	PasswordExpired   bool
}

// IsLocked evaluates the lock lazily: a lockUntil in the past means the
// account is no longer locked, there is no background unlock sweep.
func (user *User) IsLocked() bool {
	return user.LockUntil != nil && time.Now().Before(*user.LockUntil)
}
