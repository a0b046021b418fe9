package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"api.sahayatri.app/src/pkg/global"
	"api.sahayatri.app/src/pkg/models/favourites"
	"api.sahayatri.app/src/pkg/models/feedback"
	"api.sahayatri.app/src/pkg/models/jwt"
	"api.sahayatri.app/src/pkg/services/email"
	"api.sahayatri.app/src/pkg/services/password"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists = errors.New("User already exists.")

func collection() *mongo.Collection {
	return global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).Collection(UserCollection)
}

// CreateUser registers a new credential record. The password must already have
// passed the complexity policy; the initial hash seeds the password history.
// Email matching is exact, registration is the only place users are created.
func CreateUser(reg *UserRegister) (*User, error) {
	err := collection().FindOne(context.Background(), bson.M{"email": reg.Email}).Err()
	if err == nil {
		return nil, ErrUserExists
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := User{
		FirstName:         reg.FirstName,
		LastName:          reg.LastName,
		Email:             reg.Email,
		PasswordHash:      string(hash),
		PasswordHistory:   []string{string(hash)},
		PasswordChangedAt: now,
		LoginAttempts:     0,
		LockUntil:         nil,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result, err := collection().InsertOne(context.Background(), user)
	if err != nil {
		return nil, err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return &user, nil
}

func GetUserByID(userID primitive.ObjectID) *User {
	var user User
	err := collection().FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return nil
	}

	return &user
}

func GetUserByEmail(emailAddr string) *User {
	var user User
	err := collection().FindOne(context.Background(), bson.M{"email": emailAddr}).Decode(&user)
	if err != nil {
		return nil
	}

	return &user
}

// Authenticate runs the account lockout state machine for one login attempt.
//
// A correct password on an unlocked account resets the attempt counter, clears
// any expired lock and issues a session token. A wrong password increments the
// counter and, at the fifth consecutive failure, locks the account for
// LOCK_DURATION. A locked account rejects even the correct password until the
// lock passes. Unknown emails get the same generic message as a wrong password
// so the endpoint doesn't confirm which addresses are registered.
func Authenticate(auth *UserAuth) (*LoginResult, error) {
	user := GetUserByEmail(auth.Email)
	if user == nil {
		return &LoginResult{
			Success: false,
			Message: "Invalid email or password.",
		}, nil
	}

	if user.IsLocked() {
		return &LoginResult{
			Success:   false,
			Message:   fmt.Sprintf("Account is locked. Please try again later. It will be unlocked at %s.", user.LockUntil.Format(time.RFC1123)),
			LockUntil: user.LockUntil,
		}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(auth.Password)); err != nil {
		return recordFailedAttempt(user)
	}

	// counter resets and the lock clears on any successful authentication
	_, err := collection().UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{
			"$set":   bson.M{"loginAttempts": 0},
			"$unset": bson.M{"lockUntil": ""},
		},
	)
	if err != nil {
		return nil, err
	}
	user.LoginAttempts = 0
	user.LockUntil = nil

	token, err := jwt.CreateJWT(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Success:         true,
		Token:           token,
		User:            user,
		PasswordExpired: password.Expired(user.PasswordChangedAt),
	}, nil
}

func recordFailedAttempt(user *User) (*LoginResult, error) {
	user.LoginAttempts++

	update := bson.M{"loginAttempts": user.LoginAttempts}
	lockMessage := ""
	if user.LoginAttempts >= MAX_LOGIN_ATTEMPTS {
		lockUntil := time.Now().Add(LOCK_DURATION)
		user.LockUntil = &lockUntil
		update["lockUntil"] = lockUntil
		lockMessage = fmt.Sprintf(" Your account is now locked until %s.", lockUntil.Format(time.RFC1123))

		// alert mail is best-effort, the login response doesn't wait for it
		go func(recipient string, until time.Time) {
			if err := email.SendLockoutAlert(recipient, until); err != nil {
				log.Printf("[Auth] failed to send lockout alert to %s: %v", recipient, err)
			}
		}(user.Email, lockUntil)
	}

	_, err := collection().UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{"$set": update},
	)
	if err != nil {
		return nil, err
	}

	remaining := MAX_LOGIN_ATTEMPTS - user.LoginAttempts
	if remaining < 0 {
		remaining = 0
	}

	return &LoginResult{
		Success:           false,
		Message:           fmt.Sprintf("Invalid credentials. You have %d attempts left.%s", remaining, lockMessage),
		RemainingAttempts: &remaining,
		LockUntil:         user.LockUntil,
	}, nil
}

// UpdateProfile replaces the user's name and email fields.
func (user *User) UpdateProfile(update *UserUpdate) error {
	_, err := collection().UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{
			"firstName": update.FirstName,
			"lastName":  update.LastName,
			"email":     update.Email,
			"updatedAt": time.Now(),
		}},
	)
	if err != nil {
		return err
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.Email = update.Email
	return nil
}

// ChangePassword re-hashes the password and appends the new hash to the
// history. Policy checks (complexity, reuse) happen at the handler boundary.
func (user *User) ChangePassword(newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = collection().UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{
			"$set": bson.M{
				"passwordHash":      string(hash),
				"passwordChangedAt": now,
				"updatedAt":         now,
			},
			"$push": bson.M{"passwordHistory": string(hash)},
		},
	)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.PasswordHistory = append(user.PasswordHistory, string(hash))
	user.PasswordChangedAt = now
	return nil
}

// Delete removes the user and cascades to everything the user owns.
func (user *User) Delete() error {
	_, err := collection().DeleteOne(context.Background(), bson.M{"_id": user.ID})
	if err != nil {
		return err
	}

	if err := favourites.DeleteAllForUser(user.ID); err != nil {
		return err
	}
	if err := feedback.DeleteAllForUser(user.ID); err != nil {
		return err
	}

	return nil
}
