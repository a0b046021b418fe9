package main

import (
	"context"
	"log"
	"os"

	"api.sahayatri.app/src/pkg/errs"
	"api.sahayatri.app/src/pkg/global"
	"api.sahayatri.app/src/pkg/models/user"
	"go.mongodb.org/mongo-driver/bson"
)

// seeds the initial admin account if it doesn't exist yet
func main() {
	ctx := context.Background()

	global.Init()
	defer global.MONGO_CLIENT.Disconnect(ctx)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	errs.Invariant(len(adminEmail) != 0, ".env file doesn't have ADMIN_EMAIL")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	errs.Invariant(len(adminPassword) != 0, ".env file doesn't have ADMIN_PASSWORD")

	if existing := user.GetUserByEmail(adminEmail); existing != nil {
		log.Printf("[Seed] admin user %s already exists", adminEmail)
		return
	}

	admin, err := user.CreateUser(&user.UserRegister{
		FirstName: "Sahayatri",
		LastName:  "Admin",
		Email:     adminEmail,
		Password:  adminPassword,
	})
	errs.Invariant(err == nil, "can't create admin user")

	collection := global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).Collection(user.UserCollection)
	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": admin.ID},
		bson.M{"$set": bson.M{"isAdmin": true}},
	)
	errs.Invariant(err == nil, "can't promote admin user")

	log.Printf("[Seed] created admin user %s", adminEmail)
}
