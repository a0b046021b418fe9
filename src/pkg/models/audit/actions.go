package audit

import (
	"context"
	"time"

	"api.sahayatri.app/src/pkg/global"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func collection() *mongo.Collection {
	return global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).Collection(AuditLogCollection)
}

// Record appends one audit log entry.
func Record(entry *AuditLog) error {
	entry.CreatedAt = time.Now()
	result, err := collection().InsertOne(context.Background(), entry)
	if err != nil {
		return err
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Snapshot fetches the current stored value of a document in any collection,
// used as the before-image of update and delete operations.
func Snapshot(collectionName string, documentID primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := global.MONGO_CLIENT.Database(global.MONGO_DB_NAME).
		Collection(collectionName).
		FindOne(context.Background(), bson.M{"_id": documentID}).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// GetLogsForDocument returns the audit trail of one document, oldest first.
func GetLogsForDocument(documentID primitive.ObjectID) ([]AuditLog, error) {
	cursor, err := collection().Find(context.Background(), bson.M{"documentId": documentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	logs := []AuditLog{}
	if err = cursor.All(context.Background(), &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
