package audit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var AuditLogCollection = "audit_logs"

type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// append-only record of a mutating operation, there are no update or delete
// actions on this collection
type AuditLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Operation      Operation          `bson:"operation" json:"operation"`
	CollectionName string             `bson:"collectionName" json:"collectionName"`
	DocumentID     primitive.ObjectID `bson:"documentId" json:"documentId"`
	OldValue       bson.M             `bson:"oldValue,omitempty" json:"oldValue,omitempty"`
	NewValue       bson.M             `bson:"newValue,omitempty" json:"newValue,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
