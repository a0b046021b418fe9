package api_server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"api.sahayatri.app/src/pkg/models/audit"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// credentials never end up in the audit trail
var redactedFields = []string{"password", "passwordHash", "passwordHistory"}

func redact(doc bson.M) bson.M {
	for _, field := range redactedFields {
		delete(doc, field)
	}
	return doc
}

// AuditUpdate snapshots the authenticated user's document and the incoming
// body before the update runs. A failed audit write aborts the request, so the
// mutation it would have described never happens.
func AuditUpdate(collectionName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID := GetUserID(c)

		oldValue, err := audit.Snapshot(collectionName, documentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			c.Abort()
			return
		}
		if oldValue != nil {
			oldValue = redact(oldValue)
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			c.Abort()
			return
		}
		// the handler still needs to bind the body
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		newValue := bson.M{}
		if len(bodyBytes) > 0 {
			if err := json.Unmarshal(bodyBytes, &newValue); err != nil {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please enter all required fields."})
				c.Abort()
				return
			}
			newValue = redact(newValue)
		}

		err = audit.Record(&audit.AuditLog{
			UserID:         GetUserID(c),
			Operation:      audit.OperationUpdate,
			CollectionName: collectionName,
			DocumentID:     documentID,
			OldValue:       oldValue,
			NewValue:       newValue,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuditDelete records the document's last stored value before it is removed.
func AuditDelete(collectionName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID := GetUserID(c)

		oldValue, err := audit.Snapshot(collectionName, documentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			c.Abort()
			return
		}
		if oldValue != nil {
			oldValue = redact(oldValue)
		}

		err = audit.Record(&audit.AuditLog{
			UserID:         GetUserID(c),
			Operation:      audit.OperationDelete,
			CollectionName: collectionName,
			DocumentID:     documentID,
			OldValue:       oldValue,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
			c.Abort()
			return
		}

		c.Next()
	}
}

// recordCreate is called by create handlers right after the insert. An audit
// failure turns the response into an error even though the document was
// written, the caller never sees a success it can't trace.
func recordCreate(c *gin.Context, userID primitive.ObjectID, collectionName string, documentID primitive.ObjectID, newValue interface{}) bool {
	raw, err := json.Marshal(newValue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return false
	}
	value := bson.M{}
	if err := json.Unmarshal(raw, &value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return false
	}

	err = audit.Record(&audit.AuditLog{
		UserID:         userID,
		Operation:      audit.OperationCreate,
		CollectionName: collectionName,
		DocumentID:     documentID,
		NewValue:       redact(value),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
		return false
	}

	return true
}
